package validate

import (
	"strings"

	"github.com/adalundhe/promptforge/core/transform"
)

// Compliance is the ten-point structural checklist for a transformed
// prompt. Every check is a direct substring or derived test; none can
// fail with an error.
type Compliance struct {
	HasExpertRole           bool `json:"has_expert_role"`
	HasStructuredFramework  bool `json:"has_structured_framework"`
	HasContextSection       bool `json:"has_context_section"`
	HasGoalSection          bool `json:"has_goal_section"`
	HasInformationSection   bool `json:"has_information_section"`
	HasResponseGuidelines   bool `json:"has_response_guidelines"`
	HasOutputSection        bool `json:"has_output_section"`
	MeetsLengthRequirements bool `json:"meets_length_requirements"`
	HasActionableElements   bool `json:"has_actionable_elements"`
	HasProfessionalTone     bool `json:"has_professional_tone"`
}

const complianceCheckCount = 10

// CheckCompliance evaluates the checklist against a transformed prompt.
func CheckCompliance(prompt string) *Compliance {
	lower := strings.ToLower(prompt)

	return &Compliance{
		HasExpertRole:           strings.Contains(prompt, "You are"),
		HasStructuredFramework:  countSections(prompt) >= 3,
		HasContextSection:       strings.Contains(prompt, transform.HeaderContext),
		HasGoalSection:          strings.Contains(prompt, transform.HeaderGoal),
		HasInformationSection:   strings.Contains(prompt, transform.HeaderInfo),
		HasResponseGuidelines:   strings.Contains(prompt, transform.HeaderGuidelines),
		HasOutputSection:        strings.Contains(prompt, transform.HeaderOutput),
		MeetsLengthRequirements: len(prompt) >= minPromptLength,
		HasActionableElements:   containsAny(lower, actionVerbs),
		HasProfessionalTone:     containsAny(lower, expertTerms),
	}
}

// Rate returns the fraction of checks passing, in [0,1].
func (c *Compliance) Rate() float64 {
	passed := 0
	for _, ok := range []bool{
		c.HasExpertRole,
		c.HasStructuredFramework,
		c.HasContextSection,
		c.HasGoalSection,
		c.HasInformationSection,
		c.HasResponseGuidelines,
		c.HasOutputSection,
		c.MeetsLengthRequirements,
		c.HasActionableElements,
		c.HasProfessionalTone,
	} {
		if ok {
			passed++
		}
	}
	return float64(passed) / complianceCheckCount
}
