// Package validate scores transformed prompts against a structural
// checklist and derives ranked issues and suggestions from fixed
// threshold rules.
package validate

import (
	"math"

	"github.com/adalundhe/promptforge/core/analysis"
)

// complianceBonusScale converts the compliance rate's distance from the
// midpoint into an overall-score adjustment of at most +-10 points.
const complianceBonusScale = 20

// validScoreFloor is the minimum overall score for a prompt to pass.
const validScoreFloor = 70

// Result bundles everything the validator derives from one prompt.
type Result struct {
	Metrics      *analysis.Metrics `json:"metrics"`
	Compliance   *Compliance       `json:"compliance"`
	Issues       []Issue           `json:"issues"`
	Suggestions  []Suggestion      `json:"suggestions"`
	OverallScore int               `json:"overall_score"`
	IsValid      bool              `json:"is_valid"`
}

// Validator evaluates transformed prompts. It is stateless and safe for
// concurrent use.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate scores the prompt, runs the compliance checklist, and derives
// issues and suggestions. It never returns an error; a hopeless prompt
// simply scores low with IsValid false.
func (v *Validator) Validate(prompt string) *Result {
	metrics := CalculateDetailedMetrics(prompt)
	compliance := CheckCompliance(prompt)

	issues := deriveIssues(prompt, metrics, compliance)
	suggestions := deriveSuggestions(prompt, metrics, compliance)

	bonus := (compliance.Rate() - 0.5) * complianceBonusScale
	score := clamp(int(math.Round(float64(metrics.Overall) + bonus)))

	return &Result{
		Metrics:      metrics,
		Compliance:   compliance,
		Issues:       issues,
		Suggestions:  suggestions,
		OverallScore: score,
		IsValid:      score >= validScoreFloor && !hasCritical(issues),
	}
}

func hasCritical(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
