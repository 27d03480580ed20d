package validate

import (
	"github.com/adalundhe/promptforge/core/analysis"
)

// Severity classifies how badly an issue degrades the prompt.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Priority ranks improvement suggestions.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Issue is one detected quality problem.
type Issue struct {
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	Location    string   `json:"location,omitempty"`
}

// Suggestion is one ranked remediation paired with an issue rule.
type Suggestion struct {
	Priority            Priority `json:"priority"`
	Category            string   `json:"category"`
	Suggestion          string   `json:"suggestion"`
	ExpectedImprovement int      `json:"expected_improvement"`
	Implementation      string   `json:"implementation"`
}

// deriveIssues applies the fixed rule list. Each threshold miss maps to
// exactly one issue of a fixed severity; the rules never consult the
// original input.
func deriveIssues(prompt string, metrics *analysis.Metrics, compliance *Compliance) []Issue {
	var issues []Issue

	if !compliance.HasExpertRole {
		issues = append(issues, Issue{
			Severity:    SeverityCritical,
			Category:    "Expert Role",
			Description: "The prompt does not establish an expert role",
			Impact:      "Responses lack authoritative framing and domain grounding",
			Location:    "opening",
		})
	}
	if !compliance.HasStructuredFramework {
		issues = append(issues, Issue{
			Severity:    SeverityCritical,
			Category:    "Structure",
			Description: "The prompt lacks a structured section framework",
			Impact:      "Responses will be unorganized and incomplete",
		})
	}
	if metrics.Clarity < 70 {
		issues = append(issues, Issue{
			Severity:    SeverityHigh,
			Category:    "Clarity",
			Description: "The prompt's intent is not clearly communicated",
			Impact:      "Responses may address the wrong problem",
		})
	}
	if metrics.Completeness < 60 {
		issues = append(issues, Issue{
			Severity:    SeverityHigh,
			Category:    "Completeness",
			Description: "The prompt omits sections needed for a full response",
			Impact:      "Responses will leave out required elements",
		})
	}
	if metrics.Specificity < 60 {
		issues = append(issues, Issue{
			Severity:    SeverityMedium,
			Category:    "Specificity",
			Description: "The prompt lacks concrete constraints and examples",
			Impact:      "Responses will be generic",
		})
	}
	if !compliance.HasOutputSection {
		issues = append(issues, Issue{
			Severity:    SeverityMedium,
			Category:    "Output Specification",
			Description: "The prompt does not specify the expected output",
			Impact:      "Response format will be unpredictable",
			Location:    "ending",
		})
	}
	if metrics.Professionalism < 80 {
		issues = append(issues, Issue{
			Severity:    SeverityLow,
			Category:    "Professionalism",
			Description: "The prompt's tone falls short of a professional register",
			Impact:      "Responses may adopt an inconsistent voice",
		})
	}
	if len(prompt) < minPromptLength {
		issues = append(issues, Issue{
			Severity:    SeverityLow,
			Category:    "Length",
			Description: "The prompt is too short to carry sufficient context",
			Impact:      "Responses will rely on assumptions",
		})
	}

	return issues
}

// deriveSuggestions mirrors the issue rules with paired remediation text
// and a fixed expected-improvement estimate between 5 and 15 points.
func deriveSuggestions(prompt string, metrics *analysis.Metrics, compliance *Compliance) []Suggestion {
	var suggestions []Suggestion

	if !compliance.HasExpertRole {
		suggestions = append(suggestions, Suggestion{
			Priority:            PriorityHigh,
			Category:            "Expert Role",
			Suggestion:          "Open the prompt with an expert role sentence",
			ExpectedImprovement: 15,
			Implementation:      `Begin with "You are a <role> with <experience>"`,
		})
	}
	if !compliance.HasStructuredFramework {
		suggestions = append(suggestions, Suggestion{
			Priority:            PriorityHigh,
			Category:            "Structure",
			Suggestion:          "Organize the prompt into the five canonical sections",
			ExpectedImprovement: 15,
			Implementation:      "Add #CONTEXT, #GOAL, #INFORMATION, #RESPONSE GUIDELINES, and #OUTPUT headers",
		})
	}
	if metrics.Clarity < 70 {
		suggestions = append(suggestions, Suggestion{
			Priority:            PriorityHigh,
			Category:            "Clarity",
			Suggestion:          "State the goal in one unambiguous sentence",
			ExpectedImprovement: 12,
			Implementation:      "Rewrite the #GOAL section as a single directive sentence",
		})
	}
	if metrics.Completeness < 60 {
		suggestions = append(suggestions, Suggestion{
			Priority:            PriorityHigh,
			Category:            "Completeness",
			Suggestion:          "Fill in the missing sections",
			ExpectedImprovement: 12,
			Implementation:      "Add the absent section headers with at least one line each",
		})
	}
	if metrics.Specificity < 60 {
		suggestions = append(suggestions, Suggestion{
			Priority:            PriorityMedium,
			Category:            "Specificity",
			Suggestion:          "Add concrete constraints and at least one example",
			ExpectedImprovement: 10,
			Implementation:      "List explicit requirements under #INFORMATION",
		})
	}
	if !compliance.HasOutputSection {
		suggestions = append(suggestions, Suggestion{
			Priority:            PriorityMedium,
			Category:            "Output Specification",
			Suggestion:          "Describe the expected output explicitly",
			ExpectedImprovement: 8,
			Implementation:      "Add an #OUTPUT section listing format and deliverables",
		})
	}
	if metrics.Professionalism < 80 {
		suggestions = append(suggestions, Suggestion{
			Priority:            PriorityLow,
			Category:            "Professionalism",
			Suggestion:          "Raise the register of the prompt's language",
			ExpectedImprovement: 6,
			Implementation:      "Reference expertise and professional standards in the role and guidelines",
		})
	}
	if len(prompt) < minPromptLength {
		suggestions = append(suggestions, Suggestion{
			Priority:            PriorityLow,
			Category:            "Length",
			Suggestion:          "Expand the prompt with relevant context",
			ExpectedImprovement: 5,
			Implementation:      "Grow the #CONTEXT and #INFORMATION sections past 200 characters total",
		})
	}

	return suggestions
}
