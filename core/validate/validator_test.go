package validate

import (
	"strings"
	"testing"

	"github.com/adalundhe/promptforge/core/analysis"
	"github.com/adalundhe/promptforge/core/transform"
)

// wellFormedPrompt has an expert role, four of the five canonical
// sections, constraint and example language, and eight bullets. Only the
// #OUTPUT section is absent.
const wellFormedPrompt = `You are an expert business consultant with professional experience guiding specialist teams.

#CONTEXT
The client must operate within strict constraints, for instance a limited budget and a fixed launch window that require careful planning across departments.

#GOAL
Provide a comprehensive growth strategy the team can deliver this quarter.

#INFORMATION
To respond well, take into account:
- Current market position and competitors
- Available resources and limits
- Stakeholder expectations
- Prior campaign results
- Team capacity

#RESPONSE GUIDELINES
- Identify the highest impact opportunities
- Include concrete milestones
- Create an actionable sequence of steps
`

func TestValidate_MissingOutputSection(t *testing.T) {
	v := NewValidator()

	result := v.Validate(wellFormedPrompt)

	if result.Compliance.HasOutputSection {
		t.Fatal("fixture should not contain an #OUTPUT section")
	}

	var outputIssues []Issue
	for _, issue := range result.Issues {
		if issue.Category == "Output Specification" {
			outputIssues = append(outputIssues, issue)
		}
	}
	if len(outputIssues) != 1 {
		t.Fatalf("got %d Output Specification issues, want exactly 1", len(outputIssues))
	}
	if outputIssues[0].Severity != SeverityMedium {
		t.Errorf("severity = %s, want %s", outputIssues[0].Severity, SeverityMedium)
	}

	for _, issue := range result.Issues {
		if issue.Severity == SeverityMedium && issue.Category != "Output Specification" {
			t.Errorf("unexpected medium issue %q on an otherwise complete prompt", issue.Category)
		}
	}
}

func TestValidate_TransformedPromptIsStructured(t *testing.T) {
	tr := transform.NewTransformer(analysis.NewAnalyzer())
	v := NewValidator()

	inputs := []string{
		"write a blog post about cats",
		"analyze my LinkedIn profile",
		"optimize our comprehensive deployment process for the engineering team",
	}

	for _, input := range inputs {
		transformed, err := tr.Transform(input)
		if err != nil {
			t.Fatalf("Transform(%q) failed: %v", input, err)
		}

		result := v.Validate(transformed.TransformedPrompt)

		if !result.Compliance.HasStructuredFramework {
			t.Errorf("input %q: transformed prompt should satisfy the structured framework check", input)
		}
		if !result.Compliance.HasExpertRole {
			t.Errorf("input %q: transformed prompt should carry an expert role", input)
		}
		if !result.Compliance.HasOutputSection {
			t.Errorf("input %q: transformed prompt should carry an #OUTPUT section", input)
		}
		if hasCritical(result.Issues) {
			t.Errorf("input %q: transformed prompt should not raise critical issues", input)
		}
	}
}

func TestValidate_UnstructuredPrompt(t *testing.T) {
	v := NewValidator()

	result := v.Validate("hello")

	if result.IsValid {
		t.Error("bare greeting should not validate")
	}
	if !hasCritical(result.Issues) {
		t.Error("unstructured prompt should raise critical issues")
	}

	criticals := 0
	for _, issue := range result.Issues {
		if issue.Severity == SeverityCritical {
			criticals++
		}
	}
	if criticals != 2 {
		t.Errorf("got %d critical issues, want 2 (role and structure)", criticals)
	}

	// Floor metrics with an all-false checklist: 38 - 10 bonus.
	if result.OverallScore != 28 {
		t.Errorf("OverallScore = %d, want 28", result.OverallScore)
	}
}

func TestValidate_WellFormedPromptIsValid(t *testing.T) {
	v := NewValidator()

	result := v.Validate(wellFormedPrompt)

	if !result.IsValid {
		t.Errorf("well-formed prompt should validate; score %d, issues %v",
			result.OverallScore, result.Issues)
	}
	if result.OverallScore < validScoreFloor {
		t.Errorf("OverallScore = %d, want >= %d", result.OverallScore, validScoreFloor)
	}
}

func TestValidate_SuggestionsMirrorIssues(t *testing.T) {
	v := NewValidator()

	for _, prompt := range []string{"hello", wellFormedPrompt, "You are an expert.\n#CONTEXT\n#GOAL\n#OUTPUT\nprovide a format"} {
		result := v.Validate(prompt)

		if len(result.Suggestions) != len(result.Issues) {
			t.Fatalf("prompt %q: %d suggestions for %d issues",
				truncate(prompt), len(result.Suggestions), len(result.Issues))
		}
		for i, issue := range result.Issues {
			if result.Suggestions[i].Category != issue.Category {
				t.Errorf("suggestion %d category %q does not match issue %q",
					i, result.Suggestions[i].Category, issue.Category)
			}
		}
		for _, s := range result.Suggestions {
			if s.ExpectedImprovement < 5 || s.ExpectedImprovement > 15 {
				t.Errorf("ExpectedImprovement %d outside [5,15]", s.ExpectedImprovement)
			}
		}
	}
}

func TestComplianceRate(t *testing.T) {
	v := NewValidator()

	all := v.Validate("hello").Compliance
	if rate := all.Rate(); rate != 0 {
		t.Errorf("empty checklist rate = %f, want 0", rate)
	}

	nearFull := v.Validate(wellFormedPrompt).Compliance
	if rate := nearFull.Rate(); rate != 0.9 {
		t.Errorf("nine-of-ten rate = %f, want 0.9", rate)
	}
}

func TestCalculateDetailedMetrics_SectionScaling(t *testing.T) {
	none := CalculateDetailedMetrics("plain text with no markers")
	if none.Completeness != 30 {
		t.Errorf("zero-section completeness = %d, want 30", none.Completeness)
	}

	three := CalculateDetailedMetrics("#CONTEXT\n#GOAL\n#OUTPUT\n")
	if three.Completeness != 30+14*3 {
		t.Errorf("three-section completeness = %d, want %d", three.Completeness, 30+14*3)
	}

	five := CalculateDetailedMetrics(strings.Join(sectionHeaders, "\n"))
	if five.Completeness != 100 {
		t.Errorf("five-section completeness = %d, want 100", five.Completeness)
	}
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
