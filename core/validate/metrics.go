package validate

import (
	"math"
	"strings"

	"github.com/adalundhe/promptforge/core/analysis"
	"github.com/adalundhe/promptforge/core/transform"
)

// Weights for the post-transformation metric variant. These differ from
// the raw-input variant in core/analysis on purpose; the two routines
// are kept separate because downstream consumers depend on both shapes.
const (
	clarityWeight         = 0.25
	specificityWeight     = 0.20
	completenessWeight    = 0.25
	professionalismWeight = 0.15
	actionabilityWeight   = 0.15
)

var sectionHeaders = []string{
	transform.HeaderContext,
	transform.HeaderGoal,
	transform.HeaderInfo,
	transform.HeaderGuidelines,
	transform.HeaderOutput,
}

// Keyword families for structural feature detection.
var (
	expertTerms     = []string{"expert", "professional", "specialist", "experienced", "consultant"}
	exampleTerms    = []string{"example", "e.g.", "for instance", "worked"}
	constraintTerms = []string{"constraint", "must", "require", "limit", "within"}
	actionVerbs     = []string{"provide", "create", "deliver", "include", "identify", "produce"}
	outputTerms     = []string{"output", "format", "deliverable", "structure"}
)

const (
	minSubstantialWordCount = 50
	minPromptLength         = 200
	minBulletCount          = 3
	richBulletCount         = 5
)

// CalculateDetailedMetrics scores a transformed prompt on structural
// features: role framing, section markers, and keyword families. It
// operates on the transformed text, not the original input.
func CalculateDetailedMetrics(prompt string) *analysis.Metrics {
	lower := strings.ToLower(prompt)
	wordCount := len(strings.Fields(prompt))
	sections := countSections(prompt)
	bullets := countBullets(prompt)

	clarity := 40
	if strings.Contains(prompt, "You are") {
		clarity += 25
	}
	if sections >= 3 {
		clarity += 20
	}
	if wordCount >= minSubstantialWordCount {
		clarity += 15
	}

	specificity := 35
	if sections >= 4 {
		specificity += 25
	}
	if containsAny(lower, constraintTerms) {
		specificity += 20
	}
	if containsAny(lower, exampleTerms) {
		specificity += 20
	}
	if bullets >= richBulletCount {
		specificity += 10
	}

	completeness := 30 + 14*sections

	professionalism := 50
	if containsAny(lower, expertTerms) {
		professionalism += 25
	}
	if len(prompt) >= minPromptLength {
		professionalism += 15
	}
	if strings.Contains(lower, "guidelines") {
		professionalism += 10
	}

	actionability := 40
	if containsAny(lower, actionVerbs) {
		actionability += 20
	}
	if containsAny(lower, outputTerms) {
		actionability += 20
	}
	if bullets >= minBulletCount {
		actionability += 20
	}

	clarity = clamp(clarity)
	specificity = clamp(specificity)
	completeness = clamp(completeness)
	professionalism = clamp(professionalism)
	actionability = clamp(actionability)

	overall := int(math.Round(
		clarityWeight*float64(clarity) +
			specificityWeight*float64(specificity) +
			completenessWeight*float64(completeness) +
			professionalismWeight*float64(professionalism) +
			actionabilityWeight*float64(actionability),
	))

	return &analysis.Metrics{
		Clarity:         clarity,
		Specificity:     specificity,
		Completeness:    completeness,
		Professionalism: professionalism,
		Actionability:   actionability,
		Overall:         clamp(overall),
	}
}

func countSections(prompt string) int {
	count := 0
	for _, header := range sectionHeaders {
		if strings.Contains(prompt, header) {
			count++
		}
	}
	return count
}

func countBullets(prompt string) int {
	count := 0
	for _, line := range strings.Split(prompt, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "- ") {
			count++
		}
	}
	return count
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
