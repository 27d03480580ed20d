package analysis

import (
	"math"
	"strings"
)

// Metrics holds the five quality sub-scores plus the weighted overall
// score. Every sub-score is clamped to [0,100].
type Metrics struct {
	Clarity         int `json:"clarity"`
	Specificity     int `json:"specificity"`
	Completeness    int `json:"completeness"`
	Professionalism int `json:"professionalism"`
	Actionability   int `json:"actionability"`
	Overall         int `json:"overall"`
}

// Weights for the raw-input metric variant. The post-transformation
// validator uses its own, different weighting; the two are deliberately
// kept separate.
const (
	rawClarityWeight         = 0.20
	rawSpecificityWeight     = 0.25
	rawCompletenessWeight    = 0.25
	rawProfessionalismWeight = 0.15
	rawActionabilityWeight   = 0.15
)

// CalculateMetrics scores the raw, untransformed input against the
// analysis. All arithmetic is additive with clamping, so scores cannot
// leave [0,100].
func CalculateMetrics(text string, a *Analysis) *Metrics {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(lower))

	clarity := scoreClarity(lower, wordCount, a)
	specificity := scoreSpecificity(lower, a)
	completeness := scoreCompleteness(lower, wordCount, a)
	professionalism := scoreProfessionalism(lower, a)
	actionability := scoreActionability(lower)

	overall := int(math.Round(
		rawClarityWeight*float64(clarity) +
			rawSpecificityWeight*float64(specificity) +
			rawCompletenessWeight*float64(completeness) +
			rawProfessionalismWeight*float64(professionalism) +
			rawActionabilityWeight*float64(actionability),
	))

	return &Metrics{
		Clarity:         clarity,
		Specificity:     specificity,
		Completeness:    completeness,
		Professionalism: professionalism,
		Actionability:   actionability,
		Overall:         clamp(overall),
	}
}

func scoreClarity(lower string, wordCount int, a *Analysis) int {
	score := 50
	if strings.Contains(lower, "?") {
		score += 10
	}
	if wordCount >= 10 {
		score += 20
	}
	if a.Intent != IntentGeneral {
		score += 20
	}
	return clamp(score)
}

func scoreSpecificity(lower string, a *Analysis) int {
	score := 30
	if a.Domain != DomainGeneral {
		score += 25
	}
	switch a.Complexity {
	case ComplexityAdvanced:
		score += 25
	case ComplexityIntermediate:
		score += 15
	}
	if strings.Contains(lower, "specific") || strings.Contains(lower, "detailed") {
		score += 20
	}
	return clamp(score)
}

func scoreCompleteness(lower string, wordCount int, a *Analysis) int {
	score := 40
	switch {
	case len(a.MissingElements) == 0:
		score += 30
	case len(a.MissingElements) <= 2:
		score += 15
	}
	if wordCount >= 20 {
		score += 20
	}
	if containsAny(lower, audienceTerms) {
		score += 10
	}
	return clamp(score)
}

func scoreProfessionalism(lower string, a *Analysis) int {
	score := 60
	if strings.Contains(lower, "professional") || strings.Contains(lower, "expert") {
		score += 20
	}
	if len(a.RequiredExpertise) > 0 {
		score += 20
	}
	return clamp(score)
}

func scoreActionability(lower string) int {
	score := 50
	if containsAny(lower, creationVerbs) {
		score += 25
	}
	if containsAny(lower, processTerms) {
		score += 25
	}
	return clamp(score)
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
