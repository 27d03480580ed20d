// Package matcher scores the template catalog against free text using
// weighted keyword overlap and returns the best match with confidence.
package matcher

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/adalundhe/promptforge/core/catalog"
)

const (
	exactMatchScore   = 10.0
	partialMatchScore = 5.0
	confidenceDivisor = 50.0

	// suggestionThreshold is the confidence at or below which no
	// template is suggested. Falling below it is a valid "no
	// suggestion" result, never an error.
	suggestionThreshold = 40.0

	strongThreshold = 70.0

	maxAlternatives = 3

	// minPartialWordLen keeps short stopwords out of partial matching
	minPartialWordLen = 4

	defaultMemoSize = 128
)

// Canned reasoning strings, one per confidence band.
const (
	ReasoningStrong   = "Strong keyword overlap with a catalog template; the suggestion is a confident fit."
	ReasoningModerate = "Moderate keyword overlap with the catalog; the suggested template is a reasonable starting point."
	ReasoningNone     = "No template matched with enough confidence; proceeding without a template suggestion."
)

// Match is the result of template detection. SuggestedTemplate is nil
// when confidence falls at or below the suggestion threshold.
type Match struct {
	SuggestedTemplate *catalog.Template   `json:"suggested_template,omitempty"`
	Confidence        float64             `json:"confidence"`
	Alternatives      []*catalog.Template `json:"alternatives,omitempty"`
	Reasoning         string              `json:"reasoning"`
}

// Matcher detects the best-fitting catalog template for raw text.
// Detection is deterministic, so recent results are memoized in an LRU.
type Matcher struct {
	registry *catalog.Registry
	memo     *lru.Cache[string, *Match]
}

// NewMatcher creates a matcher over the given catalog registry.
// A non-positive memoSize falls back to the default capacity.
func NewMatcher(registry *catalog.Registry, memoSize int) (*Matcher, error) {
	if memoSize <= 0 {
		memoSize = defaultMemoSize
	}

	memo, err := lru.New[string, *Match](memoSize)
	if err != nil {
		return nil, err
	}

	return &Matcher{
		registry: registry,
		memo:     memo,
	}, nil
}

// DetectTemplate scores every catalog template against the text and
// returns the ranked outcome. Calling it twice with the same text yields
// an identical suggestion and confidence.
func (m *Matcher) DetectTemplate(text string) *Match {
	key := normalizeKey(text)

	if cached, ok := m.memo.Get(key); ok {
		return cached
	}

	match := m.detect(key)
	m.memo.Add(key, match)
	return match
}

type scoredTemplate struct {
	template *catalog.Template
	score    float64
}

func (m *Matcher) detect(lower string) *Match {
	words := strings.Fields(lower)

	scored := make([]scoredTemplate, 0, m.registry.Len())
	for _, tmpl := range m.registry.All() {
		score := scoreTemplate(lower, words, tmpl)
		scored = append(scored, scoredTemplate{template: tmpl, score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].template.ID < scored[j].template.ID
	})

	if len(scored) == 0 {
		return &Match{Reasoning: ReasoningNone}
	}

	confidence := scored[0].score / confidenceDivisor * 100
	if confidence > 100 {
		confidence = 100
	}

	match := &Match{
		Confidence:   confidence,
		Alternatives: collectAlternatives(scored),
		Reasoning:    reasoningForConfidence(confidence),
	}

	if confidence > suggestionThreshold {
		match.SuggestedTemplate = scored[0].template
	}

	return match
}

// scoreTemplate awards 10 points per keyword appearing verbatim in the
// text and 5 points per word partially overlapping a keyword, then
// weights the total by the template's effectiveness rating.
func scoreTemplate(lower string, words []string, tmpl *catalog.Template) float64 {
	var score float64

	for _, kw := range tmpl.Keywords {
		kwLower := strings.ToLower(kw)

		if strings.Contains(lower, kwLower) {
			score += exactMatchScore
			continue
		}

		for _, word := range words {
			if len(word) < minPartialWordLen {
				continue
			}
			if strings.Contains(word, kwLower) || strings.Contains(kwLower, word) {
				score += partialMatchScore
			}
		}
	}

	return score * float64(tmpl.Effectiveness) / 100
}

func collectAlternatives(scored []scoredTemplate) []*catalog.Template {
	var result []*catalog.Template
	for _, st := range scored[1:] {
		if len(result) == maxAlternatives {
			break
		}
		result = append(result, st.template)
	}
	return result
}

func reasoningForConfidence(confidence float64) string {
	switch {
	case confidence > strongThreshold:
		return ReasoningStrong
	case confidence > suggestionThreshold:
		return ReasoningModerate
	default:
		return ReasoningNone
	}
}

func normalizeKey(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
