// Package analysis classifies raw prompt text along intent, domain, and
// complexity axes and derives quality metrics for the untransformed input.
// Classification is deterministic keyword matching; there is no model call.
package analysis

import (
	"strings"
)

// Intent is the coarse task-type classification.
type Intent string

const (
	IntentContentCreation Intent = "content_creation"
	IntentAnalysis        Intent = "analysis"
	IntentPlanning        Intent = "planning"
	IntentEducation       Intent = "education"
	IntentOptimization    Intent = "optimization"
	IntentGeneral         Intent = "general"
)

// Domain is the coarse subject-matter classification.
type Domain string

const (
	DomainBusiness   Domain = "business"
	DomainTechnology Domain = "technology"
	DomainCreative   Domain = "creative"
	DomainEducation  Domain = "education"
	DomainHealth     Domain = "health"
	DomainPersonal   Domain = "personal"
	DomainGeneral    Domain = "general"
)

// Complexity is the input complexity level.
type Complexity string

const (
	ComplexityBasic        Complexity = "basic"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
)

// Analysis is the classification of one raw input. Intent and Domain are
// always set; they default to general rather than being empty.
type Analysis struct {
	Intent             Intent     `json:"intent"`
	Domain             Domain     `json:"domain"`
	Complexity         Complexity `json:"complexity"`
	RequiredExpertise  []string   `json:"required_expertise"`
	SuggestedFramework string     `json:"suggested_framework"`
	MissingElements    []string   `json:"missing_elements"`

	// ImprovementOpportunities is a fixed advisory list, identical for
	// every input. Known simplification carried over intentionally.
	ImprovementOpportunities []string `json:"improvement_opportunities"`
}

// Analyzer performs keyword-based prompt classification.
type Analyzer struct{}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze classifies the input text. Empty input yields the
// general/general/basic defaults rather than an error.
func (a *Analyzer) Analyze(text string) *Analysis {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	intent := detectIntent(lower)
	domain := detectDomain(lower)

	return &Analysis{
		Intent:                   intent,
		Domain:                   domain,
		Complexity:               detectComplexity(lower, len(words)),
		RequiredExpertise:        expertiseForDomain(domain),
		SuggestedFramework:       frameworkForIntent(intent),
		MissingElements:          detectMissingElements(lower, len(words)),
		ImprovementOpportunities: improvementOpportunities(),
	}
}

// detectIntent checks the intent keyword sets in a fixed order; the
// first set with any match wins, so the order is the tie-break.
func detectIntent(lower string) Intent {
	for _, entry := range intentKeywords {
		if containsAny(lower, entry.keywords) {
			return entry.intent
		}
	}
	return IntentGeneral
}

// detectDomain checks the domain keyword sets in a fixed order; the
// first set with any match wins.
func detectDomain(lower string) Domain {
	for _, entry := range domainKeywords {
		if containsAny(lower, entry.keywords) {
			return entry.domain
		}
	}
	return DomainGeneral
}

func detectComplexity(lower string, wordCount int) Complexity {
	if wordCount > 20 || containsAny(lower, advancedMarkers) {
		return ComplexityAdvanced
	}
	if wordCount > 10 || containsAny(lower, intermediateMarkers) {
		return ComplexityIntermediate
	}
	return ComplexityBasic
}

func detectMissingElements(lower string, wordCount int) []string {
	var missing []string

	if !containsAny(lower, audienceTerms) {
		missing = append(missing, "Target audience is not specified")
	}
	if !containsAny(lower, goalTerms) {
		missing = append(missing, "Clear goal or objective is not stated")
	}
	if wordCount < minDetailWordCount {
		missing = append(missing, "Insufficient detail to work from")
	}
	if !containsAny(lower, formatTerms) {
		missing = append(missing, "Desired output format is not specified")
	}

	return missing
}

// improvementOpportunities returns the same five suggestions for every
// input. The list is advisory copy, not derived from content.
func improvementOpportunities() []string {
	return []string{
		"Add a clear target audience",
		"Specify the desired output format",
		"Provide relevant context and constraints",
		"State measurable success criteria",
		"Request a professional tone and structure",
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
