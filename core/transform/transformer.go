// Package transform assembles five-section meta-prompts from analyzed
// input using per-domain and per-intent fragment tables.
package transform

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/adalundhe/promptforge/core/analysis"
	"github.com/adalundhe/promptforge/core/catalog"
	"github.com/adalundhe/promptforge/core/errors"
)

// The five canonical section headers, in emission order.
const (
	HeaderContext    = "#CONTEXT"
	HeaderGoal       = "#GOAL"
	HeaderInfo       = "#INFORMATION"
	HeaderGuidelines = "#RESPONSE GUIDELINES"
	HeaderOutput     = "#OUTPUT"
)

// minInputRunes is the minimum trimmed input length to transform.
const minInputRunes = 2

// TransformationTypeMetaPrompt tags procedurally assembled results.
const TransformationTypeMetaPrompt = "meta_prompt"

// TransformationTypeTemplate tags results built from a catalog template.
const TransformationTypeTemplate = "template"

// Result is the assembled output of one transformation. It is immutable
// once produced and may be fed to the quality validator.
type Result struct {
	ID                 string             `json:"id"`
	OriginalInput      string             `json:"original_input"`
	TransformedPrompt  string             `json:"transformed_prompt"`
	TransformationType string             `json:"transformation_type"`
	QualityScore       int                `json:"quality_score"`
	Improvements       []string           `json:"improvements"`
	AppliedTechniques  []string           `json:"applied_techniques"`
	ExpertRole         string             `json:"expert_role"`
	OutputSpec         []string           `json:"output_spec"`
	Duration           time.Duration      `json:"duration"`
	TemplateUsed       string             `json:"template_used"`
	Analysis           *analysis.Analysis `json:"analysis"`
	Metrics            *analysis.Metrics  `json:"metrics"`
}

// Transformer expands raw requests into fully specified meta-prompts.
type Transformer struct {
	analyzer *analysis.Analyzer
}

// NewTransformer creates a Transformer.
func NewTransformer(analyzer *analysis.Analyzer) *Transformer {
	return &Transformer{analyzer: analyzer}
}

// Transform assembles a meta-prompt procedurally from the fragment
// tables. It fails only when the trimmed input is shorter than two
// characters.
func (t *Transformer) Transform(rawInput string) (*Result, error) {
	start := time.Now()

	trimmed := strings.TrimSpace(rawInput)
	if utf8.RuneCountInString(trimmed) < minInputRunes {
		return nil, errors.ErrInputTooShort
	}

	a := t.analyzer.Analyze(trimmed)
	metrics := analysis.CalculateMetrics(trimmed, a)

	domainFrags := domainFragmentsFor(a.Domain)
	intentFrags := intentFragmentsFor(a.Intent)

	prompt := assemblePrompt(trimmed, domainFrags, intentFrags)

	return &Result{
		ID:                 uuid.NewString(),
		OriginalInput:      rawInput,
		TransformedPrompt:  prompt,
		TransformationType: TransformationTypeMetaPrompt,
		QualityScore:       metrics.Overall,
		Improvements:       appliedImprovements(),
		AppliedTechniques:  appliedTechniques(),
		ExpertRole:         domainFrags.expertRole,
		OutputSpec:         append([]string(nil), intentFrags.outputSpec...),
		Duration:           time.Since(start),
		TemplateUsed:       string(a.Domain),
		Analysis:           a,
		Metrics:            metrics,
	}, nil
}

// TransformWithTemplate builds the prompt around a catalog template's
// structure instead of the procedural fragments, recording the template
// id. The expert role and output specification still come from the
// fragment tables for the analyzed domain and intent.
func (t *Transformer) TransformWithTemplate(rawInput string, tmpl *catalog.Template) (*Result, error) {
	start := time.Now()

	if tmpl == nil {
		return t.Transform(rawInput)
	}

	trimmed := strings.TrimSpace(rawInput)
	if utf8.RuneCountInString(trimmed) < minInputRunes {
		return nil, errors.ErrInputTooShort
	}

	a := t.analyzer.Analyze(trimmed)
	metrics := analysis.CalculateMetrics(trimmed, a)

	domainFrags := domainFragmentsFor(a.Domain)
	intentFrags := intentFragmentsFor(a.Intent)

	var b strings.Builder
	b.WriteString(domainFrags.expertRole)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(tmpl.Structure))
	b.WriteString("\n\nORIGINAL REQUEST: ")
	b.WriteString(sanitizeEcho(trimmed))

	return &Result{
		ID:                 uuid.NewString(),
		OriginalInput:      rawInput,
		TransformedPrompt:  b.String(),
		TransformationType: TransformationTypeTemplate,
		QualityScore:       metrics.Overall,
		Improvements:       appliedImprovements(),
		AppliedTechniques:  appliedTechniques(),
		ExpertRole:         domainFrags.expertRole,
		OutputSpec:         append([]string(nil), intentFrags.outputSpec...),
		Duration:           time.Since(start),
		TemplateUsed:       tmpl.ID,
		Analysis:           a,
		Metrics:            metrics,
	}, nil
}

// assemblePrompt renders the canonical five-section layout, prefixed by
// the expert role sentence. Each header appears exactly once.
func assemblePrompt(input string, domainFrags domainFragments, intentFrags intentFragments) string {
	var b strings.Builder

	b.WriteString(domainFrags.expertRole)
	b.WriteString("\n\n")

	b.WriteString(HeaderContext)
	b.WriteString("\n")
	b.WriteString(domainFrags.contextBase)
	b.WriteString(" ")
	b.WriteString(intentFrags.contextAddendum)
	b.WriteString("\n\n")

	b.WriteString(HeaderGoal)
	b.WriteString("\n")
	b.WriteString(intentFrags.goal)
	b.WriteString("\n\n")

	b.WriteString(HeaderInfo)
	b.WriteString("\n")
	b.WriteString("To respond well, take into account:\n")
	writeBullets(&b, domainFrags.infoRequired)
	b.WriteString("\n")

	b.WriteString(HeaderGuidelines)
	b.WriteString("\n")
	writeBullets(&b, intentFrags.guidelines)
	b.WriteString("\n")

	b.WriteString(HeaderOutput)
	b.WriteString("\n")
	writeBullets(&b, intentFrags.outputSpec)
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("ORIGINAL REQUEST: %s", sanitizeEcho(input)))

	return b.String()
}

// sanitizeEcho strips section markers from the echoed request so each
// header appears exactly once in the assembled prompt no matter what the
// caller typed.
func sanitizeEcho(input string) string {
	for _, header := range []string{
		HeaderContext,
		HeaderGoal,
		HeaderInfo,
		HeaderGuidelines,
		HeaderOutput,
	} {
		input = strings.ReplaceAll(input, header, strings.TrimPrefix(header, "#"))
	}
	return input
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}
