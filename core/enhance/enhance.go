// Package enhance adapts remote LLM providers for optional prompt
// refinement. Every adapter failure is classified into the tiered error
// taxonomy so callers can decide between retry and local fallback.
package enhance

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/adalundhe/promptforge/core/errors"
)

// Style selects the refinement register the remote model is asked for.
type Style string

const (
	// StylePrecise tightens wording and removes ambiguity.
	StylePrecise Style = "precise"

	// StyleCreative loosens the register for generative tasks.
	StyleCreative Style = "creative"

	// StyleStructured reinforces the section framework.
	StyleStructured Style = "structured"
)

// DefaultStyle is used when a caller passes an empty style.
const DefaultStyle = StylePrecise

var styleSystemPrompts = map[Style]string{
	StylePrecise: "You refine prompts for precision. Rewrite the prompt the user provides so every " +
		"instruction is unambiguous and measurable. Keep the existing section headers exactly as " +
		"they appear. Return only the rewritten prompt.",
	StyleCreative: "You refine prompts for creative work. Rewrite the prompt the user provides to " +
		"invite original, vivid output while preserving its goals and constraints. Keep the " +
		"existing section headers exactly as they appear. Return only the rewritten prompt.",
	StyleStructured: "You refine prompts for structure. Rewrite the prompt the user provides so each " +
		"section is complete, ordered, and internally consistent. Keep the existing section " +
		"headers exactly as they appear. Return only the rewritten prompt.",
}

// Valid reports whether the style is one of the known registers.
func (s Style) Valid() bool {
	_, ok := styleSystemPrompts[s]
	return ok
}

// SystemPrompt returns the system prompt for the style, falling back to
// the default register for unknown values.
func (s Style) SystemPrompt() string {
	if prompt, ok := styleSystemPrompts[s]; ok {
		return prompt
	}
	return styleSystemPrompts[DefaultStyle]
}

// Adapter is the remote enhancement boundary. Implementations send the
// transformed prompt to a provider and return the refined text.
type Adapter interface {
	// Name returns the provider identifier.
	Name() string

	// Enhance submits the prompt for refinement in the given style.
	Enhance(ctx context.Context, prompt string, style Style) (string, error)
}

// classifyFailure maps a provider call failure into the tiered taxonomy
// using the HTTP status when one is available. A zero status means the
// request never produced a response. The provider name lands in the
// error context so degraded outcomes name their source.
func classifyFailure(provider string, statusCode int, err error) error {
	if err == nil {
		return nil
	}

	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return providerFailure(provider, errors.ErrTimeout, err, statusCode)
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return errors.NewTieredError(errors.TierUserFixable,
			fmt.Sprintf("%s rejected credentials", provider), err).
			WithStatusCode(statusCode).
			WithContext("provider", provider)
	case statusCode == http.StatusTooManyRequests:
		return providerFailure(provider, errors.ErrRateLimited, err, statusCode)
	case statusCode == http.StatusRequestTimeout:
		return providerFailure(provider, errors.ErrTimeout, err, statusCode)
	case statusCode >= http.StatusInternalServerError:
		return providerFailure(provider, errors.ErrServiceUnavailable, err, statusCode)
	case statusCode >= http.StatusBadRequest:
		// Remaining 4xx responses mean the request itself was wrong:
		// unknown model, oversized payload. Fixing the configuration is
		// on the caller, and the pipeline still falls back locally.
		return errors.NewTieredError(errors.TierUserFixable,
			fmt.Sprintf("%s rejected the request", provider), err).
			WithStatusCode(statusCode).
			WithContext("provider", provider)
	}

	// No HTTP response at all: network failure.
	return providerFailure(provider, errors.ErrConnectionFailed, err, statusCode)
}

// providerFailure instantiates a sentinel's tier and message as a fresh
// error carrying the provider and the original cause.
func providerFailure(provider string, sentinel *errors.TieredError, err error, statusCode int) error {
	te := errors.NewTieredError(sentinel.Tier, sentinel.Message, err).
		WithContext("provider", provider)
	if statusCode != 0 {
		te = te.WithStatusCode(statusCode)
	}
	return te
}

// validateCompletion rejects empty or whitespace-only provider output.
func validateCompletion(provider, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.WrapWithTier(errors.TierExternalDegrading,
			fmt.Sprintf("%s returned no content", provider), errors.ErrMalformedResponse)
	}
	return trimmed, nil
}
