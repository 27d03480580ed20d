// Package pipeline composes analysis, matching, transformation,
// validation, and optional remote enhancement into one engine. The
// engine always produces a local result; remote failures degrade the
// outcome instead of failing it.
package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/adalundhe/promptforge/core/analysis"
	"github.com/adalundhe/promptforge/core/catalog"
	"github.com/adalundhe/promptforge/core/enhance"
	"github.com/adalundhe/promptforge/core/errors"
	"github.com/adalundhe/promptforge/core/matcher"
	"github.com/adalundhe/promptforge/core/transform"
	"github.com/adalundhe/promptforge/core/validate"
)

// Options control one Process call.
type Options struct {
	// UseTemplate applies the suggested catalog template when the
	// matcher is confident enough to suggest one.
	UseTemplate bool

	// Enhance runs the remote refinement pass when an adapter is
	// configured. Without an adapter the flag is ignored.
	Enhance bool

	// Style is the refinement register for the remote pass.
	Style enhance.Style
}

// Outcome is the full product of one pipeline run.
type Outcome struct {
	Transformation *transform.Result `json:"transformation"`
	Validation     *validate.Result  `json:"validation"`
	Match          *matcher.Match    `json:"match"`

	// EnhancedPrompt is the remote refinement, empty when the pass was
	// skipped or failed.
	EnhancedPrompt string `json:"enhanced_prompt,omitempty"`

	// LocalOnly is true when no remote refinement was applied, whether
	// because enhancement was disabled or because the remote call
	// failed.
	LocalOnly bool `json:"local_only"`

	// RemoteError carries the remote failure, empty on success or skip.
	RemoteError string `json:"remote_error,omitempty"`

	// RemoteNotify is true when the remote failure's tier asks to be
	// surfaced to the user rather than silently absorbed.
	RemoteNotify bool `json:"remote_notify,omitempty"`

	// CacheHit marks outcomes served from the result cache.
	CacheHit bool `json:"cache_hit"`
}

// Engine wires the pipeline stages together.
type Engine struct {
	registry    *catalog.Registry
	matcher     *matcher.Matcher
	transformer *transform.Transformer
	validator   *validate.Validator
	adapter     enhance.Adapter
	cache       *ResultCache
	stats       *Stats
}

// EngineConfig configures engine construction.
type EngineConfig struct {
	// Registry is the template catalog. Required.
	Registry *catalog.Registry

	// Adapter is the optional remote enhancement boundary.
	Adapter enhance.Adapter

	// Cache configures the result cache.
	Cache *CacheConfig

	// MatcherMemoSize bounds the matcher's detection memo. Zero uses
	// the matcher's default.
	MatcherMemoSize int
}

// NewEngine creates an Engine over the given catalog registry.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	m, err := matcher.NewMatcher(cfg.Registry, cfg.MatcherMemoSize)
	if err != nil {
		return nil, err
	}

	cache, err := NewResultCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	return &Engine{
		registry:    cfg.Registry,
		matcher:     m,
		transformer: transform.NewTransformer(analysis.NewAnalyzer()),
		validator:   validate.NewValidator(),
		adapter:     cfg.Adapter,
		cache:       cache,
		stats:       NewStats(),
	}, nil
}

// Process runs the full pipeline for one input. It fails only on
// invalid input; provider-side problems degrade to a local-only
// outcome after the tier's retry budget is spent.
func (e *Engine) Process(ctx context.Context, input string, opts Options) (*Outcome, error) {
	key := cacheKey(input, opts)

	if cached, ok := e.cache.Get(key); ok {
		e.stats.recordCacheHit()
		hit := *cached
		hit.CacheHit = true
		return &hit, nil
	}

	match := e.matcher.DetectTemplate(input)

	result, err := e.transformInput(input, match, opts)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Transformation: result,
		Validation:     e.validator.Validate(result.TransformedPrompt),
		Match:          match,
		LocalOnly:      true,
	}

	if opts.Enhance && e.adapter != nil {
		if err := e.runEnhancement(ctx, outcome, opts.Style); err != nil {
			return nil, err
		}
	}

	e.stats.recordProcessed()

	// Degraded outcomes are not cached; a later run may reach the
	// provider again instead of replaying the failure for the TTL.
	if outcome.RemoteError == "" {
		e.cache.Set(key, outcome)
	}

	return outcome, nil
}

func (e *Engine) transformInput(input string, match *matcher.Match, opts Options) (*transform.Result, error) {
	if opts.UseTemplate && match.SuggestedTemplate != nil {
		result, err := e.transformer.TransformWithTemplate(input, match.SuggestedTemplate)
		if err != nil {
			return nil, err
		}

		// Best effort; a missing usage store never fails the run.
		_, _ = e.registry.Apply(match.SuggestedTemplate.ID)
		e.stats.recordTemplateApplied()
		return result, nil
	}

	return e.transformer.Transform(input)
}

// runEnhancement performs the remote pass with a bounded retry driven
// by the failure tier's behavior table. Provider-side failures leave
// the local outcome intact once the retry budget is spent; only errors
// whose tier forbids fallback propagate.
func (e *Engine) runEnhancement(ctx context.Context, outcome *Outcome, style Style) error {
	prompt := outcome.Transformation.TransformedPrompt

	enhanced, err := e.adapter.Enhance(ctx, prompt, style)
	for attempt := 0; err != nil; attempt++ {
		behavior := errors.GetBehavior(err)
		if !behavior.ShouldRetry || attempt >= behavior.MaxRetries || ctx.Err() != nil {
			break
		}

		timer := time.NewTimer(retryDelay(err, attempt, behavior))
		select {
		case <-ctx.Done():
			timer.Stop()
			continue
		case <-timer.C:
		}

		enhanced, err = e.adapter.Enhance(ctx, prompt, style)
	}

	if err != nil {
		behavior := errors.GetBehavior(err)
		if !behavior.AllowsFallback {
			return err
		}

		e.stats.recordRemoteFailure()
		outcome.RemoteError = err.Error()
		outcome.RemoteNotify = behavior.ShouldNotify
		return nil
	}

	e.stats.recordRemoteSuccess()
	outcome.EnhancedPrompt = enhanced
	outcome.LocalOnly = false
	return nil
}

// retryDelay honors an explicit retry-after hint when the provider sent
// one, otherwise doubles the tier's base backoff per attempt up to the
// tier's cap.
func retryDelay(err error, attempt int, behavior errors.TierBehavior) time.Duration {
	var te *errors.TieredError
	if stderrors.As(err, &te) && te.RetryAfter > 0 {
		return te.RetryAfter
	}

	delay := behavior.BaseBackoff << attempt
	if delay > behavior.MaxBackoff {
		delay = behavior.MaxBackoff
	}
	return delay
}

// Style aliases the enhancement style for callers that only import the
// pipeline package.
type Style = enhance.Style

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Snapshot {
	return e.stats.Snapshot()
}

// Registry exposes the underlying template catalog.
func (e *Engine) Registry() *catalog.Registry {
	return e.registry
}

// Validator exposes the quality validator for direct validation calls.
func (e *Engine) Validator() *validate.Validator {
	return e.validator
}

// Close releases the result cache.
func (e *Engine) Close() {
	e.cache.Close()
}
