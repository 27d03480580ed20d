package enhance

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/adalundhe/promptforge/core/errors"
)

func TestStyle_SystemPrompt(t *testing.T) {
	for _, style := range []Style{StylePrecise, StyleCreative, StyleStructured} {
		if !style.Valid() {
			t.Errorf("style %s should be valid", style)
		}
		if style.SystemPrompt() == "" {
			t.Errorf("style %s should have a system prompt", style)
		}
	}

	unknown := Style("baroque")
	if unknown.Valid() {
		t.Error("unknown style should not be valid")
	}
	if unknown.SystemPrompt() != DefaultStyle.SystemPrompt() {
		t.Error("unknown style should fall back to the default system prompt")
	}
}

func TestClassifyFailure(t *testing.T) {
	base := stderrors.New("boom")

	tests := []struct {
		name       string
		statusCode int
		err        error
		wantTier   errors.ErrorTier
		fallback   bool
	}{
		{"network", 0, base, errors.TierTransient, true},
		{"deadline", 0, context.DeadlineExceeded, errors.TierTransient, true},
		{"canceled", 0, context.Canceled, errors.TierTransient, true},
		{"unauthorized", http.StatusUnauthorized, base, errors.TierUserFixable, true},
		{"forbidden", http.StatusForbidden, base, errors.TierUserFixable, true},
		{"rate limited", http.StatusTooManyRequests, base, errors.TierExternalRateLimit, true},
		{"request timeout", http.StatusRequestTimeout, base, errors.TierTransient, true},
		{"server error", http.StatusInternalServerError, base, errors.TierExternalDegrading, true},
		{"bad gateway", http.StatusBadGateway, base, errors.TierExternalDegrading, true},
		{"bad request", http.StatusBadRequest, base, errors.TierUserFixable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyFailure("test", tt.statusCode, tt.err)

			if got := errors.GetTier(classified); got != tt.wantTier {
				t.Errorf("tier = %s, want %s", got, tt.wantTier)
			}
			if got := errors.AllowsFallback(classified); got != tt.fallback {
				t.Errorf("AllowsFallback = %v, want %v", got, tt.fallback)
			}
			if !stderrors.Is(classified, tt.err) {
				t.Error("classified error should wrap the original")
			}

			var te *errors.TieredError
			if !stderrors.As(classified, &te) {
				t.Fatal("classified error should be tiered")
			}
			if te.Context["provider"] != "test" {
				t.Errorf("provider context = %q, want test", te.Context["provider"])
			}
		})
	}

	if classifyFailure("test", 0, nil) != nil {
		t.Error("nil error should classify to nil")
	}
}

func TestClassifyFailure_MatchesSentinels(t *testing.T) {
	base := stderrors.New("boom")

	tests := []struct {
		name       string
		statusCode int
		sentinel   error
	}{
		{"network", 0, errors.ErrConnectionFailed},
		{"request timeout", http.StatusRequestTimeout, errors.ErrTimeout},
		{"rate limited", http.StatusTooManyRequests, errors.ErrRateLimited},
		{"server error", http.StatusInternalServerError, errors.ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyFailure("test", tt.statusCode, base)
			if !stderrors.Is(classified, tt.sentinel) {
				t.Errorf("classified error should match sentinel %v", tt.sentinel)
			}
		})
	}
}

func TestValidateCompletion(t *testing.T) {
	got, err := validateCompletion("test", "  refined prompt  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "refined prompt" {
		t.Errorf("got %q, want trimmed text", got)
	}

	_, err = validateCompletion("test", "   ")
	if err == nil {
		t.Fatal("whitespace-only completion should fail")
	}
	if !stderrors.Is(err, errors.ErrMalformedResponse) {
		t.Errorf("error = %v, want ErrMalformedResponse", err)
	}
	if errors.GetTier(err) != errors.TierExternalDegrading {
		t.Errorf("tier = %s, want external_degrading", errors.GetTier(err))
	}
}

func TestNewAnthropicAdapter_RequiresAPIKey(t *testing.T) {
	_, err := NewAnthropicAdapter(AnthropicConfig{})
	if err == nil {
		t.Fatal("adapter without an API key should fail")
	}
	if errors.GetTier(err) != errors.TierUserFixable {
		t.Errorf("tier = %s, want user_fixable", errors.GetTier(err))
	}
}

func TestNewOpenAIAdapter_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIAdapter(OpenAIConfig{})
	if err == nil {
		t.Fatal("adapter without an API key should fail")
	}
	if errors.GetTier(err) != errors.TierUserFixable {
		t.Errorf("tier = %s, want user_fixable", errors.GetTier(err))
	}
}

func TestAdapterDefaults(t *testing.T) {
	a, err := NewAnthropicAdapter(AnthropicConfig{BaseConfig: BaseConfig{APIKey: "key"}})
	if err != nil {
		t.Fatalf("NewAnthropicAdapter failed: %v", err)
	}
	if a.config.Model == "" || a.config.MaxTokens == 0 {
		t.Error("anthropic adapter should fill model and max_tokens defaults")
	}
	if a.Name() != string(ProviderTypeAnthropic) {
		t.Errorf("Name = %s", a.Name())
	}

	o, err := NewOpenAIAdapter(OpenAIConfig{BaseConfig: BaseConfig{APIKey: "key"}})
	if err != nil {
		t.Fatalf("NewOpenAIAdapter failed: %v", err)
	}
	if o.config.Model == "" || o.config.MaxTokens == 0 {
		t.Error("openai adapter should fill model and max_tokens defaults")
	}
	if o.Name() != string(ProviderTypeOpenAI) {
		t.Errorf("Name = %s", o.Name())
	}
}
