package enhance

import (
	"context"
	stderrors "errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicAdapter implements Adapter for Anthropic's Claude models.
type AnthropicAdapter struct {
	client *anthropic.Client
	config AnthropicConfig
}

// NewAnthropicAdapter creates a new Anthropic adapter with the given configuration
func NewAnthropicAdapter(config AnthropicConfig) (*AnthropicAdapter, error) {
	if config.Model == "" {
		config.Model = DefaultAnthropicConfig().Model
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultAnthropicConfig().MaxTokens
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	client := anthropic.NewClient(opts...)

	return &AnthropicAdapter{
		client: &client,
		config: config,
	}, nil
}

// Name returns the provider identifier
func (a *AnthropicAdapter) Name() string {
	return string(ProviderTypeAnthropic)
}

// Enhance submits the prompt for refinement in the given style.
func (a *AnthropicAdapter) Enhance(ctx context.Context, prompt string, style Style) (string, error) {
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.config.Model),
		MaxTokens: int64(a.config.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: style.SystemPrompt()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	if a.config.Temperature > 0 {
		params.Temperature = anthropic.Float(a.config.Temperature)
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", classifyFailure(a.Name(), anthropicStatusCode(err), err)
	}

	return validateCompletion(a.Name(), collectText(msg))
}

func anthropicStatusCode(err error) int {
	var apierr *anthropic.Error
	if stderrors.As(err, &apierr) {
		return apierr.StatusCode
	}
	return 0
}

func collectText(msg *anthropic.Message) string {
	var text string
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			text += b.Text
		}
	}
	return text
}
