package enhance

import (
	"context"
	stderrors "errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIAdapter implements Adapter for OpenAI's GPT models.
type OpenAIAdapter struct {
	client *openai.Client
	config OpenAIConfig
}

// NewOpenAIAdapter creates a new OpenAI adapter with the given configuration
func NewOpenAIAdapter(config OpenAIConfig) (*OpenAIAdapter, error) {
	if config.Model == "" {
		config.Model = DefaultOpenAIConfig().Model
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultOpenAIConfig().MaxTokens
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

	if config.Organization != "" {
		opts = append(opts, option.WithHeader("OpenAI-Organization", config.Organization))
	}

	client := openai.NewClient(opts...)

	return &OpenAIAdapter{
		client: &client,
		config: config,
	}, nil
}

// Name returns the provider identifier
func (a *OpenAIAdapter) Name() string {
	return string(ProviderTypeOpenAI)
}

// Enhance submits the prompt for refinement in the given style.
func (a *OpenAIAdapter) Enhance(ctx context.Context, prompt string, style Style) (string, error) {
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(style.SystemPrompt()),
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(int64(a.config.MaxTokens)),
	}

	if a.config.Temperature > 0 {
		params.Temperature = openai.Float(a.config.Temperature)
	}

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyFailure(a.Name(), openaiStatusCode(err), err)
	}

	if len(completion.Choices) == 0 {
		return validateCompletion(a.Name(), "")
	}

	return validateCompletion(a.Name(), completion.Choices[0].Message.Content)
}

func openaiStatusCode(err error) int {
	var apierr *openai.Error
	if stderrors.As(err, &apierr) {
		return apierr.StatusCode
	}
	return 0
}
