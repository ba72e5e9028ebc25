package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"training-chatbot/internal/domain/dto"
	"training-chatbot/internal/infra/logger"
)

const DefaultOpenAIModel = openai.ChatModelGPT4

type OpenAIProvider struct {
	Logger *logger.Logger
	client openai.Client
	model  string
}

// NewOpenAIProvider builds a chat completions backend. Retries are disabled;
// a failed call surfaces immediately.
func NewOpenAIProvider(logger *logger.Logger, apiKey, model string, opts ...option.RequestOption) *OpenAIProvider {
	if model == "" {
		model = DefaultOpenAIModel
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	return &OpenAIProvider{
		Logger: logger,
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Complete(ctx context.Context, messages []dto.PromptMessage, opts dto.GenerationOptions) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       p.model,
		Messages:    make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
		MaxTokens:   openai.Int(opts.MaxTokens),
		Temperature: openai.Float(opts.Temperature),
	}
	for _, m := range messages {
		switch m.Role {
		case dto.PromptRoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("OpenAI chat completion failed: %s", err.Error()))
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("openai: response has no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
