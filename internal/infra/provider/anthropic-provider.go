package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"

	"training-chatbot/internal/domain/dto"
	"training-chatbot/internal/infra/logger"
)

const DefaultAnthropicModel = anthropic.ModelClaudeSonnet4_5

// personaCue is sent as the only user message when the context holds nothing
// but a system prompt, since the Messages API needs at least one user turn.
const personaCue = "Ask your question now."

type AnthropicProvider struct {
	Logger *logger.Logger
	client anthropic.Client
	model  anthropic.Model
}

func NewAnthropicProvider(logger *logger.Logger, apiKey, model string, opts ...option.RequestOption) *AnthropicProvider {
	m := anthropic.Model(model)
	if model == "" {
		m = DefaultAnthropicModel
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	return &AnthropicProvider{
		Logger: logger,
		client: anthropic.NewClient(opts...),
		model:  m,
	}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

func (p *AnthropicProvider) Complete(ctx context.Context, messages []dto.PromptMessage, opts dto.GenerationOptions) (string, error) {
	msg, err := p.client.Messages.New(ctx, p.buildParams(messages, opts))
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Anthropic message request failed: %s", err.Error()))
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func (p *AnthropicProvider) buildParams(messages []dto.PromptMessage, opts dto.GenerationOptions) anthropic.MessageNewParams {
	var system []anthropic.TextBlockParam
	turns := make([]anthropic.MessageParam, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case dto.PromptRoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
		default:
			turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	if len(turns) == 0 {
		turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(personaCue)))
	}

	params := anthropic.MessageNewParams{
		Model:       p.model,
		Messages:    turns,
		MaxTokens:   opts.MaxTokens,
		Temperature: param.NewOpt(opts.Temperature),
	}
	if len(system) > 0 {
		params.System = system
	}
	return params
}
