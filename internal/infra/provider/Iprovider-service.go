package provider

import (
	"context"

	"training-chatbot/internal/domain/dto"
)

// ILLMProvider sends an ordered prompt context to a generative backend and
// returns the raw completion text.
type ILLMProvider interface {
	Complete(ctx context.Context, messages []dto.PromptMessage, opts dto.GenerationOptions) (string, error)
	Name() string
}
