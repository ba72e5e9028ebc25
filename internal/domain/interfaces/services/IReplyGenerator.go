package Iservices

import (
	"context"

	"training-chatbot/internal/domain/dto"
)

// IReplyGenerator sends a single prompt context to the generative backend and
// returns the trimmed reply.
type IReplyGenerator interface {
	Generate(ctx context.Context, messages []dto.PromptMessage) (string, error)
}
