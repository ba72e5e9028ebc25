package Iservices

import (
	"context"

	"training-chatbot/internal/domain/entities"
)

// ITranscriptService is the append-only per-user message log.
type ITranscriptService interface {
	Load(ctx context.Context, userID string) (entities.Transcript, error)
	Save(ctx context.Context, transcript entities.Transcript) (entities.Transcript, error)
}
