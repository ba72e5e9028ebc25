package Iservices

import (
	"context"

	"training-chatbot/internal/domain/entities"
)

// IConversationService orchestrates transcript, persona and reply generation.
type IConversationService interface {
	HandleUserMessage(ctx context.Context, userID, message string) (entities.Transcript, error)
	HandleInterviewerTurn(ctx context.Context, userID string, config entities.PersonaConfig) (string, entities.Transcript, error)
	GetHistory(ctx context.Context, userID string) (entities.Transcript, error)
	UpdateCompanyProfile(ctx context.Context, details string) error
}
