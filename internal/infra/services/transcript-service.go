package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/entities"
	"training-chatbot/internal/domain/interfaces/repository"
	"training-chatbot/internal/infra/logger"
)

// TranscriptService is the service responsible for loading and saving transcripts.
type TranscriptService struct {
	TranscriptRepository repository.TranscriptRepository
	Logger               *logger.Logger
}

// NewTranscriptService creates a new instance of the service.
func NewTranscriptService(transcriptRepository repository.TranscriptRepository, logger *logger.Logger) *TranscriptService {
	return &TranscriptService{
		TranscriptRepository: transcriptRepository,
		Logger:               logger,
	}
}

// Load returns the stored transcript, or an empty one at version 0.
func (ts *TranscriptService) Load(ctx context.Context, userID string) (entities.Transcript, error) {
	transcript, err := ts.TranscriptRepository.FindTranscript(ctx, userID)
	if err != nil {
		logger.FromContext(ctx, ts.Logger).Error(fmt.Sprintf("Failed to load transcript for user '%s': %v", userID, err))
		return entities.Transcript{}, apperrors.StoreUnavailable("load transcript", err)
	}
	return transcript, nil
}

// Save persists the whole transcript if nobody else saved it since it was loaded.
func (ts *TranscriptService) Save(ctx context.Context, transcript entities.Transcript) (entities.Transcript, error) {
	saved, err := ts.TranscriptRepository.SaveTranscript(ctx, transcript)
	if errors.Is(err, apperrors.ErrConflict) {
		logger.FromContext(ctx, ts.Logger).Warn("Transcript changed concurrently", logrus.Fields{
			"userId":  transcript.UserID,
			"version": transcript.Version,
		})
		return entities.Transcript{}, err
	}
	if err != nil {
		logger.FromContext(ctx, ts.Logger).Error(fmt.Sprintf("Failed to save transcript for user '%s': %v", transcript.UserID, err))
		return entities.Transcript{}, apperrors.StoreUnavailable("save transcript", err)
	}
	return saved, nil
}
