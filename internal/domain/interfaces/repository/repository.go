package repository

import (
	"context"

	"training-chatbot/internal/domain/entities"
)

// TranscriptRepository persists whole transcripts keyed by user id.
//
// FindTranscript returns entities.NewTranscript(userID) when nothing is stored.
// SaveTranscript replaces the stored sequence only if the stored version equals
// transcript.Version, returning the transcript at its new version; otherwise it
// returns an error matching apperrors.ErrConflict. Any other error means the
// backend could not be reached or rejected the write.
type TranscriptRepository interface {
	FindTranscript(ctx context.Context, userID string) (entities.Transcript, error)
	SaveTranscript(ctx context.Context, transcript entities.Transcript) (entities.Transcript, error)
}

// CompanyProfileRepository persists the singleton company profile.
// FindCompanyProfile returns the zero profile when none is stored.
type CompanyProfileRepository interface {
	FindCompanyProfile(ctx context.Context) (entities.CompanyProfile, error)
	SaveCompanyProfile(ctx context.Context, profile entities.CompanyProfile) error
}

// Store is a backend that holds both transcripts and the company profile.
type Store interface {
	TranscriptRepository
	CompanyProfileRepository
	Close(ctx context.Context) error
}
