package repository

import (
	"context"
	"sync"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/entities"
)

// MemoryRepository keeps transcripts in process memory with the same version
// semantics as the persistent stores.
type MemoryRepository struct {
	mu          sync.RWMutex
	transcripts map[string]entities.Transcript
	profile     *entities.CompanyProfile
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{transcripts: make(map[string]entities.Transcript)}
}

func (r *MemoryRepository) FindTranscript(ctx context.Context, userID string) (entities.Transcript, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.transcripts[userID]
	if !ok {
		return entities.NewTranscript(userID), nil
	}
	return copyTranscript(stored), nil
}

func (r *MemoryRepository) SaveTranscript(ctx context.Context, transcript entities.Transcript) (entities.Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.transcripts[transcript.UserID]
	if stored.Version != transcript.Version {
		return entities.Transcript{}, apperrors.Conflict(transcript.UserID, transcript.Version)
	}

	saved := copyTranscript(transcript)
	saved.Version++
	r.transcripts[transcript.UserID] = saved
	return copyTranscript(saved), nil
}

func (r *MemoryRepository) FindCompanyProfile(ctx context.Context) (entities.CompanyProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return entities.CompanyProfile{}, nil
	}
	return *r.profile, nil
}

func (r *MemoryRepository) SaveCompanyProfile(ctx context.Context, profile entities.CompanyProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = &profile
	return nil
}

func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}

func copyTranscript(t entities.Transcript) entities.Transcript {
	turns := make([]entities.Turn, len(t.Turns))
	copy(turns, t.Turns)
	t.Turns = turns
	return t
}
