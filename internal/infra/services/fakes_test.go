package services

import (
	"context"
	"sync"

	"training-chatbot/internal/domain/dto"
	"training-chatbot/internal/domain/entities"
	"training-chatbot/internal/infra/repository"
)

type spyTranscriptRepository struct {
	*repository.MemoryRepository

	mu        sync.Mutex
	findErr   error
	saveErr   error
	saveCalls int
}

func newSpyTranscriptRepository() *spyTranscriptRepository {
	return &spyTranscriptRepository{MemoryRepository: repository.NewMemoryRepository()}
}

func (s *spyTranscriptRepository) FindTranscript(ctx context.Context, userID string) (entities.Transcript, error) {
	if s.findErr != nil {
		return entities.Transcript{}, s.findErr
	}
	return s.MemoryRepository.FindTranscript(ctx, userID)
}

func (s *spyTranscriptRepository) SaveTranscript(ctx context.Context, transcript entities.Transcript) (entities.Transcript, error) {
	s.mu.Lock()
	s.saveCalls++
	s.mu.Unlock()
	if s.saveErr != nil {
		return entities.Transcript{}, s.saveErr
	}
	return s.MemoryRepository.SaveTranscript(ctx, transcript)
}

func (s *spyTranscriptRepository) SaveCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveCalls
}

type stubProvider struct {
	mu       sync.Mutex
	reply    string
	err      error
	calls    int
	lastMsgs []dto.PromptMessage
	lastOpts dto.GenerationOptions
	block    bool
	onCall   func()
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Complete(ctx context.Context, messages []dto.PromptMessage, opts dto.GenerationOptions) (string, error) {
	p.mu.Lock()
	p.calls++
	p.lastMsgs = append([]dto.PromptMessage(nil), messages...)
	p.lastOpts = opts
	block := p.block
	onCall := p.onCall
	p.mu.Unlock()

	if onCall != nil {
		onCall()
	}

	if block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return p.reply, p.err
}

func (p *stubProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *stubProvider) LastMessages() []dto.PromptMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastMsgs
}
