package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/dto"
	"training-chatbot/internal/infra/logger"
	"training-chatbot/internal/infra/metrics"
	"training-chatbot/internal/infra/provider"
)

const (
	DefaultMaxTokens   = 100
	DefaultTemperature = 0.7
)

var errEmptyReply = errors.New("backend returned an empty reply")

// ReplyGenerator makes exactly one backend call per Generate. There is no retry.
type ReplyGenerator struct {
	Provider provider.ILLMProvider
	Logger   *logger.Logger
	Metrics  *metrics.Metrics
	Timeout  time.Duration
	Options  dto.GenerationOptions
}

func NewReplyGenerator(llmProvider provider.ILLMProvider, logger *logger.Logger, m *metrics.Metrics, timeout time.Duration) *ReplyGenerator {
	return &ReplyGenerator{
		Provider: llmProvider,
		Logger:   logger,
		Metrics:  m,
		Timeout:  timeout,
		Options: dto.GenerationOptions{
			MaxTokens:   DefaultMaxTokens,
			Temperature: DefaultTemperature,
		},
	}
}

func (rg *ReplyGenerator) Generate(ctx context.Context, messages []dto.PromptMessage) (string, error) {
	if rg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rg.Timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := rg.Provider.Complete(ctx, messages, rg.Options)
	rg.Metrics.ObserveGeneration(rg.Provider.Name(), time.Since(start))
	if err != nil {
		logger.FromContext(ctx, rg.Logger).Error(fmt.Sprintf("Failed to generate reply with %s: %v", rg.Provider.Name(), err))
		return "", apperrors.GenerationFailed(err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		logger.FromContext(ctx, rg.Logger).Error(fmt.Sprintf("Provider %s returned an empty reply", rg.Provider.Name()))
		return "", apperrors.GenerationFailed(errEmptyReply)
	}
	return reply, nil
}
