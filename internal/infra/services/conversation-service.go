package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"training-chatbot/internal/config"
	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/dto"
	"training-chatbot/internal/domain/entities"
	Iservices "training-chatbot/internal/domain/interfaces/services"
	"training-chatbot/internal/infra/logger"
	"training-chatbot/internal/infra/metrics"
)

const (
	msgMessageAndUserRequired = "Message and User ID are required"
	msgUserIDRequired         = "User ID is required"
	msgDetailsRequired        = "Company details are required"
)

// ConversationService runs each chat turn as one load, generate, save cycle.
// The save is the only write, so a failure earlier leaves the store untouched.
type ConversationService struct {
	TranscriptService     Iservices.ITranscriptService
	CompanyProfileService Iservices.ICompanyProfileService
	PersonaConfigurator   Iservices.IPersonaConfigurator
	ReplyGenerator        Iservices.IReplyGenerator
	Metrics               *metrics.Metrics
	Logger                *logger.Logger
}

func NewConversationService(
	transcriptService Iservices.ITranscriptService,
	companyProfileService Iservices.ICompanyProfileService,
	personaConfigurator Iservices.IPersonaConfigurator,
	replyGenerator Iservices.IReplyGenerator,
	m *metrics.Metrics,
	logger *logger.Logger,
) *ConversationService {
	return &ConversationService{
		TranscriptService:     transcriptService,
		CompanyProfileService: companyProfileService,
		PersonaConfigurator:   personaConfigurator,
		ReplyGenerator:        replyGenerator,
		Metrics:               m,
		Logger:                logger,
	}
}

// HandleUserMessage appends the user's message and the generated reply.
func (cs *ConversationService) HandleUserMessage(ctx context.Context, userID, message string) (transcript entities.Transcript, err error) {
	defer func() { cs.Metrics.RecordTurn(config.ChatModeMessage, outcomeOf(err)) }()

	if userID == "" || message == "" {
		return entities.Transcript{}, apperrors.InvalidRequest(msgMessageAndUserRequired)
	}

	transcript, err = cs.TranscriptService.Load(ctx, userID)
	if err != nil {
		return entities.Transcript{}, err
	}

	reply, err := cs.ReplyGenerator.Generate(ctx, []dto.PromptMessage{
		{Role: dto.PromptRoleUser, Content: message},
	})
	if err != nil {
		return entities.Transcript{}, err
	}

	transcript = transcript.Append(
		entities.Turn{Role: entities.RoleUser, Content: message},
		entities.Turn{Role: entities.RoleBot, Content: reply},
	)
	transcript, err = cs.TranscriptService.Save(ctx, transcript)
	if err != nil {
		return entities.Transcript{}, err
	}

	logger.FromContext(ctx, cs.Logger).Debug("Message turn stored", logrus.Fields{"userId": userID, "turns": len(transcript.Turns)})
	return transcript, nil
}

// HandleInterviewerTurn asks the backend, acting as a customer, for the next
// question and appends it as a single bot turn.
func (cs *ConversationService) HandleInterviewerTurn(ctx context.Context, userID string, persona entities.PersonaConfig) (question string, transcript entities.Transcript, err error) {
	defer func() { cs.Metrics.RecordTurn(config.ChatModeInterviewer, outcomeOf(err)) }()

	if userID == "" {
		return "", entities.Transcript{}, apperrors.InvalidRequest(msgUserIDRequired)
	}

	var profile entities.CompanyProfile
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var loadErr error
		transcript, loadErr = cs.TranscriptService.Load(gctx, userID)
		return loadErr
	})
	g.Go(func() error {
		var loadErr error
		profile, loadErr = cs.CompanyProfileService.Get(gctx)
		return loadErr
	})
	if err = g.Wait(); err != nil {
		return "", entities.Transcript{}, err
	}

	prompt := cs.PersonaConfigurator.BuildSystemPrompt(persona, profile.PromptDetails())
	question, err = cs.ReplyGenerator.Generate(ctx, []dto.PromptMessage{
		{Role: dto.PromptRoleSystem, Content: prompt},
	})
	if err != nil {
		return "", entities.Transcript{}, err
	}

	transcript, err = cs.TranscriptService.Save(ctx, transcript.Append(
		entities.Turn{Role: entities.RoleBot, Content: question},
	))
	if err != nil {
		return "", entities.Transcript{}, err
	}

	logger.FromContext(ctx, cs.Logger).Debug("Interviewer turn stored", logrus.Fields{"userId": userID, "turns": len(transcript.Turns)})
	return question, transcript, nil
}

func (cs *ConversationService) GetHistory(ctx context.Context, userID string) (entities.Transcript, error) {
	if userID == "" {
		return entities.Transcript{}, apperrors.InvalidRequest(msgUserIDRequired)
	}
	return cs.TranscriptService.Load(ctx, userID)
}

// UpdateCompanyProfile overwrites the singleton profile used by interviewer prompts.
func (cs *ConversationService) UpdateCompanyProfile(ctx context.Context, details string) error {
	if details == "" {
		return apperrors.InvalidRequest(msgDetailsRequired)
	}
	if err := cs.CompanyProfileService.Update(ctx, entities.CompanyProfile{Details: details}); err != nil {
		return err
	}
	logger.FromContext(ctx, cs.Logger).Info("Company profile updated")
	return nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, apperrors.ErrInvalidRequest):
		return metrics.OutcomeInvalid
	case errors.Is(err, apperrors.ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, apperrors.ErrGenerationFailed):
		return metrics.OutcomeGenerate
	default:
		return metrics.OutcomeStore
	}
}
