package main

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"training-chatbot/internal/config"
	"training-chatbot/internal/domain/interfaces/repository"
	Iservices "training-chatbot/internal/domain/interfaces/services"
	"training-chatbot/internal/domain/persona"
	"training-chatbot/internal/infra/logger"
	"training-chatbot/internal/infra/metrics"
	"training-chatbot/internal/infra/provider"
	"training-chatbot/internal/infra/services"
	client "training-chatbot/internal/pkg"
)

// app holds the wired dependencies shared by every command.
type app struct {
	cfg          *config.Config
	log          *logger.Logger
	metrics      *metrics.Metrics
	store        repository.Store
	conversation *services.ConversationService
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.NewLogger(cfg.LogLevel, cfg.LogFormat != "text"), nil
}

// newApp connects the store and, when withGenerator is set, the generative
// backend. Commands that only read history or write the company profile
// skip the backend.
func newApp(ctx context.Context, withGenerator bool) (*app, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := client.NewStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Store connected", logrus.Fields{"driver": cfg.StoreDriver})

	m := metrics.NewMetrics()

	var replyGenerator Iservices.IReplyGenerator
	if withGenerator {
		llm, err := provider.NewLLMProvider(cfg, log, &http.Client{})
		if err != nil {
			_ = store.Close(ctx)
			return nil, err
		}
		replyGenerator = services.NewReplyGenerator(llm, log, m, cfg.GenerationTimeout)
	}

	conversation := services.NewConversationService(
		services.NewTranscriptService(store, log),
		services.NewCompanyProfileService(store, log),
		persona.NewConfigurator(),
		replyGenerator,
		m,
		log,
	)

	return &app{cfg: cfg, log: log, metrics: m, store: store, conversation: conversation}, nil
}

func (a *app) Close(ctx context.Context) {
	if err := a.store.Close(ctx); err != nil {
		a.log.Error("Failed to close store: " + err.Error())
	}
}
