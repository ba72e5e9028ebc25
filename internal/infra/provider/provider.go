package provider

import (
	"fmt"
	"net/http"

	"training-chatbot/internal/config"
	"training-chatbot/internal/infra/logger"
)

// NewLLMProvider returns the backend named by cfg.LLMProvider.
func NewLLMProvider(cfg *config.Config, log *logger.Logger, httpClient *http.Client) (ILLMProvider, error) {
	switch cfg.LLMProvider {
	case "openai":
		return NewOpenAIProvider(log, cfg.OpenAIAPIKey, cfg.LLMModel), nil
	case "anthropic":
		return NewAnthropicProvider(log, cfg.AnthropicAPIKey, cfg.LLMModel), nil
	case "queryai":
		return NewQueryAIProvider(log, httpClient, cfg.QueryAIHost), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
