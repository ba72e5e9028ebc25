package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ChatModeInterviewer = "interviewer"
	ChatModeMessage     = "message"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port               string
	LogLevel           string
	LogFormat          string
	ChatMode           string
	CORSAllowedOrigins []string

	StoreDriver    string
	MongoURI       string
	MongoDatabase  string
	RedisURL       string
	DatabaseURL    string
	SupabaseURL    string
	SupabaseAPIKey string

	LLMProvider       string
	LLMModel          string
	OpenAIAPIKey      string
	AnthropicAPIKey   string
	QueryAIHost       string
	GenerationTimeout time.Duration
}

// LoadEnv loads .env into the process environment. A missing file is not an error.
func LoadEnv() error {
	err := godotenv.Load(".env")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		log.Printf("Error loading .env file: %v", err)
		return err
	}
	return nil
}

// GetEnvDefault returns the variable or fallback when it is unset or empty.
func GetEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load builds a Config from the environment and validates it.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(GetEnvDefault("GENERATION_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATION_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:               GetEnvDefault("PORT", "5000"),
		LogLevel:           GetEnvDefault("LOG_LEVEL", "info"),
		LogFormat:          GetEnvDefault("LOG_FORMAT", "json"),
		ChatMode:           GetEnvDefault("CHAT_MODE", ChatModeInterviewer),
		CORSAllowedOrigins: splitList(GetEnvDefault("CORS_ALLOWED_ORIGINS", "*")),

		StoreDriver:    GetEnvDefault("STORE_DRIVER", "mongo"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDatabase:  GetEnvDefault("MONGODB_DATABASE", "ai_training_chatbot"),
		RedisURL:       os.Getenv("REDIS_URL"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SupabaseURL:    os.Getenv("SUPABASE_URL"),
		SupabaseAPIKey: os.Getenv("SUPABASE_API_KEY"),

		LLMProvider:       GetEnvDefault("LLM_PROVIDER", "openai"),
		LLMModel:          os.Getenv("LLM_MODEL"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		QueryAIHost:       os.Getenv("QUERY_AI_API_HOST"),
		GenerationTimeout: timeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every variable needed by the selected drivers is set.
func (c *Config) Validate() error {
	var errs []error

	switch c.ChatMode {
	case ChatModeInterviewer, ChatModeMessage:
	default:
		errs = append(errs, fmt.Errorf("CHAT_MODE must be %q or %q, got %q", ChatModeInterviewer, ChatModeMessage, c.ChatMode))
	}

	switch c.StoreDriver {
	case "memory":
	case "mongo":
		errs = append(errs, requireEnv("MONGODB_URI", c.MongoURI))
	case "redis":
		errs = append(errs, requireEnv("REDIS_URL", c.RedisURL))
	case "postgres":
		errs = append(errs, requireEnv("DATABASE_URL", c.DatabaseURL))
	case "supabase":
		errs = append(errs, requireEnv("SUPABASE_URL", c.SupabaseURL), requireEnv("SUPABASE_API_KEY", c.SupabaseAPIKey))
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}

	switch c.LLMProvider {
	case "openai":
		errs = append(errs, requireEnv("OPENAI_API_KEY", c.OpenAIAPIKey))
	case "anthropic":
		errs = append(errs, requireEnv("ANTHROPIC_API_KEY", c.AnthropicAPIKey))
	case "queryai":
		errs = append(errs, requireEnv("QUERY_AI_API_HOST", c.QueryAIHost))
	default:
		errs = append(errs, fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider))
	}

	if c.GenerationTimeout <= 0 {
		errs = append(errs, errors.New("GENERATION_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}

func requireEnv(key, value string) error {
	if value == "" {
		return fmt.Errorf("environment variable %s is required but not set", key)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
