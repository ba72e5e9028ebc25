package client

import (
	"context"
	"fmt"

	"training-chatbot/internal/config"
	"training-chatbot/internal/domain/interfaces/repository"
	infraRepository "training-chatbot/internal/infra/repository"
)

// NewStore connects to the backend named by cfg.StoreDriver.
func NewStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return infraRepository.NewMemoryRepository(), nil

	case "mongo":
		mongoClient, err := MongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		return infraRepository.NewMongoStore(mongoClient, mongoClient.Database(cfg.MongoDatabase)), nil

	case "redis":
		redisClient, err := RedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return infraRepository.NewRedisStore(redisClient), nil

	case "postgres":
		pool, err := PostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store := infraRepository.NewPostgresStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil

	case "supabase":
		supabaseClient, err := SupabaseClient(cfg.SupabaseURL, cfg.SupabaseAPIKey)
		if err != nil {
			return nil, err
		}
		return infraRepository.NewSupabaseStore(supabaseClient), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
