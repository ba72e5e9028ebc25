package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/entities"
	"training-chatbot/internal/domain/interfaces/repository/constants"
)

type redisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type redisChatRecord struct {
	Messages []entities.Turn `json:"messages"`
	Version  int64           `json:"version"`
}

// RedisStore keeps each transcript as one JSON value. Keys never expire.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) chatKey(userID string) string {
	return constants.CHAT_KEY_PREFIX + userID
}

func (s *RedisStore) companyKey() string {
	return constants.COMPANY_INFO_KEY_PREFIX + entities.CompanyProfileID
}

func (s *RedisStore) FindTranscript(ctx context.Context, userID string) (entities.Transcript, error) {
	return s.readTranscript(ctx, s.client, userID)
}

func (s *RedisStore) readTranscript(ctx context.Context, getter redisGetter, userID string) (entities.Transcript, error) {
	transcript := entities.NewTranscript(userID)

	val, err := getter.Get(ctx, s.chatKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return transcript, nil
	}
	if err != nil {
		return entities.Transcript{}, err
	}

	var record redisChatRecord
	if err := json.Unmarshal(val, &record); err != nil {
		return entities.Transcript{}, fmt.Errorf("decode chat record: %w", err)
	}
	transcript.Turns = append(transcript.Turns, record.Messages...)
	transcript.Version = record.Version
	return transcript, nil
}

// SaveTranscript checks the version and writes inside WATCH/MULTI/EXEC so a
// concurrent writer aborts the transaction instead of being overwritten.
func (s *RedisStore) SaveTranscript(ctx context.Context, transcript entities.Transcript) (entities.Transcript, error) {
	key := s.chatKey(transcript.UserID)
	record := redisChatRecord{Messages: transcript.Messages(), Version: transcript.Version + 1}

	payload, err := json.Marshal(record)
	if err != nil {
		return entities.Transcript{}, err
	}

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := s.readTranscript(ctx, tx, transcript.UserID)
		if err != nil {
			return err
		}
		if current.Version != transcript.Version {
			return apperrors.Conflict(transcript.UserID, transcript.Version)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return entities.Transcript{}, apperrors.Conflict(transcript.UserID, transcript.Version)
	}
	if err != nil {
		return entities.Transcript{}, err
	}

	transcript.Turns = record.Messages
	transcript.Version = record.Version
	return transcript, nil
}

func (s *RedisStore) FindCompanyProfile(ctx context.Context) (entities.CompanyProfile, error) {
	var profile entities.CompanyProfile

	val, err := s.client.Get(ctx, s.companyKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return profile, nil
	}
	if err != nil {
		return profile, err
	}

	if err := json.Unmarshal(val, &profile); err != nil {
		return entities.CompanyProfile{}, fmt.Errorf("decode company info: %w", err)
	}
	return profile, nil
}

func (s *RedisStore) SaveCompanyProfile(ctx context.Context, profile entities.CompanyProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.companyKey(), payload, 0).Err()
}

func (s *RedisStore) Close(ctx context.Context) error {
	return s.client.Close()
}
