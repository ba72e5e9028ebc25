package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/entities"
)

// PgxConn is the subset of *pgxpool.Pool used by PostgresStore.
type PgxConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS chats (
	user_id    TEXT PRIMARY KEY,
	messages   JSONB NOT NULL DEFAULT '[]'::jsonb,
	version    BIGINT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS company_info (
	id         TEXT PRIMARY KEY,
	details    TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// PostgresStore keeps one row per user with the whole transcript in a JSONB column.
type PostgresStore struct {
	db   PgxConn
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: pool, pool: pool}
}

// NewPostgresStoreWithConn builds a store over any PgxConn, e.g. a single pgx.Conn.
func NewPostgresStoreWithConn(db PgxConn) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the tables if they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindTranscript(ctx context.Context, userID string) (entities.Transcript, error) {
	transcript := entities.NewTranscript(userID)

	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT messages, version FROM chats WHERE user_id = $1`, userID,
	).Scan(&raw, &transcript.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return transcript, nil
	}
	if err != nil {
		return entities.Transcript{}, err
	}

	var turns []entities.Turn
	if err := json.Unmarshal(raw, &turns); err != nil {
		return entities.Transcript{}, fmt.Errorf("decode messages: %w", err)
	}
	transcript.Turns = append(transcript.Turns, turns...)
	return transcript, nil
}

func (s *PostgresStore) SaveTranscript(ctx context.Context, transcript entities.Transcript) (entities.Transcript, error) {
	payload, err := json.Marshal(transcript.Messages())
	if err != nil {
		return entities.Transcript{}, err
	}

	var tag pgconn.CommandTag
	if transcript.Version == 0 {
		tag, err = s.db.Exec(ctx,
			`INSERT INTO chats (user_id, messages, version) VALUES ($1, $2::jsonb, 1)
			 ON CONFLICT (user_id) DO NOTHING`,
			transcript.UserID, string(payload))
	} else {
		tag, err = s.db.Exec(ctx,
			`UPDATE chats SET messages = $2::jsonb, version = version + 1, updated_at = now()
			 WHERE user_id = $1 AND version = $3`,
			transcript.UserID, string(payload), transcript.Version)
	}
	if err != nil {
		return entities.Transcript{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Transcript{}, apperrors.Conflict(transcript.UserID, transcript.Version)
	}

	transcript.Turns = transcript.Messages()
	transcript.Version++
	return transcript, nil
}

func (s *PostgresStore) FindCompanyProfile(ctx context.Context) (entities.CompanyProfile, error) {
	var profile entities.CompanyProfile
	err := s.db.QueryRow(ctx,
		`SELECT details FROM company_info WHERE id = $1`, entities.CompanyProfileID,
	).Scan(&profile.Details)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.CompanyProfile{}, nil
	}
	return profile, err
}

func (s *PostgresStore) SaveCompanyProfile(ctx context.Context, profile entities.CompanyProfile) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO company_info (id, details) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET details = EXCLUDED.details, updated_at = now()`,
		entities.CompanyProfileID, profile.Details)
	return err
}

func (s *PostgresStore) Close(ctx context.Context) error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
