package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/supabase-community/supabase-go"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/entities"
	"training-chatbot/internal/domain/interfaces/repository/constants"
)

// uniqueViolation is the Postgres error code PostgREST reports for a duplicate key.
const uniqueViolation = "(23505)"

type supabaseChatRow struct {
	UserID   string          `json:"user_id"`
	Messages []entities.Turn `json:"messages"`
	Version  int64           `json:"version"`
}

type supabaseCompanyRow struct {
	ID      string `json:"id"`
	Details string `json:"details"`
}

// SupabaseStore talks to the same tables as PostgresStore through PostgREST.
// The supabase client does not accept a context; ctx is unused.
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) FindTranscript(ctx context.Context, userID string) (entities.Transcript, error) {
	var rows []supabaseChatRow
	_, err := s.client.From(constants.CHATS_TABLE).
		Select("user_id,messages,version", "", false).
		Eq("user_id", userID).
		ExecuteTo(&rows)
	if err != nil {
		return entities.Transcript{}, err
	}

	transcript := entities.NewTranscript(userID)
	if len(rows) == 0 {
		return transcript, nil
	}
	transcript.Turns = append(transcript.Turns, rows[0].Messages...)
	transcript.Version = rows[0].Version
	return transcript, nil
}

func (s *SupabaseStore) SaveTranscript(ctx context.Context, transcript entities.Transcript) (entities.Transcript, error) {
	row := supabaseChatRow{
		UserID:   transcript.UserID,
		Messages: transcript.Messages(),
		Version:  transcript.Version + 1,
	}

	var written []supabaseChatRow
	var err error
	if transcript.Version == 0 {
		_, err = s.client.From(constants.CHATS_TABLE).
			Insert(row, false, "", "representation", "").
			ExecuteTo(&written)
		if err != nil && strings.Contains(err.Error(), uniqueViolation) {
			return entities.Transcript{}, apperrors.Conflict(transcript.UserID, transcript.Version)
		}
	} else {
		update := map[string]any{"messages": row.Messages, "version": row.Version}
		_, err = s.client.From(constants.CHATS_TABLE).
			Update(update, "representation", "").
			Eq("user_id", transcript.UserID).
			Eq("version", strconv.FormatInt(transcript.Version, 10)).
			ExecuteTo(&written)
	}
	if err != nil {
		return entities.Transcript{}, err
	}
	if len(written) == 0 {
		return entities.Transcript{}, apperrors.Conflict(transcript.UserID, transcript.Version)
	}

	transcript.Turns = row.Messages
	transcript.Version = row.Version
	return transcript, nil
}

func (s *SupabaseStore) FindCompanyProfile(ctx context.Context) (entities.CompanyProfile, error) {
	var rows []supabaseCompanyRow
	_, err := s.client.From(constants.COMPANY_INFO_TABLE).
		Select("id,details", "", false).
		Eq("id", entities.CompanyProfileID).
		ExecuteTo(&rows)
	if err != nil || len(rows) == 0 {
		return entities.CompanyProfile{}, err
	}
	return entities.CompanyProfile{Details: rows[0].Details}, nil
}

func (s *SupabaseStore) SaveCompanyProfile(ctx context.Context, profile entities.CompanyProfile) error {
	row := supabaseCompanyRow{ID: entities.CompanyProfileID, Details: profile.Details}
	_, _, err := s.client.From(constants.COMPANY_INFO_TABLE).
		Upsert(row, "id", "minimal", "").
		Execute()
	return err
}

func (s *SupabaseStore) Close(ctx context.Context) error {
	return nil
}
