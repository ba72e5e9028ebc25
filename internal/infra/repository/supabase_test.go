package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/supabase-go"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/entities"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

func newTestSupabaseStore(t *testing.T, handler func(w http.ResponseWriter, r recordedRequest)) (*SupabaseStore, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body)}
		requests = append(requests, rec)
		w.Header().Set("Content-Type", "application/json")
		handler(w, rec)
	}))
	t.Cleanup(server.Close)

	client, err := supabase.NewClient(server.URL, "test-key", nil)
	require.NoError(t, err)
	return NewSupabaseStore(client), &requests
}

func TestSupabaseStore_FindTranscript(t *testing.T) {
	store, requests := newTestSupabaseStore(t, func(w http.ResponseWriter, r recordedRequest) {
		_, _ = io.WriteString(w, `[{"user_id":"u1","messages":[{"role":"user","content":"Hello"}],"version":3}]`)
	})

	got, err := store.FindTranscript(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, []entities.Turn{{Role: entities.RoleUser, Content: "Hello"}}, got.Turns)
	assert.EqualValues(t, 3, got.Version)
	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodGet, (*requests)[0].Method)
	assert.Equal(t, "/rest/v1/chats", (*requests)[0].Path)
	assert.Contains(t, (*requests)[0].Query, "user_id=eq.u1")
}

func TestSupabaseStore_MissingTranscriptIsEmpty(t *testing.T) {
	store, _ := newTestSupabaseStore(t, func(w http.ResponseWriter, r recordedRequest) {
		_, _ = io.WriteString(w, `[]`)
	})

	got, err := store.FindTranscript(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, got.Turns)
	assert.NotNil(t, got.Turns)
	assert.Zero(t, got.Version)
}

func TestSupabaseStore_FirstSaveInserts(t *testing.T) {
	store, requests := newTestSupabaseStore(t, func(w http.ResponseWriter, r recordedRequest) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "["+r.Body+"]")
	})

	saved, err := store.SaveTranscript(context.Background(),
		entities.NewTranscript("u1").Append(entities.Turn{Role: entities.RoleBot, Content: "q"}))

	require.NoError(t, err)
	assert.EqualValues(t, 1, saved.Version)
	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodPost, (*requests)[0].Method)

	var row supabaseChatRow
	require.NoError(t, json.Unmarshal([]byte((*requests)[0].Body), &row))
	assert.Equal(t, "u1", row.UserID)
	assert.EqualValues(t, 1, row.Version)
}

func TestSupabaseStore_DuplicateInsertConflicts(t *testing.T) {
	store, _ := newTestSupabaseStore(t, func(w http.ResponseWriter, r recordedRequest) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"code":"23505","message":"duplicate key value violates unique constraint"}`)
	})

	_, err := store.SaveTranscript(context.Background(), entities.NewTranscript("u1"))

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestSupabaseStore_UpdateChecksVersion(t *testing.T) {
	store, requests := newTestSupabaseStore(t, func(w http.ResponseWriter, r recordedRequest) {
		_, _ = io.WriteString(w, `[{"user_id":"u1","messages":[],"version":3}]`)
	})

	saved, err := store.SaveTranscript(context.Background(), entities.Transcript{UserID: "u1", Turns: []entities.Turn{}, Version: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 3, saved.Version)
	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodPatch, (*requests)[0].Method)
	assert.Contains(t, (*requests)[0].Query, "version=eq.2")
}

func TestSupabaseStore_StaleUpdateConflicts(t *testing.T) {
	store, _ := newTestSupabaseStore(t, func(w http.ResponseWriter, r recordedRequest) {
		_, _ = io.WriteString(w, `[]`)
	})

	_, err := store.SaveTranscript(context.Background(), entities.Transcript{UserID: "u1", Version: 2})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestSupabaseStore_ServerErrorIsReturned(t *testing.T) {
	store, _ := newTestSupabaseStore(t, func(w http.ResponseWriter, r recordedRequest) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"code":"XX000","message":"internal"}`)
	})

	_, err := store.FindTranscript(context.Background(), "u1")

	assert.ErrorContains(t, err, "XX000")
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
}

func TestSupabaseStore_CompanyProfile(t *testing.T) {
	var stored string
	store, requests := newTestSupabaseStore(t, func(w http.ResponseWriter, r recordedRequest) {
		switch r.Method {
		case http.MethodPost:
			stored = r.Body
			w.WriteHeader(http.StatusCreated)
		default:
			if stored == "" {
				_, _ = io.WriteString(w, `[]`)
				return
			}
			_, _ = io.WriteString(w, "["+stored+"]")
		}
	})
	ctx := context.Background()

	empty, err := store.FindCompanyProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Details)

	require.NoError(t, store.SaveCompanyProfile(ctx, entities.CompanyProfile{Details: "Acme"}))

	profile, err := store.FindCompanyProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", profile.Details)

	for _, r := range *requests {
		assert.Equal(t, "/rest/v1/company_info", r.Path)
	}
}
