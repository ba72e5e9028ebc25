package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/entities"
)

type chatRow struct {
	messages string
	version  int64
}

// fakeConn plays the chats and company_info tables in memory, following the
// row counts Postgres reports for the statements PostgresStore issues.
type fakeConn struct {
	chats   map[string]chatRow
	company map[string]string
	execErr error

	lastSQL  string
	lastArgs []any
}

func newFakeConn() *fakeConn {
	return &fakeConn{chats: map[string]chatRow{}, company: map[string]string{}}
}

func (c *fakeConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.lastSQL, c.lastArgs = sql, args
	if c.execErr != nil {
		return pgconn.CommandTag{}, c.execErr
	}

	stmt := strings.TrimSpace(sql)
	switch {
	case strings.HasPrefix(stmt, "CREATE TABLE"):
		return pgconn.NewCommandTag("CREATE TABLE"), nil
	case strings.HasPrefix(stmt, "INSERT INTO chats"):
		userID := args[0].(string)
		if _, ok := c.chats[userID]; ok {
			return pgconn.NewCommandTag("INSERT 0 0"), nil
		}
		c.chats[userID] = chatRow{messages: args[1].(string), version: 1}
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.HasPrefix(stmt, "UPDATE chats"):
		userID := args[0].(string)
		row, ok := c.chats[userID]
		if !ok || row.version != args[2].(int64) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		}
		c.chats[userID] = chatRow{messages: args[1].(string), version: row.version + 1}
		return pgconn.NewCommandTag("UPDATE 1"), nil
	case strings.HasPrefix(stmt, "INSERT INTO company_info"):
		c.company[args[0].(string)] = args[1].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	return pgconn.CommandTag{}, fmt.Errorf("unexpected statement: %s", stmt)
}

func (c *fakeConn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	c.lastSQL, c.lastArgs = sql, args

	stmt := strings.TrimSpace(sql)
	switch {
	case strings.HasPrefix(stmt, "SELECT messages"):
		row, ok := c.chats[args[0].(string)]
		if !ok {
			return fakeRow{err: pgx.ErrNoRows}
		}
		return fakeRow{values: []any{[]byte(row.messages), row.version}}
	case strings.HasPrefix(stmt, "SELECT details"):
		details, ok := c.company[args[0].(string)]
		if !ok {
			return fakeRow{err: pgx.ErrNoRows}
		}
		return fakeRow{values: []any{details}}
	}
	return fakeRow{err: fmt.Errorf("unexpected query: %s", stmt)}
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch d := d.(type) {
		case *[]byte:
			*d = r.values[i].([]byte)
		case *int64:
			*d = r.values[i].(int64)
		case *string:
			*d = r.values[i].(string)
		default:
			return fmt.Errorf("unsupported scan target %T", d)
		}
	}
	return nil
}

func TestPostgresStoreConn_FirstSaveInsertsAtVersionOne(t *testing.T) {
	ctx := context.Background()
	conn := newFakeConn()
	store := NewPostgresStoreWithConn(conn)

	empty, err := store.FindTranscript(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, empty.Turns)
	assert.Equal(t, int64(0), empty.Version)

	saved, err := store.SaveTranscript(ctx, empty.Append(entities.Turn{Role: entities.RoleUser, Content: "hi"}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)
	assert.Contains(t, conn.lastSQL, "ON CONFLICT (user_id) DO NOTHING")
	assert.Equal(t, `[{"role":"user","content":"hi"}]`, conn.chats["u1"].messages)

	loaded, err := store.FindTranscript(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.Version)
	assert.Equal(t, []entities.Turn{{Role: entities.RoleUser, Content: "hi"}}, loaded.Turns)
}

func TestPostgresStoreConn_DuplicateFirstSaveConflicts(t *testing.T) {
	ctx := context.Background()
	store := NewPostgresStoreWithConn(newFakeConn())

	first := entities.NewTranscript("u1").Append(entities.Turn{Role: entities.RoleUser, Content: "a"})
	second := entities.NewTranscript("u1").Append(entities.Turn{Role: entities.RoleUser, Content: "b"})

	_, err := store.SaveTranscript(ctx, first)
	require.NoError(t, err)

	_, err = store.SaveTranscript(ctx, second)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	loaded, err := store.FindTranscript(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "a", loaded.Turns[0].Content)
}

func TestPostgresStoreConn_UpdateIsConditionalOnVersion(t *testing.T) {
	ctx := context.Background()
	conn := newFakeConn()
	store := NewPostgresStoreWithConn(conn)

	v1, err := store.SaveTranscript(ctx, entities.NewTranscript("u1").Append(entities.Turn{Role: entities.RoleUser, Content: "a"}))
	require.NoError(t, err)

	v2, err := store.SaveTranscript(ctx, v1.Append(entities.Turn{Role: entities.RoleBot, Content: "b"}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), v2.Version)
	assert.Contains(t, conn.lastSQL, "WHERE user_id = $1 AND version = $3")
	assert.Equal(t, int64(1), conn.lastArgs[2])

	_, err = store.SaveTranscript(ctx, v1.Append(entities.Turn{Role: entities.RoleBot, Content: "stale"}))
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	loaded, err := store.FindTranscript(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.Version)
	assert.Len(t, loaded.Turns, 2)
	assert.Equal(t, "b", loaded.Turns[1].Content)
}

func TestPostgresStoreConn_ExecErrorIsNotConflict(t *testing.T) {
	conn := newFakeConn()
	conn.execErr = errors.New("connection reset")
	store := NewPostgresStoreWithConn(conn)

	_, err := store.SaveTranscript(context.Background(), entities.NewTranscript("u1"))

	require.EqualError(t, err, "connection reset")
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
}

func TestPostgresStoreConn_CorruptMessages(t *testing.T) {
	conn := newFakeConn()
	conn.chats["u1"] = chatRow{messages: "{not json", version: 3}
	store := NewPostgresStoreWithConn(conn)

	_, err := store.FindTranscript(context.Background(), "u1")

	assert.ErrorContains(t, err, "decode messages")
}

func TestPostgresStoreConn_CompanyProfile(t *testing.T) {
	ctx := context.Background()
	conn := newFakeConn()
	store := NewPostgresStoreWithConn(conn)

	require.NoError(t, store.EnsureSchema(ctx))

	profile, err := store.FindCompanyProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, profile.Details)

	require.NoError(t, store.SaveCompanyProfile(ctx, entities.CompanyProfile{Details: "Acme"}))
	profile, err = store.FindCompanyProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", profile.Details)
	assert.NoError(t, store.Close(ctx))
}
