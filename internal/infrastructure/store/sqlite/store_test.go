package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/infrastructure/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(config.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "chat.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.EnsureSchema(context.Background()))
	return store
}

func TestNewStore_RequiresPath(t *testing.T) {
	_, err := NewStore(config.SQLiteConfig{})
	assert.Error(t, err)
}

func TestNewStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "chat.db")

	store, err := NewStore(config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, path, store.Path())
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.EnsureSchema(context.Background()))
}

func TestConversationRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateConversation(ctx, "primera charla")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	msgs := []entities.Message{
		{ConversationID: id, Role: entities.RoleUser, Content: "partidos de barcelona", CreatedAt: base},
		{ConversationID: id, Role: entities.RoleAssistant, Content: "Encontré 3 resultado(s).", CreatedAt: base.Add(time.Second)},
		{ConversationID: id, Role: entities.RoleUser, Content: "y ahora la clasificacion", CreatedAt: base.Add(2 * time.Second)},
	}
	for _, msg := range msgs {
		require.NoError(t, store.SaveMessage(ctx, msg))
	}

	got, err := store.RecentMessages(ctx, id, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Most recent first, bounded by limit.
	assert.Equal(t, "y ahora la clasificacion", got[0].Content)
	assert.Equal(t, entities.RoleUser, got[0].Role)
	assert.Equal(t, "Encontré 3 resultado(s).", got[1].Content)
	assert.NotEmpty(t, got[0].ID)
}

func TestRecentMessages_ScopedToConversation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateConversation(ctx, "a")
	require.NoError(t, err)
	second, err := store.CreateConversation(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, store.SaveMessage(ctx, entities.Message{
		ConversationID: first, Role: entities.RoleUser, Content: "hola",
	}))

	got, err := store.RecentMessages(ctx, second, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveQuery(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateConversation(ctx, "charla")
	require.NoError(t, err)

	record := entities.QueryRecord{
		ConversationID: id,
		Query:          "y ahora la clasificacion",
		Intent:         entities.IntentStandings,
		Confidence:     0.9,
		Entities: entities.ExtractedEntities{
			Team:   "Barcelona",
			League: "La Liga",
			Season: 2026,
		},
		IsFollowUp: true,
	}
	require.NoError(t, store.SaveQuery(ctx, record))

	var intent, entsJSON string
	var confidence float64
	var isFollowUp int
	err = store.db.QueryRowContext(ctx,
		"SELECT intent, confidence, entities, is_follow_up FROM parsed_queries WHERE conversation_id = ?",
		id).Scan(&intent, &confidence, &entsJSON, &isFollowUp)
	require.NoError(t, err)

	assert.Equal(t, "standings", intent)
	assert.Equal(t, 0.9, confidence)
	assert.Contains(t, entsJSON, `"team":"Barcelona"`)
	assert.Equal(t, 1, isFollowUp)
}

func TestLatestConversation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.LatestConversation(ctx)
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	restore := timeNow
	defer func() { timeNow = restore }()

	timeNow = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	_, err = store.CreateConversation(ctx, "vieja")
	require.NoError(t, err)

	timeNow = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
	newer, err := store.CreateConversation(ctx, "nueva")
	require.NoError(t, err)

	got, err := store.LatestConversation(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}
