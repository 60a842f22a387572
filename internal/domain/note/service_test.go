package note

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// memRepository keeps collections in memory, one slice per user, mirroring
// the kv-backed whole-blob persistence.
type memRepository struct {
	byUser map[string][]Note
}

func newMemRepository() *memRepository {
	return &memRepository{byUser: make(map[string][]Note)}
}

func (r *memRepository) Notes(_ context.Context, username string) ([]Note, error) {
	stored := r.byUser[username]
	out := make([]Note, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *memRepository) SaveNotes(_ context.Context, username string, notes []Note) error {
	stored := make([]Note, len(notes))
	copy(stored, notes)
	r.byUser[username] = stored
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

func TestService_Save_AssignsUniqueIDs(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo)
	ctx := context.Background()

	// Freeze the clock so every save lands in the same millisecond.
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		saved, err := service.Save(ctx, "alice", Note{Title: "note", Body: "body"})
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)
		assert.False(t, seen[saved.ID], "id %s assigned twice", saved.ID)
		seen[saved.ID] = true
	}

	notes, err := service.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, notes, 5)
}

func TestService_Save_UpdatePreservesCreatedAt(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo)
	ctx := context.Background()

	created, err := service.Save(ctx, "alice", Note{Title: "first", Body: "v1"})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	updated, err := service.Save(ctx, "alice", Note{ID: created.ID, Title: "first", Body: "v2"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, !updated.UpdatedAt.Before(created.UpdatedAt))

	notes, err := service.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "v2", notes[0].Body)
}

func TestService_Save_UnknownIDInserts(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo)
	ctx := context.Background()

	_, err := service.Save(ctx, "alice", Note{Title: "existing"})
	require.NoError(t, err)

	// Lenient upsert: a caller-supplied id that is not in the collection
	// inserts instead of failing.
	saved, err := service.Save(ctx, "alice", Note{ID: "ghost-1", Title: "resurrected"})
	require.NoError(t, err)
	assert.Equal(t, "ghost-1", saved.ID)

	notes, err := service.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestService_Save_EmptyTitleRejected(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo)

	_, err := service.Save(context.Background(), "alice", Note{Title: "   ", Body: "body"})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestService_Save_CollectionsArePerUser(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo)
	ctx := context.Background()

	_, err := service.Save(ctx, "alice", Note{Title: "alice's"})
	require.NoError(t, err)
	_, err = service.Save(ctx, "bob", Note{Title: "bob's"})
	require.NoError(t, err)

	aliceNotes, err := service.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceNotes, 1)
	assert.Equal(t, "alice's", aliceNotes[0].Title)

	bobNotes, err := service.List(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobNotes, 1)
	assert.Equal(t, "bob's", bobNotes[0].Title)
}

func TestService_Remove(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo)
	ctx := context.Background()

	first, err := service.Save(ctx, "alice", Note{Title: "keep"})
	require.NoError(t, err)
	second, err := service.Save(ctx, "alice", Note{Title: "drop"})
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, "alice", second.ID))

	notes, err := service.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, first.ID, notes[0].ID)
}

func TestService_Remove_AbsentIDIsNoop(t *testing.T) {
	repo := newMemRepository()
	service := newTestService(repo)
	ctx := context.Background()

	_, err := service.Save(ctx, "alice", Note{Title: "keep"})
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, "alice", "no-such-id"))

	notes, err := service.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}
