package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook-backend/internal/models"
)

func TestInMemoryUserStoreDuplicates(t *testing.T) {
	s := NewInMemoryUserStore()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	// Email collision is reported first even when the username collides too.
	_, err = s.CreateUser(ctx, models.User{Username: "alice", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = s.CreateUser(ctx, models.User{Username: "ALICE", Email: "other@x.com"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestInMemoryUserStoreCaseInsensitiveLookup(t *testing.T) {
	s := NewInMemoryUserStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	byEmail, err := s.UserByEmail(ctx, "A@X.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byName, err := s.UserByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = s.UserByID(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestInMemoryUserStoreAllUsersOldestFirst(t *testing.T) {
	s := NewInMemoryUserStore()
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.CreateUser(ctx, models.User{Username: "second", Email: "b@x.com", JoinedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, models.User{Username: "first", Email: "a@x.com", JoinedAt: base})
	require.NoError(t, err)

	users, err := s.AllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Username)
	assert.Equal(t, "second", users[1].Username)
}

func TestInMemoryEntryStoreOrdering(t *testing.T) {
	s := NewInMemoryEntryStore()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	old, err := s.CreateEntry(ctx, models.JournalEntry{UserID: 1, Title: "old", CreatedAt: base})
	require.NoError(t, err)
	recent, err := s.CreateEntry(ctx, models.JournalEntry{UserID: 1, Title: "recent", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	// Same timestamp as "recent": higher id wins the tie.
	tied, err := s.CreateEntry(ctx, models.JournalEntry{UserID: 1, Title: "tied", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = s.CreateEntry(ctx, models.JournalEntry{UserID: 2, Title: "other user", CreatedAt: base})
	require.NoError(t, err)

	entries, err := s.EntriesByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, tied.ID, entries[0].ID)
	assert.Equal(t, recent.ID, entries[1].ID)
	assert.Equal(t, old.ID, entries[2].ID)
}

func TestInMemoryEntryStoreUpdatePreservesOwnerAndCreatedAt(t *testing.T) {
	s := NewInMemoryEntryStore()
	ctx := context.Background()

	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	e, err := s.CreateEntry(ctx, models.JournalEntry{UserID: 1, Title: "before", Content: "x", CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)

	err = s.UpdateEntry(ctx, models.JournalEntry{
		ID: e.ID, UserID: 42, Title: "after", Content: "y",
		CreatedAt: created.Add(time.Hour), UpdatedAt: created.Add(time.Hour),
	})
	require.NoError(t, err)

	got, err := s.EntryByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "y", got.Content)
	assert.Equal(t, int64(1), got.UserID)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.UpdatedAt.Equal(created.Add(time.Hour)))
}

func TestInMemoryEntryStoreMissingRows(t *testing.T) {
	s := NewInMemoryEntryStore()
	ctx := context.Background()

	_, err := s.EntryByID(ctx, 1)
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.ErrorIs(t, s.UpdateEntry(ctx, models.JournalEntry{ID: 1}), ErrEntryNotFound)
	assert.ErrorIs(t, s.DeleteEntry(ctx, 1), ErrEntryNotFound)
}
