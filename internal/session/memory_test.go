package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAndResolve(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	token, err := s.Create(ctx, 7, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok, err := s.UserID(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := NewMemoryStore()

	_, ok, err := s.UserID(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.UserID(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	token, err := s.Create(ctx, 7, -time.Second) // already expired
	require.NoError(t, err)

	_, ok, err := s.UserID(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreCreateReplacesExistingSession(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.Create(ctx, 7, time.Hour)
	require.NoError(t, err)
	second, err := s.Create(ctx, 7, time.Hour)
	require.NoError(t, err)

	_, ok, _ := s.UserID(ctx, first)
	assert.False(t, ok)
	_, ok, _ = s.UserID(ctx, second)
	assert.True(t, ok)
}

func TestMemoryStoreDestroyIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	token, err := s.Create(ctx, 7, time.Hour)
	require.NoError(t, err)

	require.NoError(t, s.Destroy(ctx, token))
	require.NoError(t, s.Destroy(ctx, token))
	require.NoError(t, s.Destroy(ctx, "never-existed"))

	_, ok, _ := s.UserID(ctx, token)
	assert.False(t, ok)
}

func TestMemoryFlashStorePopDrainsQueue(t *testing.T) {
	s := NewMemoryFlashStore()
	ctx := context.Background()

	require.NoError(t, s.Push(ctx, "browser-1", Flash{Category: "success", Message: "saved"}))
	require.NoError(t, s.Push(ctx, "browser-1", Flash{Category: "error", Message: "oops"}))
	require.NoError(t, s.Push(ctx, "browser-2", Flash{Category: "info", Message: "other"}))

	flashes, err := s.Pop(ctx, "browser-1")
	require.NoError(t, err)
	require.Len(t, flashes, 2)
	assert.Equal(t, "saved", flashes[0].Message)
	assert.Equal(t, "oops", flashes[1].Message)

	// One-shot: a second pop finds nothing
	flashes, err = s.Pop(ctx, "browser-1")
	require.NoError(t, err)
	assert.Empty(t, flashes)

	// The other browser's queue is untouched
	flashes, err = s.Pop(ctx, "browser-2")
	require.NoError(t, err)
	require.Len(t, flashes, 1)
	assert.Equal(t, "other", flashes[0].Message)
}

func TestFlashStoreIgnoresEmptyID(t *testing.T) {
	s := NewMemoryFlashStore()
	ctx := context.Background()

	require.NoError(t, s.Push(ctx, "", Flash{Category: "info", Message: "lost"}))
	flashes, err := s.Pop(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, flashes)
}
