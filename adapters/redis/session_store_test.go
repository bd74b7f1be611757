package redis

import (
	"context"
	"testing"
	"time"

	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_PutGet(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewSessionStore(client)

	sess := domain.Session{
		RequesterID: "u1",
		SlotID:      "b1",
		ExpiresAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Put(ctx, sess, 15*time.Minute))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.RequesterID)
	assert.Equal(t, "b1", got.SlotID)
	assert.True(t, got.ExpiresAt.Equal(sess.ExpiresAt))
}

func TestSessionStore_Get(t *testing.T) {
	ctx := context.Background()
	srv, client := setupTestRedis(t)
	store := NewSessionStore(client)

	t.Run("missing key returns entity not found", func(t *testing.T) {
		_, err := store.Get(ctx, "nobody")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("invalid JSON returns corrupt state", func(t *testing.T) {
		require.NoError(t, srv.Set("session:bad", "not json"))
		_, err := store.Get(ctx, "bad")
		require.Error(t, err)
		assert.True(t, service.IsCorruptStateError(err))
	})

	t.Run("missing slot_id returns corrupt state", func(t *testing.T) {
		require.NoError(t, srv.Set("session:half", `{"requester_id":"half"}`))
		_, err := store.Get(ctx, "half")
		require.Error(t, err)
		assert.True(t, service.IsCorruptStateError(err))
	})

	t.Run("expired key behaves as absent", func(t *testing.T) {
		sess := domain.Session{RequesterID: "u2", SlotID: "b1", ExpiresAt: time.Now().Add(time.Minute)}
		require.NoError(t, store.Put(ctx, sess, time.Minute))

		srv.FastForward(2 * time.Minute)

		_, err := store.Get(ctx, "u2")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})
}

func TestSessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewSessionStore(client)

	sess := domain.Session{RequesterID: "u1", SlotID: "b1", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, store.Put(ctx, sess, time.Minute))

	require.NoError(t, store.Delete(ctx, "u1"))
	_, err := store.Get(ctx, "u1")
	assert.True(t, service.IsEntityNotFoundError(err))

	// deleting an absent key is not an error
	require.NoError(t, store.Delete(ctx, "u1"))
}

func TestSessionStore_DeleteAll(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewSessionStore(client)

	for _, id := range []string{"u1", "u2", "u3"} {
		sess := domain.Session{RequesterID: id, SlotID: "b1", ExpiresAt: time.Now().Add(time.Minute)}
		require.NoError(t, store.Put(ctx, sess, time.Minute))
	}

	require.NoError(t, store.DeleteAll(ctx, []string{"u1", "u3", "ghost"}))

	_, err := store.Get(ctx, "u1")
	assert.True(t, service.IsEntityNotFoundError(err))
	_, err = store.Get(ctx, "u3")
	assert.True(t, service.IsEntityNotFoundError(err))

	got, err := store.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.SlotID)

	// empty batch is a no-op
	require.NoError(t, store.DeleteAll(ctx, nil))
}
