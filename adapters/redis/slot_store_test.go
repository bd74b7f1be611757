package redis

import (
	"context"
	"testing"

	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kit/log"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()

	srv := miniredis.RunT(t)
	client, err := NewRedisUniversalClient("redis://" + srv.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return srv, client
}

func testSlot(id string, capacity int64) domain.Slot {
	return domain.Slot{
		ID:         id,
		Credential: "cred-" + id,
		TargetID:   "target-" + id,
		Capacity:   capacity,
		Enabled:    true,
	}
}

func TestSlotStore_Add(t *testing.T) {
	ctx := context.Background()
	srv, client := setupTestRedis(t)
	store := NewSlotStore(client, log.NewNopLogger())

	t.Run("success", func(t *testing.T) {
		err := store.Add(ctx, testSlot("b1", 3))
		require.NoError(t, err)

		got, err := store.Get(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, "cred-b1", got.Credential)
		assert.Equal(t, "target-b1", got.TargetID)
		assert.Equal(t, int64(3), got.Capacity)
		assert.True(t, got.Enabled)
	})

	t.Run("zeroes counters", func(t *testing.T) {
		active, err := store.ActiveCount(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), active)

		closed, err := store.ClosedCount(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), closed)

		users, err := store.Users(ctx, "b1")
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("duplicate id returns conflict", func(t *testing.T) {
		err := store.Add(ctx, testSlot("b1", 5))
		require.Error(t, err)
		assert.True(t, service.IsConflictError(err))

		// descriptor untouched
		got, err := store.Get(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Capacity)
	})

	t.Run("add resets leftover state", func(t *testing.T) {
		srv.SAdd("slot:b2:users", "stale-user")
		err := store.Add(ctx, testSlot("b2", 1))
		require.NoError(t, err)

		users, err := store.Users(ctx, "b2")
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestSlotStore_Get(t *testing.T) {
	ctx := context.Background()
	srv, client := setupTestRedis(t)
	store := NewSlotStore(client, log.NewNopLogger())

	t.Run("missing returns entity not found", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("invalid JSON returns corrupt state", func(t *testing.T) {
		srv.HSet("slots", "bad", "not json")
		_, err := store.Get(ctx, "bad")
		require.Error(t, err)
		assert.True(t, service.IsCorruptStateError(err))
	})

	t.Run("structurally invalid record returns corrupt state", func(t *testing.T) {
		srv.HSet("slots", "zero", `{"id":"zero","credential":"c","target_id":"t","capacity":0}`)
		_, err := store.Get(ctx, "zero")
		require.Error(t, err)
		assert.True(t, service.IsCorruptStateError(err))
	})

	t.Run("missing enabled field defaults to true", func(t *testing.T) {
		srv.HSet("slots", "legacy", `{"id":"legacy","credential":"c","target_id":"t","capacity":2}`)
		got, err := store.Get(ctx, "legacy")
		require.NoError(t, err)
		assert.True(t, got.Enabled)
	})
}

func TestSlotStore_Put(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewSlotStore(client, log.NewNopLogger())

	require.NoError(t, store.Add(ctx, testSlot("b1", 3)))

	slot := testSlot("b1", 3)
	slot.Enabled = false
	slot.Credential = "rotated"
	require.NoError(t, store.Put(ctx, slot))

	got, err := store.Get(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.Equal(t, "rotated", got.Credential)
}

func TestSlotStore_Remove(t *testing.T) {
	ctx := context.Background()
	srv, client := setupTestRedis(t)
	store := NewSlotStore(client, log.NewNopLogger())

	t.Run("missing returns entity not found", func(t *testing.T) {
		err := store.Remove(ctx, "nope")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("purges descriptor and auxiliary state", func(t *testing.T) {
		require.NoError(t, store.Add(ctx, testSlot("b1", 3)))
		_, err := store.IncrActive(ctx, "b1")
		require.NoError(t, err)
		require.NoError(t, store.AddClosed(ctx, "b1", 2))
		require.NoError(t, store.AddUser(ctx, "b1", "u1"))

		require.NoError(t, store.Remove(ctx, "b1"))

		_, err = store.Get(ctx, "b1")
		assert.True(t, service.IsEntityNotFoundError(err))
		assert.False(t, srv.Exists("slot:b1:sessions"))
		assert.False(t, srv.Exists("slot:b1:closed_sessions"))
		assert.False(t, srv.Exists("slot:b1:users"))
	})
}

func TestSlotStore_List(t *testing.T) {
	ctx := context.Background()
	srv, client := setupTestRedis(t)
	store := NewSlotStore(client, log.NewNopLogger())

	t.Run("empty registry returns empty slice", func(t *testing.T) {
		slots, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("sorted by id, corrupt entries skipped", func(t *testing.T) {
		require.NoError(t, store.Add(ctx, testSlot("b2", 1)))
		require.NoError(t, store.Add(ctx, testSlot("b1", 1)))
		require.NoError(t, store.Add(ctx, testSlot("b3", 1)))
		srv.HSet("slots", "broken", "not json")

		slots, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "b1", slots[0].ID)
		assert.Equal(t, "b2", slots[1].ID)
		assert.Equal(t, "b3", slots[2].ID)
	})
}

func TestSlotStore_Counters(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewSlotStore(client, log.NewNopLogger())

	require.NoError(t, store.Add(ctx, testSlot("b1", 3)))

	t.Run("incr and decr", func(t *testing.T) {
		n, err := store.IncrActive(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = store.IncrActive(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = store.DecrActive(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		active, err := store.ActiveCount(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), active)
	})

	t.Run("reset active", func(t *testing.T) {
		require.NoError(t, store.ResetActive(ctx, "b1"))
		active, err := store.ActiveCount(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), active)
	})

	t.Run("closed count accumulates", func(t *testing.T) {
		require.NoError(t, store.AddClosed(ctx, "b1", 2))
		require.NoError(t, store.AddClosed(ctx, "b1", 3))
		closed, err := store.ClosedCount(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, int64(5), closed)
	})

	t.Run("unset counters read as zero", func(t *testing.T) {
		active, err := store.ActiveCount(ctx, "ghost")
		require.NoError(t, err)
		assert.Equal(t, int64(0), active)
	})

	t.Run("user set membership", func(t *testing.T) {
		require.NoError(t, store.AddUser(ctx, "b1", "u1"))
		require.NoError(t, store.AddUser(ctx, "b1", "u2"))

		users, err := store.Users(ctx, "b1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"u1", "u2"}, users)

		require.NoError(t, store.RemoveUser(ctx, "b1", "u1"))
		users, err = store.Users(ctx, "b1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"u2"}, users)

		require.NoError(t, store.ClearUsers(ctx, "b1"))
		users, err = store.Users(ctx, "b1")
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
