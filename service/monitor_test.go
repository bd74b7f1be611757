package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("empty registry", func(t *testing.T) {
		env := newTestEnv(t)
		statuses, err := env.monitor.Snapshot(ctx)
		require.NoError(t, err)
		assert.Empty(t, statuses)
	})

	t.Run("joins descriptors with live counters", func(t *testing.T) {
		env := newTestEnv(t)
		env.addSlot(t, "b1", 3)
		env.addSlot(t, "b2", 1)

		_, err := env.admission.Assign(ctx, "u1")
		require.NoError(t, err)
		_, err = env.admission.Assign(ctx, "u2")
		require.NoError(t, err)
		_, err = env.lifecycle.Terminate(ctx, "u2")
		require.NoError(t, err)

		statuses, err := env.monitor.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, statuses, 2)

		b1 := statuses[0]
		assert.Equal(t, "b1", b1.Slot.ID)
		assert.Equal(t, int64(1), b1.ActiveSessions)
		assert.Equal(t, int64(1), b1.ClosedSessions)
		assert.Equal(t, int64(2), b1.AvailableSlots)
		assert.ElementsMatch(t, []string{"u1"}, b1.ActiveUsers)

		b2 := statuses[1]
		assert.Equal(t, "b2", b2.Slot.ID)
		assert.Equal(t, int64(0), b2.ActiveSessions)
		assert.Equal(t, int64(1), b2.AvailableSlots)
	})

	t.Run("drifted counters are reported as-is", func(t *testing.T) {
		env := newTestEnv(t)
		env.addSlot(t, "b1", 1)

		for i := 0; i < 3; i++ {
			_, err := env.counters.IncrActive(ctx, "b1")
			require.NoError(t, err)
		}

		statuses, err := env.monitor.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, int64(3), statuses[0].ActiveSessions)
		assert.Equal(t, int64(-2), statuses[0].AvailableSlots)
	})

	t.Run("corrupt descriptor is skipped", func(t *testing.T) {
		env := newTestEnv(t)
		env.addSlot(t, "b1", 1)
		env.srv.HSet("slots", "broken", "not json")

		statuses, err := env.monitor.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, "b1", statuses[0].Slot.ID)
	})
}
