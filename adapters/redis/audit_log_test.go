package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/m7mdrf3t/LoadBalancer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(n int) domain.AuditEvent {
	return domain.AuditEvent{
		Timestamp:   time.Date(2026, 3, 1, 12, 0, n, 0, time.UTC),
		Type:        domain.EventSessionCreated,
		RequesterID: fmt.Sprintf("u%d", n),
		SlotID:      "b1",
		Message:     fmt.Sprintf("event %d", n),
	}
}

func TestAuditLog_RecordRead(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	log := NewAuditLog(client, 100)

	for i := 0; i < 5; i++ {
		require.NoError(t, log.Record(ctx, testEvent(i)))
	}

	t.Run("newest first", func(t *testing.T) {
		events, err := log.Read(ctx, 100)
		require.NoError(t, err)
		require.Len(t, events, 5)
		assert.Equal(t, "u4", events[0].RequesterID)
		assert.Equal(t, "u0", events[4].RequesterID)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		events, err := log.Read(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "u4", events[0].RequesterID)
		assert.Equal(t, "u3", events[1].RequesterID)
	})

	t.Run("non-positive limit returns empty", func(t *testing.T) {
		events, err := log.Read(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestAuditLog_Cap(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	log := NewAuditLog(client, 3)

	for i := 0; i < 10; i++ {
		require.NoError(t, log.Record(ctx, testEvent(i)))
	}

	events, err := log.Read(ctx, 100)
	require.NoError(t, err)
	require.Len(t, events, 3)
	// oldest entries silently dropped
	assert.Equal(t, "u9", events[0].RequesterID)
	assert.Equal(t, "u7", events[2].RequesterID)
}

func TestAuditLog_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	srv, client := setupTestRedis(t)
	log := NewAuditLog(client, 100)

	require.NoError(t, log.Record(ctx, testEvent(0)))
	srv.Lpush("audit_log", "not json")

	events, err := log.Read(ctx, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventCorruptData, events[0].Type)
	assert.Equal(t, "u0", events[1].RequesterID)
}

func TestAuditLog_Clear(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	log := NewAuditLog(client, 100)

	require.NoError(t, log.Record(ctx, testEvent(0)))
	require.NoError(t, log.Clear(ctx))

	events, err := log.Read(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, events)

	// clearing an empty log is fine
	require.NoError(t, log.Clear(ctx))
}
