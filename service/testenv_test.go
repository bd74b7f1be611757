package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/m7mdrf3t/LoadBalancer/adapters/redis"
	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/interfaces"
	"github.com/m7mdrf3t/LoadBalancer/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kit/log"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// testEnv wires the real Redis adapters over miniredis so service tests
// exercise the same store commands as production.
type testEnv struct {
	srv      *miniredis.Miniredis
	client   goredis.UniversalClient
	slots    interfaces.SlotStore
	counters interfaces.SlotCounters
	sessions interfaces.SessionStore
	audit    interfaces.AuditLog

	now time.Time

	registry  *service.Registry
	admission *service.Admission
	lifecycle *service.Lifecycle
	monitor   *service.Monitor
}

const testSessionTTL = 15 * time.Minute

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	srv := miniredis.RunT(t)
	client, err := redis.NewRedisUniversalClient("redis://" + srv.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	logger := log.NewNopLogger()
	store := redis.NewSlotStore(client, logger)

	env := &testEnv{
		srv:      srv,
		client:   client,
		slots:    store,
		counters: store,
		sessions: redis.NewSessionStore(client),
		audit:    redis.NewAuditLog(client, 200),
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	now := func() time.Time { return env.now }
	env.registry = service.NewRegistry(env.slots, logger)
	env.admission = service.NewAdmission(env.slots, env.counters, env.sessions, env.audit, testSessionTTL, now, logger)
	env.lifecycle = service.NewLifecycle(env.slots, env.counters, env.sessions, env.audit, now, logger)
	env.monitor = service.NewMonitor(env.slots, env.counters, logger)

	return env
}

func (e *testEnv) addSlot(t *testing.T, id string, capacity int64) {
	t.Helper()
	err := e.registry.Add(context.Background(), domain.Slot{
		ID:         id,
		Credential: "cred-" + id,
		TargetID:   "target-" + id,
		Capacity:   capacity,
	})
	require.NoError(t, err)
}

func (e *testEnv) activeCount(t *testing.T, id string) int64 {
	t.Helper()
	n, err := e.counters.ActiveCount(context.Background(), id)
	require.NoError(t, err)
	return n
}

func (e *testEnv) closedCount(t *testing.T, id string) int64 {
	t.Helper()
	n, err := e.counters.ClosedCount(context.Background(), id)
	require.NoError(t, err)
	return n
}

func (e *testEnv) users(t *testing.T, id string) []string {
	t.Helper()
	users, err := e.counters.Users(context.Background(), id)
	require.NoError(t, err)
	return users
}

func (e *testEnv) auditEvents(t *testing.T) []domain.AuditEvent {
	t.Helper()
	events, err := e.audit.Read(context.Background(), 200)
	require.NoError(t, err)
	return events
}
