package service

import (
	"context"
	"fmt"

	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/interfaces"

	"github.com/go-kit/log"
)

// Monitor joins slot descriptors with their live counters for the
// dashboard. Counters may have drifted (passive TTL expiry, admission
// races); the snapshot reports them as-is, there is no reconciliation pass.
type Monitor struct {
	slots    interfaces.SlotStore
	counters interfaces.SlotCounters
	logger   log.Logger
}

// NewMonitor creates a Monitor.
func NewMonitor(slots interfaces.SlotStore, counters interfaces.SlotCounters, logger log.Logger) *Monitor {
	return &Monitor{
		slots:    slots,
		counters: counters,
		logger:   log.WithPrefix(logger, "component", "Monitor"),
	}
}

// Snapshot returns one status entry per registered slot, sorted by id.
// Corrupt descriptors were already skipped by the store layer.
func (m *Monitor) Snapshot(ctx context.Context) ([]domain.SlotStatus, error) {
	slots, err := m.slots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot failed to list slots: %w", err)
	}

	statuses := make([]domain.SlotStatus, 0, len(slots))
	for _, slot := range slots {
		active, err := m.counters.ActiveCount(ctx, slot.ID)
		if err != nil {
			return nil, fmt.Errorf("snapshot failed to read active count for slot '%s': %w", slot.ID, err)
		}
		closed, err := m.counters.ClosedCount(ctx, slot.ID)
		if err != nil {
			return nil, fmt.Errorf("snapshot failed to read closed count for slot '%s': %w", slot.ID, err)
		}
		users, err := m.counters.Users(ctx, slot.ID)
		if err != nil {
			return nil, fmt.Errorf("snapshot failed to read user set for slot '%s': %w", slot.ID, err)
		}

		statuses = append(statuses, domain.SlotStatus{
			Slot:           slot,
			ActiveSessions: active,
			ClosedSessions: closed,
			ActiveUsers:    users,
			AvailableSlots: slot.Capacity - active,
		})
	}

	return statuses, nil
}
