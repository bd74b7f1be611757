package service

import (
	"context"

	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// SeedDefaultSlot ensures the configured default slot exists. It runs once
// before serving traffic and is idempotent: an existing slot is left alone,
// and a conflict from a racing replica is treated as success.
func SeedDefaultSlot(ctx context.Context, registry interfaces.Registry, slots interfaces.SlotStore, seed domain.Slot, logger log.Logger) error {
	exists, err := slots.Exists(ctx, seed.ID)
	if err != nil {
		return err
	}
	if exists {
		level.Debug(logger).Log("msg", "default slot already present", "slot_id", seed.ID)
		return nil
	}

	if err := registry.Add(ctx, seed); err != nil {
		if IsConflictError(err) {
			return nil
		}
		return err
	}

	level.Info(logger).Log("msg", "seeded default slot", "slot_id", seed.ID, "capacity", seed.Capacity)
	return nil
}
