package service

import (
	"context"
	"fmt"

	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Registry manages slot descriptors. Validation happens here, before any
// write, so invalid records never enter the store.
type Registry struct {
	slots  interfaces.SlotStore
	logger log.Logger
}

// NewRegistry creates a Registry over the given slot store.
func NewRegistry(slots interfaces.SlotStore, logger log.Logger) *Registry {
	return &Registry{
		slots:  slots,
		logger: log.WithPrefix(logger, "component", "Registry"),
	}
}

func validateSlot(slot domain.Slot) error {
	if slot.ID == "" {
		return NewBadParameterError("id is required", nil)
	}
	if slot.Credential == "" {
		return NewBadParameterError("credential is required", nil)
	}
	if slot.TargetID == "" {
		return NewBadParameterError("target_id is required", nil)
	}
	if slot.Capacity <= 0 {
		return NewBadParameterError("capacity must be positive", nil)
	}
	return nil
}

// Add creates a slot with enabled=true and zeroed counters.
// Returns bad_parameter on invalid fields, conflict when the id exists.
func (r *Registry) Add(ctx context.Context, slot domain.Slot) error {
	slot.Enabled = true
	if err := validateSlot(slot); err != nil {
		return err
	}

	if err := r.slots.Add(ctx, slot); err != nil {
		return err
	}

	level.Info(r.logger).Log("msg", "slot added", "slot_id", slot.ID, "capacity", slot.Capacity)
	return nil
}

// Update merges the provided fields over the existing descriptor and
// validates the result before writing it back.
// Returns entity_not_found when the slot is absent, bad_parameter when the
// merged record would be invalid.
func (r *Registry) Update(ctx context.Context, id string, update domain.SlotUpdate) (domain.Slot, error) {
	slot, err := r.slots.Get(ctx, id)
	if err != nil {
		return domain.Slot{}, err
	}

	if update.Credential != nil {
		slot.Credential = *update.Credential
	}
	if update.TargetID != nil {
		slot.TargetID = *update.TargetID
	}
	if update.Capacity != nil {
		slot.Capacity = *update.Capacity
	}
	if update.Enabled != nil {
		slot.Enabled = *update.Enabled
	}

	if err := validateSlot(slot); err != nil {
		return domain.Slot{}, err
	}

	if err := r.slots.Put(ctx, slot); err != nil {
		return domain.Slot{}, err
	}

	level.Info(r.logger).Log("msg", "slot updated", "slot_id", id)
	return slot, nil
}

// SetEnabled flips the enabled flag without touching counters or sessions.
// Returns entity_not_found when the slot is absent.
func (r *Registry) SetEnabled(ctx context.Context, id string, enabled bool) (domain.Slot, error) {
	slot, err := r.slots.Get(ctx, id)
	if err != nil {
		return domain.Slot{}, err
	}

	slot.Enabled = enabled
	if err := r.slots.Put(ctx, slot); err != nil {
		return domain.Slot{}, err
	}

	level.Info(r.logger).Log("msg", "slot enabled flag set", "slot_id", id, "enabled", enabled)
	return slot, nil
}

// Remove deletes the descriptor and purges its counters and user set.
// Sessions still bound to the slot are left orphaned; they stop resolving
// and age out through their TTL.
func (r *Registry) Remove(ctx context.Context, id string) error {
	if id == "" {
		return NewBadParameterError("id is required", nil)
	}

	if err := r.slots.Remove(ctx, id); err != nil {
		return err
	}

	level.Info(r.logger).Log("msg", "slot removed", "slot_id", id)
	return nil
}

// List returns all slot descriptors sorted by id.
func (r *Registry) List(ctx context.Context) ([]domain.Slot, error) {
	slots, err := r.slots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("registry failed to list slots: %w", err)
	}
	return slots, nil
}
