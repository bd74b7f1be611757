package service

import (
	"context"
	"fmt"
	"time"

	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Admission assigns requesters to slots: reuse the existing session when one
// is valid, otherwise first-fit over enabled slots with spare capacity.
//
// The read-compare-increment sequence is three separate store commands, so
// two concurrent admissions can both pass the capacity check and push
// activeCount past capacity by the overlap degree. That race is part of the
// contract; it is bounded and reconciled by termination.
type Admission struct {
	slots    interfaces.SlotStore
	counters interfaces.SlotCounters
	sessions interfaces.SessionStore
	audit    interfaces.AuditLog
	ttl      time.Duration
	now      func() time.Time
	logger   log.Logger
}

// NewAdmission creates an Admission engine. ttl is the fixed session
// lifetime; now supplies the clock (time.Now().UTC in prod, fixed in tests).
func NewAdmission(
	slots interfaces.SlotStore,
	counters interfaces.SlotCounters,
	sessions interfaces.SessionStore,
	audit interfaces.AuditLog,
	ttl time.Duration,
	now func() time.Time,
	logger log.Logger,
) *Admission {
	return &Admission{
		slots:    slots,
		counters: counters,
		sessions: sessions,
		audit:    audit,
		ttl:      ttl,
		now:      now,
		logger:   log.WithPrefix(logger, "component", "Admission"),
	}
}

// Assign returns the requester's current binding or admits it to a slot.
// Returns:
// 1) (assignment, nil) on reuse or fresh admission;
// 2) (zero, bad_parameter) when requesterID is empty;
// 3) (zero, entity_not_found) when the bound slot no longer exists (orphaned
//    session, left in place until its TTL runs out);
// 4) (zero, capacity_exhausted) when no enabled slot has spare capacity.
func (a *Admission) Assign(ctx context.Context, requesterID string) (domain.Assignment, error) {
	if requesterID == "" {
		return domain.Assignment{}, NewBadParameterError("requester_id is required", nil)
	}

	sess, err := a.sessions.Get(ctx, requesterID)
	switch {
	case err == nil:
		return a.reuse(ctx, sess)
	case IsEntityNotFoundError(err):
		// no session, admit below
	case IsCorruptStateError(err):
		// Discard the bad record and admit as if none existed.
		level.Warn(a.logger).Log("msg", "discarding corrupt session record", "requester_id", requesterID, "err", err)
		if derr := a.sessions.Delete(ctx, requesterID); derr != nil {
			return domain.Assignment{}, fmt.Errorf("failed to discard corrupt session: %w", derr)
		}
	default:
		return domain.Assignment{}, fmt.Errorf("failed to look up session for '%s': %w", requesterID, err)
	}

	return a.admit(ctx, requesterID)
}

// reuse resolves an existing session to its slot's credentials without
// touching any counter. Repeat calls are idempotent.
func (a *Admission) reuse(ctx context.Context, sess domain.Session) (domain.Assignment, error) {
	slot, err := a.slots.Get(ctx, sess.SlotID)
	if err != nil {
		if IsEntityNotFoundError(err) {
			// Orphaned session: the slot was removed after assignment. The
			// session is deliberately not repaired; it stops resolving.
			return domain.Assignment{}, NewEntityNotFoundError(
				fmt.Sprintf("slot '%s' assigned to requester '%s' no longer exists", sess.SlotID, sess.RequesterID), err)
		}
		return domain.Assignment{}, fmt.Errorf("failed to resolve assigned slot '%s': %w", sess.SlotID, err)
	}

	return domain.Assignment{
		SlotID:     slot.ID,
		Credential: slot.Credential,
		TargetID:   slot.TargetID,
	}, nil
}

// admit selects the first enabled slot with spare capacity (first-fit in id
// order, a deliberate simplicity choice over least-loaded) and binds the
// requester to it.
func (a *Admission) admit(ctx context.Context, requesterID string) (domain.Assignment, error) {
	slots, err := a.slots.List(ctx)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("failed to list slots for admission: %w", err)
	}

	var selected *domain.Slot
	for i, slot := range slots {
		if !slot.Enabled {
			continue
		}

		active, err := a.counters.ActiveCount(ctx, slot.ID)
		if err != nil {
			return domain.Assignment{}, fmt.Errorf("failed to read active count for slot '%s': %w", slot.ID, err)
		}
		if active >= slot.Capacity {
			continue
		}

		selected = &slots[i]
		break
	}

	if selected == nil {
		return domain.Assignment{}, NewCapacityExhaustedError("no slot with available capacity", nil)
	}

	now := a.now()
	sess := domain.Session{
		RequesterID: requesterID,
		SlotID:      selected.ID,
		ExpiresAt:   now.Add(a.ttl),
	}
	if err := a.sessions.Put(ctx, sess, a.ttl); err != nil {
		return domain.Assignment{}, fmt.Errorf("failed to create session for '%s': %w", requesterID, err)
	}

	if _, err := a.counters.IncrActive(ctx, selected.ID); err != nil {
		return domain.Assignment{}, fmt.Errorf("failed to count session for slot '%s': %w", selected.ID, err)
	}
	if err := a.counters.AddUser(ctx, selected.ID, requesterID); err != nil {
		return domain.Assignment{}, fmt.Errorf("failed to track user for slot '%s': %w", selected.ID, err)
	}

	a.record(ctx, domain.AuditEvent{
		Timestamp:   now,
		Type:        domain.EventSessionCreated,
		RequesterID: requesterID,
		SlotID:      selected.ID,
		Message:     fmt.Sprintf("session assigned to slot '%s'", selected.ID),
	})

	level.Info(a.logger).Log("msg", "session created", "requester_id", requesterID, "slot_id", selected.ID)

	return domain.Assignment{
		SlotID:     selected.ID,
		Credential: selected.Credential,
		TargetID:   selected.TargetID,
	}, nil
}

// record appends an audit event; failures never fail the admission.
func (a *Admission) record(ctx context.Context, event domain.AuditEvent) {
	if err := a.audit.Record(ctx, event); err != nil {
		level.Warn(a.logger).Log("msg", "failed to record audit event", "type", event.Type, "err", err)
	}
}
