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

// Lifecycle ends sessions and reconciles the per-slot accounting.
type Lifecycle struct {
	slots    interfaces.SlotStore
	counters interfaces.SlotCounters
	sessions interfaces.SessionStore
	audit    interfaces.AuditLog
	now      func() time.Time
	logger   log.Logger
}

// NewLifecycle creates a Lifecycle manager.
func NewLifecycle(
	slots interfaces.SlotStore,
	counters interfaces.SlotCounters,
	sessions interfaces.SessionStore,
	audit interfaces.AuditLog,
	now func() time.Time,
	logger log.Logger,
) *Lifecycle {
	return &Lifecycle{
		slots:    slots,
		counters: counters,
		sessions: sessions,
		audit:    audit,
		now:      now,
		logger:   log.WithPrefix(logger, "component", "Lifecycle"),
	}
}

// Terminate ends the requester's session.
// Returns:
// 1) (Ended=true, nil) when a session was ended;
// 2) (Ended=false, nil) when no session existed — the caller's intent is
//    already satisfied;
// 3) (zero, corrupt_state) when the record was malformed; the dangling key
//    is still cleaned up.
func (l *Lifecycle) Terminate(ctx context.Context, requesterID string) (domain.Termination, error) {
	if requesterID == "" {
		return domain.Termination{}, NewBadParameterError("requester_id is required", nil)
	}

	sess, err := l.sessions.Get(ctx, requesterID)
	switch {
	case err == nil:
		// terminate below
	case IsEntityNotFoundError(err):
		return domain.Termination{RequesterID: requesterID, Ended: false}, nil
	case IsCorruptStateError(err):
		level.Error(l.logger).Log("msg", "corrupt session record during termination", "requester_id", requesterID, "err", err)
		if derr := l.sessions.Delete(ctx, requesterID); derr != nil {
			level.Warn(l.logger).Log("msg", "failed to clean up corrupt session key", "requester_id", requesterID, "err", derr)
		}
		return domain.Termination{}, err
	default:
		return domain.Termination{}, fmt.Errorf("failed to look up session for '%s': %w", requesterID, err)
	}

	active, err := l.counters.ActiveCount(ctx, sess.SlotID)
	if err != nil {
		return domain.Termination{}, fmt.Errorf("failed to read active count for slot '%s': %w", sess.SlotID, err)
	}
	if active > 0 {
		if _, err := l.counters.DecrActive(ctx, sess.SlotID); err != nil {
			return domain.Termination{}, fmt.Errorf("failed to decrement active count for slot '%s': %w", sess.SlotID, err)
		}
	} else {
		// Counter already drifted to zero (TTL expiry beat us); skip the
		// decrement rather than going negative.
		level.Warn(l.logger).Log("msg", "active count already zero, skipping decrement", "slot_id", sess.SlotID)
	}

	if err := l.sessions.Delete(ctx, requesterID); err != nil {
		return domain.Termination{}, fmt.Errorf("failed to delete session for '%s': %w", requesterID, err)
	}
	if err := l.counters.RemoveUser(ctx, sess.SlotID, requesterID); err != nil {
		return domain.Termination{}, fmt.Errorf("failed to remove user from slot '%s': %w", sess.SlotID, err)
	}
	if err := l.counters.AddClosed(ctx, sess.SlotID, 1); err != nil {
		return domain.Termination{}, fmt.Errorf("failed to bump closed count for slot '%s': %w", sess.SlotID, err)
	}

	l.record(ctx, domain.AuditEvent{
		Timestamp:   l.now(),
		Type:        domain.EventSessionEnded,
		RequesterID: requesterID,
		SlotID:      sess.SlotID,
		Message:     "session terminated",
	})

	level.Info(l.logger).Log("msg", "session ended", "requester_id", requesterID, "slot_id", sess.SlotID)
	return domain.Termination{RequesterID: requesterID, SlotID: sess.SlotID, Ended: true}, nil
}

// TerminateAllForSlot ends every session bound to the slot and returns the
// number cleared. An empty user set still resets the counters defensively.
// Returns entity_not_found when the slot is not registered.
func (l *Lifecycle) TerminateAllForSlot(ctx context.Context, slotID string) (int64, error) {
	if slotID == "" {
		return 0, NewBadParameterError("slot_id is required", nil)
	}

	exists, err := l.slots.Exists(ctx, slotID)
	if err != nil {
		return 0, fmt.Errorf("failed to check slot '%s': %w", slotID, err)
	}
	if !exists {
		return 0, NewEntityNotFoundError(fmt.Sprintf("slot '%s' not found", slotID), nil)
	}

	users, err := l.counters.Users(ctx, slotID)
	if err != nil {
		return 0, fmt.Errorf("failed to read user set for slot '%s': %w", slotID, err)
	}

	if len(users) > 0 {
		if err := l.sessions.DeleteAll(ctx, users); err != nil {
			return 0, fmt.Errorf("failed to delete sessions for slot '%s': %w", slotID, err)
		}
	}

	cleared := int64(len(users))
	if err := l.counters.ResetActive(ctx, slotID); err != nil {
		return 0, fmt.Errorf("failed to reset active count for slot '%s': %w", slotID, err)
	}
	if err := l.counters.AddClosed(ctx, slotID, cleared); err != nil {
		return 0, fmt.Errorf("failed to bump closed count for slot '%s': %w", slotID, err)
	}
	if err := l.counters.ClearUsers(ctx, slotID); err != nil {
		return 0, fmt.Errorf("failed to clear user set for slot '%s': %w", slotID, err)
	}

	l.record(ctx, domain.AuditEvent{
		Timestamp: l.now(),
		Type:      domain.EventBulkSessionEnded,
		SlotID:    slotID,
		Message:   fmt.Sprintf("terminated %d sessions", cleared),
	})

	level.Info(l.logger).Log("msg", "bulk session termination", "slot_id", slotID, "cleared", cleared)
	return cleared, nil
}

func (l *Lifecycle) record(ctx context.Context, event domain.AuditEvent) {
	if err := l.audit.Record(ctx, event); err != nil {
		level.Warn(l.logger).Log("msg", "failed to record audit event", "type", event.Type, "err", err)
	}
}
