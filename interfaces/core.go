package interfaces

import (
	"context"

	"github.com/m7mdrf3t/LoadBalancer/domain"
)

// Admission assigns requesters to slots. Implementation is service.Admission.
//
//go:generate moq -stub -out mock/admission.go -pkg mock . Admission
type Admission interface {
	// Assign returns the requester's existing binding when a valid session
	// exists, otherwise admits it to the first enabled slot with spare
	// capacity. Returns capacity_exhausted when no slot is eligible.
	Assign(ctx context.Context, requesterID string) (domain.Assignment, error)
}

// Lifecycle ends sessions. Implementation is service.Lifecycle.
//
//go:generate moq -stub -out mock/lifecycle.go -pkg mock . Lifecycle
type Lifecycle interface {
	// Terminate ends the requester's session. A missing session is a
	// successful no-op (Ended=false).
	Terminate(ctx context.Context, requesterID string) (domain.Termination, error)

	// TerminateAllForSlot ends every session bound to the slot and returns
	// how many were cleared. Returns entity_not_found for an unknown slot.
	TerminateAllForSlot(ctx context.Context, slotID string) (int64, error)
}

// Registry manages slot descriptors. Implementation is service.Registry.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	Add(ctx context.Context, slot domain.Slot) error
	Update(ctx context.Context, id string, update domain.SlotUpdate) (domain.Slot, error)
	SetEnabled(ctx context.Context, id string, enabled bool) (domain.Slot, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Slot, error)
}

// Monitor aggregates per-slot status. Implementation is service.Monitor.
//
//go:generate moq -stub -out mock/monitor.go -pkg mock . Monitor
type Monitor interface {
	Snapshot(ctx context.Context) ([]domain.SlotStatus, error)
}

// Pinger reports liveness of the shared store.
//
//go:generate moq -stub -out mock/pinger.go -pkg mock . Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}
