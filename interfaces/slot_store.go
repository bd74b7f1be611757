package interfaces

import (
	"context"

	"github.com/m7mdrf3t/LoadBalancer/domain"
)

// SlotStore persists slot descriptors together with their auxiliary
// structures (active counter, closed counter, user set). Implementation is
// Redis; descriptors live as fields of a single hash.
//
//go:generate moq -stub -out mock/slot_store.go -pkg mock . SlotStore
type SlotStore interface {
	// Add creates the descriptor and zeroes its auxiliary structures.
	// Returns conflict when the id already exists.
	Add(ctx context.Context, slot domain.Slot) error

	// Get returns the descriptor for id.
	// Returns entity_not_found when absent, corrupt_state when the stored
	// record does not decode.
	Get(ctx context.Context, id string) (domain.Slot, error)

	// Exists reports whether a descriptor exists for id.
	Exists(ctx context.Context, id string) (bool, error)

	// Put overwrites the descriptor. Counters and sets are untouched.
	Put(ctx context.Context, slot domain.Slot) error

	// Remove deletes the descriptor and purges all auxiliary structures.
	// Returns entity_not_found when absent.
	Remove(ctx context.Context, id string) error

	// List returns all decodable descriptors sorted by id. Corrupt entries
	// are skipped with a diagnostic. An empty registry yields an empty slice.
	List(ctx context.Context) ([]domain.Slot, error)
}

// SlotCounters exposes the per-slot session accounting primitives. All
// operations are single-key atomic on the store side; compound sequences
// built on top of them are not.
//
//go:generate moq -stub -out mock/slot_counters.go -pkg mock . SlotCounters
type SlotCounters interface {
	// ActiveCount returns the current active-session counter (0 when unset).
	ActiveCount(ctx context.Context, id string) (int64, error)

	// IncrActive atomically increments the active counter and returns the new value.
	IncrActive(ctx context.Context, id string) (int64, error)

	// DecrActive atomically decrements the active counter and returns the new value.
	DecrActive(ctx context.Context, id string) (int64, error)

	// ResetActive sets the active counter to zero.
	ResetActive(ctx context.Context, id string) error

	// AddClosed adds n to the monotonic closed-session counter.
	AddClosed(ctx context.Context, id string, n int64) error

	// ClosedCount returns the closed-session counter (0 when unset).
	ClosedCount(ctx context.Context, id string) (int64, error)

	// AddUser adds a requester to the slot's active-user set.
	AddUser(ctx context.Context, id string, requesterID string) error

	// RemoveUser removes a requester from the slot's active-user set.
	RemoveUser(ctx context.Context, id string, requesterID string) error

	// Users returns the members of the slot's active-user set.
	Users(ctx context.Context, id string) ([]string, error)

	// ClearUsers empties the slot's active-user set.
	ClearUsers(ctx context.Context, id string) error
}
