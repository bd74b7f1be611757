package interfaces

import (
	"context"
	"time"

	"github.com/m7mdrf3t/LoadBalancer/domain"
)

// SessionStore maps requester ids to their session records. Expiry is
// passive: the store drops the key when the TTL runs out, nothing sweeps
// the counters that referenced it.
//
//go:generate moq -stub -out mock/session_store.go -pkg mock . SessionStore
type SessionStore interface {
	// Get returns the session for requesterID.
	// Returns:
	// 1) (session, nil) when a valid record exists;
	// 2) (zero, entity_not_found) when the key is absent or expired;
	// 3) (zero, corrupt_state) when the record fails to decode or fails
	//    structural validation.
	Get(ctx context.Context, requesterID string) (domain.Session, error)

	// Put writes the session record with the given TTL.
	Put(ctx context.Context, session domain.Session, ttl time.Duration) error

	// Delete removes the session record. Deleting an absent key is not an error.
	Delete(ctx context.Context, requesterID string) error

	// DeleteAll removes the records for all given requester ids in one
	// round trip. Order-independent; absent keys are ignored.
	DeleteAll(ctx context.Context, requesterIDs []string) error
}
