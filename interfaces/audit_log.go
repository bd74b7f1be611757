package interfaces

import (
	"context"

	"github.com/m7mdrf3t/LoadBalancer/domain"
)

// AuditLog is the bounded, newest-first record of session lifecycle events.
//
//go:generate moq -stub -out mock/audit_log.go -pkg mock . AuditLog
type AuditLog interface {
	// Record appends an event and trims the log to its cap. Callers treat a
	// failure as diagnostic only; it must never fail the surrounding operation.
	Record(ctx context.Context, event domain.AuditEvent) error

	// Read returns up to limit events, newest first. Entries that fail to
	// decode are replaced with a corrupt_data placeholder, not dropped errors.
	Read(ctx context.Context, limit int) ([]domain.AuditEvent, error)

	// Clear empties the log unconditionally.
	Clear(ctx context.Context) error
}
