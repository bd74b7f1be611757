package domain

import "time"

// Audit event types.
const (
	EventSessionCreated   = "session_created"
	EventSessionEnded     = "session_ended"
	EventBulkSessionEnded = "bulk_session_ended"
	// EventCorruptData is the placeholder type for log entries that could
	// not be decoded on read.
	EventCorruptData = "corrupt_data"
)

// AuditEvent is one entry of the bounded session lifecycle log.
type AuditEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Type        string    `json:"type"`
	RequesterID string    `json:"requester_id,omitempty"`
	SlotID      string    `json:"slot_id,omitempty"`
	Message     string    `json:"message,omitempty"`
}
