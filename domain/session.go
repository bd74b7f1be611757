package domain

import "time"

// Session is a time-bounded binding of a requester to a slot. The record
// lives under a fixed TTL in the store; ExpiresAt mirrors that deadline and
// is not refreshed on reuse.
type Session struct {
	RequesterID string    `json:"requester_id"`
	SlotID      string    `json:"slot_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Assignment is what a successful admission hands back to the caller.
type Assignment struct {
	SlotID     string
	Credential string
	TargetID   string
}

// Termination reports the outcome of ending a single session. Ended is
// false when there was no session to end, which is still a success.
type Termination struct {
	RequesterID string
	SlotID      string
	Ended       bool
}
