package domain

// Slot represents a registered backend API slot: one credential with a
// bounded number of concurrent sessions.
// Fields match API: id, credential, target_id, capacity, enabled.
type Slot struct {
	ID         string `json:"id"`         // unique slot identifier
	Credential string `json:"credential"` // opaque, passed through to callers
	TargetID   string `json:"target_id"`  // opaque, passed through to callers
	Capacity   int64  `json:"capacity"`   // max concurrent sessions, > 0
	Enabled    bool   `json:"enabled"`    // disabled slots keep sessions but take no new ones
}

// SlotUpdate carries a partial update for a slot. Nil fields are left
// unchanged by Registry.Update.
type SlotUpdate struct {
	Credential *string
	TargetID   *string
	Capacity   *int64
	Enabled    *bool
}

// SlotStatus joins a slot descriptor with its live counters for the
// monitoring snapshot. AvailableSlots may go negative when counters have
// drifted; it is reported as derived, not clamped.
type SlotStatus struct {
	Slot           Slot
	ActiveSessions int64
	ClosedSessions int64
	ActiveUsers    []string
	AvailableSlots int64
}
