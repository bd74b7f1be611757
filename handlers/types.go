package handlers

// AssignRequest is the body of POST /v1/assign.
type AssignRequest struct {
	RequesterId string `json:"requester_id"`
}

// AssignResponse carries the slot binding returned to the requester.
type AssignResponse struct {
	SlotId     string `json:"slot_id"`
	Credential string `json:"credential"`
	TargetId   string `json:"target_id"`
}

// TerminateRequest is the body of POST /v1/terminate.
type TerminateRequest struct {
	RequesterId string `json:"requester_id"`
}

// TerminateResponse reports whether a session was actually ended.
type TerminateResponse struct {
	Ended   bool   `json:"ended"`
	Message string `json:"message"`
}

// TerminateAllResponse is the result of bulk termination for one slot.
type TerminateAllResponse struct {
	SlotId  string `json:"slot_id"`
	Cleared int64  `json:"cleared"`
}

// AddSlotRequest is the body of POST /v1/slots.
type AddSlotRequest struct {
	Id         string `json:"id"`
	Credential string `json:"credential"`
	TargetId   string `json:"target_id"`
	Capacity   int64  `json:"capacity"`
}

// UpdateSlotRequest is the body of PATCH /v1/slots/{id}. Absent fields are
// left unchanged.
type UpdateSlotRequest struct {
	Credential *string `json:"credential,omitempty"`
	TargetId   *string `json:"target_id,omitempty"`
	Capacity   *int64  `json:"capacity,omitempty"`
	Enabled    *bool   `json:"enabled,omitempty"`
}

// SetEnabledRequest is the body of POST /v1/slots/{id}/enabled.
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled"`
}

// SlotInfo describes one registered slot.
type SlotInfo struct {
	Id         string `json:"id"`
	Credential string `json:"credential"`
	TargetId   string `json:"target_id"`
	Capacity   int64  `json:"capacity"`
	Enabled    bool   `json:"enabled"`
}

// SlotsResponse is the body of GET /v1/slots.
type SlotsResponse struct {
	Slots []SlotInfo `json:"slots"`
}

// SlotStatusInfo joins a slot with its live counters.
type SlotStatusInfo struct {
	SlotInfo
	ActiveSessions int64    `json:"active_sessions"`
	ClosedSessions int64    `json:"closed_sessions"`
	ActiveUsers    []string `json:"active_users"`
	AvailableSlots int64    `json:"available_slots"`
}

// StatusResponse is the body of GET /v1/status.
type StatusResponse struct {
	Slots []SlotStatusInfo `json:"slots"`
}

// AuditEventInfo is one audit log entry.
type AuditEventInfo struct {
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
	RequesterId string `json:"requester_id,omitempty"`
	SlotId      string `json:"slot_id,omitempty"`
	Message     string `json:"message,omitempty"`
}

// AuditResponse is the body of GET /v1/audit.
type AuditResponse struct {
	Events []AuditEventInfo `json:"events"`
}
