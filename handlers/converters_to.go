package handlers

import (
	"time"

	"github.com/m7mdrf3t/LoadBalancer/domain"
)

// toSlotInfo converts a domain slot to its API representation.
func toSlotInfo(slot domain.Slot) SlotInfo {
	return SlotInfo{
		Id:         slot.ID,
		Credential: slot.Credential,
		TargetId:   slot.TargetID,
		Capacity:   slot.Capacity,
		Enabled:    slot.Enabled,
	}
}

// toSlotsResponse converts domain slots to API response.
func toSlotsResponse(slots []domain.Slot) SlotsResponse {
	out := make([]SlotInfo, 0, len(slots))
	for _, s := range slots {
		out = append(out, toSlotInfo(s))
	}
	return SlotsResponse{Slots: out}
}

// toStatusResponse converts slot statuses to API response.
func toStatusResponse(statuses []domain.SlotStatus) StatusResponse {
	out := make([]SlotStatusInfo, 0, len(statuses))
	for _, s := range statuses {
		users := s.ActiveUsers
		if users == nil {
			users = []string{}
		}
		out = append(out, SlotStatusInfo{
			SlotInfo:       toSlotInfo(s.Slot),
			ActiveSessions: s.ActiveSessions,
			ClosedSessions: s.ClosedSessions,
			ActiveUsers:    users,
			AvailableSlots: s.AvailableSlots,
		})
	}
	return StatusResponse{Slots: out}
}

// toAuditResponse converts audit events to API response.
func toAuditResponse(events []domain.AuditEvent) AuditResponse {
	out := make([]AuditEventInfo, 0, len(events))
	for _, e := range events {
		ts := ""
		if !e.Timestamp.IsZero() {
			ts = e.Timestamp.UTC().Format(time.RFC3339)
		}
		out = append(out, AuditEventInfo{
			Timestamp:   ts,
			Type:        e.Type,
			RequesterId: e.RequesterID,
			SlotId:      e.SlotID,
			Message:     e.Message,
		})
	}
	return AuditResponse{Events: out}
}
