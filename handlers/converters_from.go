package handlers

import (
	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/service"
)

// fromAddSlotRequest converts AddSlotRequest to domain.Slot.
// Returns service.BadParameterError on validation failure.
func fromAddSlotRequest(req AddSlotRequest) (domain.Slot, error) {
	if req.Id == "" {
		return domain.Slot{}, service.NewBadParameterError("id is required", nil)
	}
	if req.Credential == "" {
		return domain.Slot{}, service.NewBadParameterError("credential is required", nil)
	}
	if req.TargetId == "" {
		return domain.Slot{}, service.NewBadParameterError("target_id is required", nil)
	}
	if req.Capacity <= 0 {
		return domain.Slot{}, service.NewBadParameterError("capacity must be positive", nil)
	}

	return domain.Slot{
		ID:         req.Id,
		Credential: req.Credential,
		TargetID:   req.TargetId,
		Capacity:   req.Capacity,
		Enabled:    true,
	}, nil
}

// fromUpdateSlotRequest converts UpdateSlotRequest to domain.SlotUpdate.
func fromUpdateSlotRequest(req UpdateSlotRequest) domain.SlotUpdate {
	return domain.SlotUpdate{
		Credential: req.Credential,
		TargetID:   req.TargetId,
		Capacity:   req.Capacity,
		Enabled:    req.Enabled,
	}
}
