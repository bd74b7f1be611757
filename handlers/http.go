// Package handlers contains http handlers for the load balancer.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/m7mdrf3t/LoadBalancer/interfaces"
	"github.com/m7mdrf3t/LoadBalancer/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

const defaultAuditReadLimit = 100

// HTTPServer exposes the admission core over HTTP.
type HTTPServer struct {
	admission interfaces.Admission
	lifecycle interfaces.Lifecycle
	registry  interfaces.Registry
	monitor   interfaces.Monitor
	audit     interfaces.AuditLog
	pinger    interfaces.Pinger
	logger    log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(
	admission interfaces.Admission,
	lifecycle interfaces.Lifecycle,
	registry interfaces.Registry,
	monitor interfaces.Monitor,
	audit interfaces.AuditLog,
	pinger interfaces.Pinger,
	logger log.Logger,
) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		admission: admission,
		lifecycle: lifecycle,
		registry:  registry,
		monitor:   monitor,
		audit:     audit,
		pinger:    pinger,
		logger:    logger,
	}
}

// RegisterHandlers registers all routes on the echo instance.
func RegisterHandlers(e *echo.Echo, s *HTTPServer) {
	e.POST("/v1/assign", s.Assign)
	e.POST("/v1/terminate", s.Terminate)

	e.POST("/v1/slots", s.AddSlot)
	e.GET("/v1/slots", s.ListSlots)
	e.PATCH("/v1/slots/:id", s.UpdateSlot)
	e.POST("/v1/slots/:id/enabled", s.SetSlotEnabled)
	e.DELETE("/v1/slots/:id", s.RemoveSlot)
	e.POST("/v1/slots/:id/terminate", s.TerminateAll)

	e.GET("/v1/status", s.Status)
	e.GET("/v1/audit", s.ReadAudit)
	e.DELETE("/v1/audit", s.ClearAudit)
	e.GET("/v1/health", s.Health)
}

// Assign (POST /v1/assign) returns the requester's slot binding, admitting it
// first when no valid session exists. 503 when every slot is at capacity.
func (h *HTTPServer) Assign(ectx echo.Context) error {
	var req AssignRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	ctx := ectx.Request().Context()
	assignment, err := h.admission.Assign(ctx, req.RequesterId)
	if err != nil {
		return fmt.Errorf("assign failed for requester '%s', err: %w", req.RequesterId, err)
	}

	return ectx.JSON(http.StatusOK, AssignResponse{
		SlotId:     assignment.SlotID,
		Credential: assignment.Credential,
		TargetId:   assignment.TargetID,
	})
}

// Terminate (POST /v1/terminate) ends the requester's session. A missing
// session is still a 200.
func (h *HTTPServer) Terminate(ectx echo.Context) error {
	var req TerminateRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	ctx := ectx.Request().Context()
	termination, err := h.lifecycle.Terminate(ctx, req.RequesterId)
	if err != nil {
		return fmt.Errorf("terminate failed for requester '%s', err: %w", req.RequesterId, err)
	}

	message := "session terminated"
	if !termination.Ended {
		message = "no active session"
	}

	return ectx.JSON(http.StatusOK, TerminateResponse{
		Ended:   termination.Ended,
		Message: message,
	})
}

// AddSlot (POST /v1/slots) registers a new slot. 409 on duplicate id.
func (h *HTTPServer) AddSlot(ectx echo.Context) error {
	var req AddSlotRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	slot, err := fromAddSlotRequest(req)
	if err != nil {
		return fmt.Errorf("addSlot failed to convert request, err: %w", err)
	}

	ctx := ectx.Request().Context()
	if err := h.registry.Add(ctx, slot); err != nil {
		return fmt.Errorf("addSlot failed for slot '%s', err: %w", slot.ID, err)
	}

	return ectx.JSON(http.StatusCreated, toSlotInfo(slot))
}

// ListSlots (GET /v1/slots) returns all registered slots.
func (h *HTTPServer) ListSlots(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	slots, err := h.registry.List(ctx)
	if err != nil {
		return fmt.Errorf("listSlots failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toSlotsResponse(slots))
}

// UpdateSlot (PATCH /v1/slots/{id}) merges the provided fields over the
// existing slot. 404 when absent, 400 when the merged record is invalid.
func (h *HTTPServer) UpdateSlot(ectx echo.Context) error {
	var req UpdateSlotRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	ctx := ectx.Request().Context()
	slot, err := h.registry.Update(ctx, ectx.Param("id"), fromUpdateSlotRequest(req))
	if err != nil {
		return fmt.Errorf("updateSlot failed for slot '%s', err: %w", ectx.Param("id"), err)
	}

	return ectx.JSON(http.StatusOK, toSlotInfo(slot))
}

// SetSlotEnabled (POST /v1/slots/{id}/enabled) flips the enabled flag.
func (h *HTTPServer) SetSlotEnabled(ectx echo.Context) error {
	var req SetEnabledRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.Enabled == nil {
		return service.NewBadParameterError("enabled is required", nil)
	}

	ctx := ectx.Request().Context()
	slot, err := h.registry.SetEnabled(ctx, ectx.Param("id"), *req.Enabled)
	if err != nil {
		return fmt.Errorf("setSlotEnabled failed for slot '%s', err: %w", ectx.Param("id"), err)
	}

	return ectx.JSON(http.StatusOK, toSlotInfo(slot))
}

// RemoveSlot (DELETE /v1/slots/{id}) deletes the slot and purges its state.
func (h *HTTPServer) RemoveSlot(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	if err := h.registry.Remove(ctx, ectx.Param("id")); err != nil {
		return fmt.Errorf("removeSlot failed for slot '%s', err: %w", ectx.Param("id"), err)
	}

	return ectx.NoContent(http.StatusOK)
}

// TerminateAll (POST /v1/slots/{id}/terminate) ends every session bound to
// the slot.
func (h *HTTPServer) TerminateAll(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	slotID := ectx.Param("id")
	cleared, err := h.lifecycle.TerminateAllForSlot(ctx, slotID)
	if err != nil {
		return fmt.Errorf("terminateAll failed for slot '%s', err: %w", slotID, err)
	}

	return ectx.JSON(http.StatusOK, TerminateAllResponse{
		SlotId:  slotID,
		Cleared: cleared,
	})
}

// Status (GET /v1/status) returns the per-slot monitoring snapshot.
func (h *HTTPServer) Status(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	statuses, err := h.monitor.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("status failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toStatusResponse(statuses))
}

// ReadAudit (GET /v1/audit?limit=N) returns the most recent audit events,
// newest first.
func (h *HTTPServer) ReadAudit(ectx echo.Context) error {
	limit := defaultAuditReadLimit
	if v := ectx.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return service.NewBadParameterError("limit must be a positive integer", err)
		}
		limit = n
	}

	ctx := ectx.Request().Context()
	events, err := h.audit.Read(ctx, limit)
	if err != nil {
		return fmt.Errorf("readAudit failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toAuditResponse(events))
}

// ClearAudit (DELETE /v1/audit) empties the audit log.
func (h *HTTPServer) ClearAudit(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	if err := h.audit.Clear(ctx); err != nil {
		return fmt.Errorf("clearAudit failed, err: %w", err)
	}

	return ectx.NoContent(http.StatusOK)
}

// Health (GET /v1/health) pings the shared store.
func (h *HTTPServer) Health(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	if err := h.pinger.Ping(ctx); err != nil {
		return service.NewInternalServerError("store is unreachable", err)
	}

	return ectx.NoContent(http.StatusOK)
}
