package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SpotKeeper/internal/broadcast"
	"github.com/stpnv0/SpotKeeper/internal/domain"
	"github.com/stpnv0/SpotKeeper/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type CoordinatorSvc interface {
	Init(ctx context.Context, input domain.InitInput) (domain.StatusSnapshot, error)
	Reserve(ctx context.Context, eventID, userID, pricingTier string, holdDuration time.Duration) (*domain.ReservationResult, error)
	Release(ctx context.Context, eventID, userID string) (domain.StatusSnapshot, error)
	Confirm(ctx context.Context, eventID, userID, bookingID string) (domain.StatusSnapshot, error)
	Cancel(ctx context.Context, eventID, bookingID string) (domain.StatusSnapshot, error)
	Status(ctx context.Context, eventID string) (domain.StatusSnapshot, error)
}

type Handler struct {
	coordinator CoordinatorSvc
	hub         *broadcast.Hub
	logger      logger.Logger
}

func NewHandler(coordinator CoordinatorSvc, hub *broadcast.Hub, logger logger.Logger) *Handler {
	return &Handler{
		coordinator: coordinator,
		hub:         hub,
		logger:      logger,
	}
}

func (h *Handler) InitEvent(c *ginext.Context) {
	eventID, ok := h.eventID(c)
	if !ok {
		return
	}

	var req dto.InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	snap, err := h.coordinator.Init(c.Request.Context(), domain.InitInput{
		EventID:        eventID,
		TenantID:       req.TenantID,
		MaxAttendees:   req.MaxAttendees,
		ConfirmedCount: req.ConfirmedCount,
		PendingCount:   req.PendingCount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToStatusData(snap)))
}

func (h *Handler) Reserve(c *ginext.Context) {
	eventID, ok := h.eventID(c)
	if !ok {
		return
	}

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	result, err := h.coordinator.Reserve(
		c.Request.Context(),
		eventID, req.UserID, req.PricingTier,
		time.Duration(req.HoldDurationMs)*time.Millisecond,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToReserveData(result)))
}

func (h *Handler) Release(c *ginext.Context) {
	eventID, ok := h.eventID(c)
	if !ok {
		return
	}

	var req dto.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	snap, err := h.coordinator.Release(c.Request.Context(), eventID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ReleaseData{AvailableSpots: snap.AvailableSpots}))
}

func (h *Handler) Confirm(c *ginext.Context) {
	eventID, ok := h.eventID(c)
	if !ok {
		return
	}

	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	snap, err := h.coordinator.Confirm(c.Request.Context(), eventID, req.UserID, req.BookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ConfirmData{
		AvailableSpots: snap.AvailableSpots,
		Confirmed:      snap.Confirmed,
	}))
}

func (h *Handler) Cancel(c *ginext.Context) {
	eventID, ok := h.eventID(c)
	if !ok {
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	snap, err := h.coordinator.Cancel(c.Request.Context(), eventID, req.BookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.CancelData{
		AvailableSpots: snap.AvailableSpots,
		Confirmed:      snap.Confirmed,
	}))
}

func (h *Handler) Status(c *ginext.Context) {
	eventID, ok := h.eventID(c)
	if !ok {
		return
	}

	snap, err := h.coordinator.Status(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToStatusData(snap)))
}

func (h *Handler) eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid event id"))
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotInitialized):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrAtCapacity):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error"))
	}
}
