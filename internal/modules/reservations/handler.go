package reservations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tapechart/internal/domain"
	"tapechart/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chart", h.GetSnapshot)
	rg.POST("/reservations", h.CreateReservation)
	rg.GET("/reservations/:id", h.GetReservation)
	rg.PATCH("/reservations/:id/move", h.MoveReservation)
	rg.POST("/reservations/:id/split", h.SplitReservation)
	rg.PATCH("/reservations/:id/status", h.UpdateStatus)
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	var q SnapshotQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	snap, err := h.service.Snapshot(c.Request.Context(), q.From, q.To)
	if err != nil {
		h.writeError(c, err, "Failed to load chart snapshot")
		return
	}
	response.Success(c, http.StatusOK, snap)
}

func (h *Handler) GetReservation(c *gin.Context) {
	r, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to load reservation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create reservation")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"reservation": r})
}

func (h *Handler) MoveReservation(c *gin.Context) {
	var req MoveReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Move(c.Request.Context(), c.Param("id"), req.Room, req.CheckIn, req.CheckOut)
	if err != nil {
		h.writeError(c, err, "Failed to move reservation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) SplitReservation(c *gin.Context) {
	var req SplitReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	first, second, err := h.service.Split(c.Request.Context(), c.Param("id"), req.SplitDate, req.SecondRoom)
	if err != nil {
		h.writeError(c, err, "Failed to split reservation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"first": first, "second": second})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.ReservationStatus(req.Status))
	if err != nil {
		h.writeError(c, err, "Failed to update reservation status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

// writeError maps service errors onto the API envelope. Validation and
// conflict reasons flow through verbatim so grid views can surface the
// exact rejection to the user.
func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrRoomUnknown):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "RESERVATION_CONFLICT", err.Error())
	case errors.Is(err, ErrRoomBlocked):
		response.Error(c, http.StatusConflict, "ROOM_OUT_OF_ORDER", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
