package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/pkg/response"
	"estatecrm/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking handles POST /bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("agent_id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// GetBooking handles GET /bookings/:id
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// ListBookings handles GET /bookings
func (h *Handler) ListBookings(c *gin.Context) {
	f := ListFilter{
		Status: Status(c.Query("status")),
		Limit:  50,
	}
	if cid := c.Query("client_id"); cid != "" {
		if v, err := strconv.ParseInt(cid, 10, 64); err == nil {
			f.ClientID = v
		}
	}
	if pid := c.Query("property_id"); pid != "" {
		if v, err := strconv.ParseInt(pid, 10, 64); err == nil {
			f.PropertyID = v
		}
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			f.Limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			f.Offset = v
		}
	}

	bookings, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, BookingListResponse{Bookings: bookings, Total: total})
}

// Confirm handles POST /bookings/:id/confirm
func (h *Handler) Confirm(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	b, err := h.service.Confirm(c.Request.Context(), c.GetInt64("agent_id"), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Cancel handles POST /bookings/:id/cancel
func (h *Handler) Cancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), c.GetInt64("agent_id"), id, req.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Complete handles POST /bookings/:id/complete
func (h *Handler) Complete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	b, err := h.service.Complete(c.Request.Context(), c.GetInt64("agent_id"), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// UpdateDeposit handles PATCH /bookings/:id/deposit
func (h *Handler) UpdateDeposit(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	b, err := h.service.UpdateDeposit(c.Request.Context(), c.GetInt64("agent_id"), id, req.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch err {
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case ErrClientNotFound:
		response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
	case ErrPropertyNotFound:
		response.Error(c, http.StatusNotFound, "PROPERTY_NOT_FOUND", "Property not found")
	case ErrPropertyHeld:
		response.Error(c, http.StatusConflict, "PROPERTY_HELD", "Property already has an active reservation")
	case ErrInvalidKind:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_KIND", "Booking kind must be viewing or reservation")
	case ErrInvalidTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status does not allow this operation")
	case ErrPastSchedule:
		response.Error(c, http.StatusUnprocessableEntity, "PAST_SCHEDULE", "Viewing time must be in the future")
	case ErrCancelNeedsReason:
		response.Error(c, http.StatusUnprocessableEntity, "CANCEL_NEEDS_REASON", "Cancelling a booking requires a reason")
	case ErrInvalidDeposit:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_DEPOSIT", "Deposit amount must not be negative")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
