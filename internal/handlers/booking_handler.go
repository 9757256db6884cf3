package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/httpresp"
	ucBooking "github.com/salonops/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create     *ucBooking.CreateBooking
	cancel     *ucBooking.CancelBooking
	complete   *ucBooking.CompleteBooking
	markNoShow *ucBooking.MarkNoShow
	listByDate *ucBooking.ListBookingsByDate
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
	markNoShow *ucBooking.MarkNoShow,
	listByDate *ucBooking.ListBookingsByDate,
) *BookingHandler {
	return &BookingHandler{
		create:     create,
		cancel:     cancel,
		complete:   complete,
		markNoShow: markNoShow,
		listByDate: listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	ProviderID uint   `json:"provider_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Notes      string `json:"notes"`
}

type CancelBookingRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

// POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:     req.UserID,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"booking_id": b.ID,
		"status":     b.Status,
		"start_time": b.StartTime,
		"end_time":   b.EndTime,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

// PATCH /api/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), uint(bookingID), req.UserID, req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking_id": b.ID, "status": b.Status})
}

// PATCH /api/bookings/:id/complete
func (h *BookingHandler) Complete(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), uint(bookingID))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking_id": b.ID, "status": b.Status})
}

// PATCH /api/bookings/:id/no-show
func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.markNoShow.Execute(c.Request.Context(), uint(bookingID))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking_id": b.ID, "status": b.Status})
}

// ======================================================
// AGENDA
// ======================================================

// GET /api/providers/:id/agenda?date=YYYY-MM-DD
func (h *BookingHandler) ListByDate(c *gin.Context) {
	providerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_provider_id", "Invalid provider id.")
		return
	}

	date, err := parseDateInProvider(nil, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDateOrTime, "Invalid or missing date (expected YYYY-MM-DD).")
		return
	}

	list, err := h.listByDate.Execute(c.Request.Context(), uint(providerID), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}
