package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
	"github.com/salonops/salon-scheduler/internal/httperr"
	ucBooking "github.com/salonops/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	repo            domain.Repository
	getAvailability *ucBooking.GetAvailability
}

func NewAvailabilityHandler(
	repo domain.Repository,
	getAvailability *ucBooking.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		repo:            repo,
		getAvailability: getAvailability,
	}
}

// GET /api/providers/:id/availability?service_id=&date=YYYY-MM-DD
func (h *AvailabilityHandler) Get(c *gin.Context) {
	providerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_provider_id", "Invalid provider id.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid or missing service_id.")
		return
	}

	provider, err := h.repo.GetProviderByID(c.Request.Context(), uint(providerID))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	date, err := parseDateInProvider(provider, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDateOrTime, "Invalid or missing date (expected YYYY-MM-DD).")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProviderID: uint(providerID),
		ServiceID:  uint(serviceID),
		Date:       date,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  c.Query("date"),
		"slots": slots,
	})
}
