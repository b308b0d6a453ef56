package handlers

import (
	"net/http"

	bookingSvc "chefly/services/booking"

	"github.com/gin-gonic/gin"
)

// EarningsHandler serves the derived earnings snapshot for a chef.
type EarningsHandler struct {
	Service bookingSvc.BookingService
}

func NewEarningsHandler(svc bookingSvc.BookingService) *EarningsHandler {
	return &EarningsHandler{Service: svc}
}

// GetEarnings recomputes and returns the chef's earnings snapshot.
func (h *EarningsHandler) GetEarnings(c *gin.Context) {
	earnings, err := h.Service.GetEarnings(c.Param("chefID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"earnings": earnings})
}
