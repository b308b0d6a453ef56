package handlers

import (
	"net/http"

	"chefly/middleware"
	"chefly/models"
	bookingSvc "chefly/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service bookingSvc.BookingService
}

func NewBookingHandler(svc bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// RequestBooking creates a new booking in the pending state.
func (h *BookingHandler) RequestBooking(c *gin.Context) {
	var input models.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Service.RequestBooking(input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// TransitionBooking applies a workflow event on behalf of the acting role.
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	var input struct {
		Event models.BookingEvent `json:"event"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	actor := middleware.GetActorRole(c)
	booking, err := h.Service.Transition(bookingID, input.Event, actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GetBooking returns a single booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.Service.GetBooking(c.Param("bookingID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ListChefBookings returns all bookings where the chef is the provider.
func (h *BookingHandler) ListChefBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookingsForChef(c.Param("chefID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListClientBookings returns all bookings requested by the client.
func (h *BookingHandler) ListClientBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookingsForClient(c.Param("clientID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// AddNote appends a note to the booking. Notes are accepted in any state.
func (h *BookingHandler) AddNote(c *gin.Context) {
	var input struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.AddNote(c.Param("bookingID"), input.Note); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "note added"})
}

// AddReview attaches the client's review to a completed booking.
func (h *BookingHandler) AddReview(c *gin.Context) {
	var input models.Review
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	actor := middleware.GetActorRole(c)
	if err := h.Service.AddReview(c.Param("bookingID"), actor, input); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "review added"})
}
