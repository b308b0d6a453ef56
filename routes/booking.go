package routes

import (
	"chefly/handlers"
	"chefly/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler, e *handlers.EarningsHandler) {
	booking := r.Group("/api/bookings")
	{
		booking.POST("", h.RequestBooking)
		booking.GET("/:bookingID", h.GetBooking)
		booking.POST("/:bookingID/notes", h.AddNote)
		booking.POST("/:bookingID/transition", middleware.ActorRole(), h.TransitionBooking)
		booking.POST("/:bookingID/review", middleware.ActorRole(), h.AddReview)
	}

	r.GET("/api/chefs/:chefID/bookings", h.ListChefBookings)
	r.GET("/api/clients/:clientID/bookings", h.ListClientBookings)
	r.GET("/api/chefs/:chefID/earnings", e.GetEarnings)
}
