package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	chefRepo "chefly/database/repository/chef"
	clientRepo "chefly/database/repository/client"
	"chefly/models"
	"chefly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestBooking validates the request against the referenced chef, service
// and client, prices it, and creates the booking in the pending state.
// Validation failures create nothing.
func (s *DefaultBookingService) RequestBooking(input models.BookingRequestInput) (*models.Booking, error) {
	chef, err := s.ChefRepo.GetByID(input.ChefID)
	if err != nil {
		if errors.Is(err, chefRepo.ErrNotFound) {
			return nil, NotFoundError{Kind: "chef", ID: input.ChefID}
		}
		return nil, fmt.Errorf("failed to load chef: %w", err)
	}

	svc := chef.ServiceByID(input.ServiceID)
	if svc == nil {
		return nil, NotFoundError{Kind: "service", ID: input.ServiceID}
	}

	if _, err := s.ClientRepo.GetByID(input.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrNotFound) {
			return nil, NotFoundError{Kind: "client", ID: input.ClientID}
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	scheduled, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, ValidationError{Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", input.Date)}
	}

	duration := input.Duration
	if duration <= 0 {
		duration = svc.Duration
	}
	if duration <= 0 {
		return nil, ValidationError{Reason: "duration must be positive"}
	}

	guests := input.Guests
	if guests <= 0 {
		guests = 1
	}
	if svc.MaxGuests > 0 && guests > svc.MaxGuests {
		return nil, ValidationError{Reason: fmt.Sprintf("guest count %d exceeds service capacity %d", guests, svc.MaxGuests)}
	}

	groceryMode := input.GroceryMode
	switch groceryMode {
	case models.GroceryChefProvides, models.GroceryClientProvides:
	case "":
		if svc.GroceriesIncluded {
			groceryMode = models.GroceryChefProvides
		} else {
			groceryMode = models.GroceryClientProvides
		}
	default:
		return nil, ValidationError{Reason: fmt.Sprintf("unknown grocery mode %q", groceryMode)}
	}

	if len(chef.Availability) > 0 && !withinAvailability(chef.Availability, scheduled, input.Start, duration) {
		return nil, ValidationError{Reason: "requested slot is outside the chef's availability"}
	}

	totalPrice := svc.Price
	if totalPrice == 0 {
		totalPrice = chef.HourlyRate * float64(duration) / 60
	}

	now := time.Now()
	booking := &models.Booking{
		ID:          uuid.New().String(),
		ChefID:      chef.ID,
		ClientID:    input.ClientID,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		EventType:   input.EventType,
		Date:        input.Date,
		Start:       input.Start,
		Duration:    duration,
		Guests:      guests,
		Recipes:     input.Recipes,
		GroceryMode: groceryMode,
		TotalPrice:  totalPrice,
		Status:      models.StatusPending,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.BookingRepo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("booking requested",
		zap.String("bookingId", booking.ID),
		zap.String("chefId", booking.ChefID),
		zap.String("clientId", booking.ClientID),
		zap.Float64("totalPrice", booking.TotalPrice))
	return booking, nil
}

// withinAvailability reports whether the requested slot falls inside one of
// the chef's weekly windows on the scheduled weekday.
func withinAvailability(windows []models.AvailabilityWindow, date time.Time, start, duration int) bool {
	day := strings.ToLower(date.Weekday().String())
	for _, w := range windows {
		if strings.ToLower(w.Day) != day {
			continue
		}
		if start >= w.Start && start+duration <= w.End {
			return true
		}
	}
	return false
}
