package booking

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "chefly/database/repository/booking"
	"chefly/models"
)

func (s *DefaultBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NotFoundError{Kind: "booking", ID: bookingID}
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return booking, nil
}

func (s *DefaultBookingService) ListBookingsForChef(chefID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByChefID(chefID)
}

func (s *DefaultBookingService) ListBookingsForClient(clientID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByClientID(clientID)
}

// AddNote appends a note to the booking. Notes stay writable even on
// terminal bookings; they are the only mutation terminal bookings accept.
func (s *DefaultBookingService) AddNote(bookingID string, note string) error {
	if note == "" {
		return ValidationError{Reason: "note must not be empty"}
	}
	err := s.BookingRepo.AppendNote(bookingID, note, time.Now())
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return NotFoundError{Kind: "booking", ID: bookingID}
	}
	return err
}

// AddReview attaches the client's review to a completed booking and folds it
// into the chef's derived rating.
func (s *DefaultBookingService) AddReview(bookingID string, actor models.ActorRole, review models.Review) error {
	if actor != models.RoleClient {
		return ForbiddenError{Event: "review", Actor: actor}
	}
	if review.Rating < 1 || review.Rating > 5 {
		return ValidationError{Reason: "rating must be between 1 and 5"}
	}

	mu := s.lockFor(bookingID)
	mu.Lock()
	defer mu.Unlock()

	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return NotFoundError{Kind: "booking", ID: bookingID}
		}
		return fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.Status != models.StatusCompleted {
		return ValidationError{Reason: "only completed bookings can be reviewed"}
	}

	if err := s.BookingRepo.SetReview(bookingID, review, time.Now()); err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return s.refreshChefAggregates(booking.ChefID)
}
