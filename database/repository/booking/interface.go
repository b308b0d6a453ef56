package bookingRepo

import (
	"errors"
	"time"

	"chefly/models"
)

var (
	// ErrNotFound is returned when no booking matches the key.
	ErrNotFound = errors.New("booking repository: not found")
	// ErrStaleWrite is returned when a status update loses a concurrent race:
	// the stored status or version no longer matches what the caller read.
	ErrStaleWrite = errors.New("booking repository: stale write")
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByChefID retrieves all bookings where the chef is the provider.
	GetByChefID(chefID string) ([]models.Booking, error)
	// GetByClientID retrieves all bookings requested by the client.
	GetByClientID(clientID string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateStatus atomically moves a booking from one status to another,
	// stamping updatedAt and bumping the version. The write only applies when
	// the stored status and version still match; otherwise ErrStaleWrite.
	UpdateStatus(id string, from, to models.BookingStatus, version int64, updatedAt time.Time) (*models.Booking, error)
	// AppendNote appends a free-form note to the booking.
	AppendNote(id string, note string, updatedAt time.Time) error
	// SetReview attaches a client review to the booking.
	SetReview(id string, review models.Review, updatedAt time.Time) error
}
