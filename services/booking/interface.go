package booking

import (
	"sync"

	"chefly/database/repository"
	"chefly/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// BookingService owns the booking lifecycle: creation, status transitions,
// and the earnings view derived from the booking history.
type BookingService interface {
	RequestBooking(input models.BookingRequestInput) (*models.Booking, error)
	Transition(bookingID string, event models.BookingEvent, actor models.ActorRole) (*models.Booking, error)
	GetBooking(bookingID string) (*models.Booking, error)
	ListBookingsForChef(chefID string) ([]models.Booking, error)
	ListBookingsForClient(clientID string) ([]models.Booking, error)
	AddNote(bookingID string, note string) error
	AddReview(bookingID string, actor models.ActorRole, review models.Review) error
	GetEarnings(chefID string) (*models.Earnings, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	ChefRepo    repository.ChefRepository
	BookingRepo repository.BookingRepository
	ClientRepo  repository.ClientRepository
	CacheClient *redis.Client // nil disables the earnings snapshot cache
	TaskQueue   *asynq.Client // nil disables booking reminders

	// ReminderLeadMinutes is how long before the slot reminders fire.
	ReminderLeadMinutes int

	locks sync.Map // bookingID -> *sync.Mutex
}

// lockFor returns the mutex serializing transitions on one booking.
// Transitions on different bookings stay fully independent.
func (s *DefaultBookingService) lockFor(bookingID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(bookingID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
