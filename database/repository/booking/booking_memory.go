package bookingRepo

import (
	"sync"
	"time"

	"chefly/models"
)

// MemoryBookingRepo implements BookingRepository with an in-process map.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
	order    []string
}

// NewMemoryBookingRepo creates an empty in-memory booking repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (r *MemoryBookingRepo) GetByChefID(chefID string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.ChefID == chefID })
}

func (r *MemoryBookingRepo) GetByClientID(clientID string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.ClientID == clientID })
}

func (r *MemoryBookingRepo) filter(keep func(models.Booking) bool) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, id := range r.order {
		if b := r.bookings[id]; keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bookings[booking.ID]; !exists {
		r.order = append(r.order, booking.ID)
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepo) UpdateStatus(id string, from, to models.BookingStatus, version int64, updatedAt time.Time) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	if booking.Status != from || booking.Version != version {
		return nil, ErrStaleWrite
	}
	booking.Status = to
	booking.Version++
	booking.UpdatedAt = updatedAt
	r.bookings[id] = booking
	return &booking, nil
}

func (r *MemoryBookingRepo) AppendNote(id string, note string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	booking.Notes = append(booking.Notes, note)
	booking.UpdatedAt = updatedAt
	r.bookings[id] = booking
	return nil
}

func (r *MemoryBookingRepo) SetReview(id string, review models.Review, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	booking.Review = &review
	booking.UpdatedAt = updatedAt
	r.bookings[id] = booking
	return nil
}
