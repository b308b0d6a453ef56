package chefRepo

import (
	"errors"

	"chefly/models"
)

// ErrNotFound is returned when no chef (or owned service) matches the key.
var ErrNotFound = errors.New("chef repository: not found")

// ChefRepository defines methods for chef data access. Implementations own
// no business logic; they expose create/read/update by key.
type ChefRepository interface {
	// GetByID retrieves a chef by its unique ID.
	GetByID(id string) (*models.Chef, error)
	// GetAll retrieves all chefs in insertion order.
	GetAll() ([]models.Chef, error)
	// GetServiceByID resolves an owned service by its ID across all chefs.
	GetServiceByID(serviceID string) (*models.Service, error)
	// Create inserts a new chef record.
	Create(chef *models.Chef) error
	// Update replaces an existing chef record.
	Update(chef *models.Chef) error
	// UpdateStats writes the derived rating and completed-booking count.
	UpdateStats(id string, rating float64, totalBookings int) error
	// Delete removes a chef record by its ID. Embedded services go with it.
	Delete(id string) error
}
