package chef

import (
	"chefly/database/repository"
	"chefly/models"

	"github.com/go-redis/redis/v8"
)

// ChefService manages chef onboarding and profile upkeep. Only the owning
// chef mutates its record; rating and totalBookings are written by the
// booking service as completed-booking side effects.
type ChefService interface {
	CreateChef(input models.Chef) (*models.Chef, error)
	GetChefByID(id string) (*models.Chef, error)
	ListChefs() ([]models.Chef, error)
	UpdateChef(id string, updates map[string]interface{}) (*models.Chef, error)
	AddService(chefID string, svc models.Service) (*models.Chef, error)
	RemoveService(chefID, serviceID string) (*models.Chef, error)
	DeleteChef(id string) error
}

// DefaultChefService implements ChefService.
type DefaultChefService struct {
	Repo  repository.ChefRepository
	Cache *redis.Client // nil disables search-cache invalidation
}
