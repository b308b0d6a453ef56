package chef

import (
	"fmt"
	"time"

	"chefly/models"
	bookingSvc "chefly/services/booking"
	"chefly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateChef onboards a new chef. Rating and totalBookings always start at
// zero; they are derived values.
func (s *DefaultChefService) CreateChef(input models.Chef) (*models.Chef, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("chef name is required")
	}
	if !models.ValidExperienceLevel(string(input.Experience)) {
		return nil, fmt.Errorf("unknown experience level %q", input.Experience)
	}
	if input.HourlyRate < 0 {
		return nil, fmt.Errorf("hourly rate must not be negative")
	}

	chef := input
	chef.ID = uuid.New().String()
	chef.Rating = 0
	chef.TotalBookings = 0
	chef.CreatedAt = time.Now()
	chef.UpdatedAt = chef.CreatedAt

	for i := range chef.Services {
		svc := &chef.Services[i]
		if !models.ValidServiceCategory(string(svc.Category)) {
			return nil, fmt.Errorf("unknown service category %q", svc.Category)
		}
		if svc.ID == "" {
			svc.ID = uuid.New().String()
		}
		svc.ChefID = chef.ID
	}

	if err := s.Repo.Create(&chef); err != nil {
		return nil, fmt.Errorf("failed to create chef: %w", err)
	}
	bookingSvc.BumpChefSearchVersion(s.Cache)
	utils.GetLogger().Info("chef onboarded", zap.String("chefId", chef.ID), zap.String("name", chef.Name))
	return &chef, nil
}

func (s *DefaultChefService) GetChefByID(id string) (*models.Chef, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultChefService) ListChefs() ([]models.Chef, error) {
	return s.Repo.GetAll()
}

// stringSlice reads a patch value as a string slice. Handles both []string
// and the []interface{} that JSON decoding into a map produces.
func stringSlice(v interface{}) ([]string, bool) {
	switch vv := v.(type) {
	case []string:
		return vv, true
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// UpdateChef merges allowed profile updates and returns the updated record.
// It implements patch-style updates; derived fields are not patchable.
func (s *DefaultChefService) UpdateChef(id string, updates map[string]interface{}) (*models.Chef, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("chef not found: %w", err)
	}

	if v, ok := updates["name"].(string); ok && v != "" {
		existing.Name = v
	}
	if v, ok := updates["bio"].(string); ok {
		existing.Bio = v
	}
	if v, ok := updates["location"].(string); ok && v != "" {
		existing.Location = v
	}
	if v, ok := updates["hourlyRate"].(float64); ok && v >= 0 {
		existing.HourlyRate = v
	}
	if v, ok := updates["experience"].(string); ok && v != "" {
		if !models.ValidExperienceLevel(v) {
			return nil, fmt.Errorf("unknown experience level %q", v)
		}
		existing.Experience = models.ExperienceLevel(v)
	}
	if v, ok := stringSlice(updates["specialties"]); ok {
		existing.Specialties = v
	}
	if v, ok := stringSlice(updates["cuisineTypes"]); ok {
		existing.CuisineTypes = v
	}
	if v, ok := stringSlice(updates["portfolio"]); ok {
		existing.Portfolio = v
	}
	existing.UpdatedAt = time.Now()

	if err := s.Repo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update chef: %w", err)
	}
	bookingSvc.BumpChefSearchVersion(s.Cache)
	return existing, nil
}

// AddService attaches a new offering to the chef's catalogue.
func (s *DefaultChefService) AddService(chefID string, svc models.Service) (*models.Chef, error) {
	chef, err := s.Repo.GetByID(chefID)
	if err != nil {
		return nil, fmt.Errorf("chef not found: %w", err)
	}
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if !models.ValidServiceCategory(string(svc.Category)) {
		return nil, fmt.Errorf("unknown service category %q", svc.Category)
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	svc.ChefID = chef.ID
	chef.Services = append(chef.Services, svc)
	chef.UpdatedAt = time.Now()

	if err := s.Repo.Update(chef); err != nil {
		return nil, fmt.Errorf("failed to add service: %w", err)
	}
	bookingSvc.BumpChefSearchVersion(s.Cache)
	return chef, nil
}

// RemoveService drops an offering from the chef's catalogue.
func (s *DefaultChefService) RemoveService(chefID, serviceID string) (*models.Chef, error) {
	chef, err := s.Repo.GetByID(chefID)
	if err != nil {
		return nil, fmt.Errorf("chef not found: %w", err)
	}
	kept := chef.Services[:0]
	found := false
	for _, svc := range chef.Services {
		if svc.ID == serviceID {
			found = true
			continue
		}
		kept = append(kept, svc)
	}
	if !found {
		return nil, fmt.Errorf("service with id %s not found", serviceID)
	}
	chef.Services = kept
	chef.UpdatedAt = time.Now()

	if err := s.Repo.Update(chef); err != nil {
		return nil, fmt.Errorf("failed to remove service: %w", err)
	}
	bookingSvc.BumpChefSearchVersion(s.Cache)
	return chef, nil
}

// DeleteChef removes the chef. Services are embedded, so they go with it.
func (s *DefaultChefService) DeleteChef(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete chef with id %s: %w", id, err)
	}
	bookingSvc.BumpChefSearchVersion(s.Cache)
	return nil
}
