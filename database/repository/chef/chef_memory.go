package chefRepo

import (
	"sync"
	"time"

	"chefly/models"
)

// MemoryChefRepo implements ChefRepository with an in-process map. It backs
// tests and the mock-store mode.
type MemoryChefRepo struct {
	mu    sync.RWMutex
	chefs map[string]models.Chef
	order []string // insertion order for GetAll
}

// NewMemoryChefRepo creates an empty in-memory chef repository.
func NewMemoryChefRepo() *MemoryChefRepo {
	return &MemoryChefRepo{chefs: make(map[string]models.Chef)}
}

func (r *MemoryChefRepo) GetByID(id string) (*models.Chef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chef, ok := r.chefs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &chef, nil
}

func (r *MemoryChefRepo) GetAll() ([]models.Chef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chefs := make([]models.Chef, 0, len(r.order))
	for _, id := range r.order {
		chefs = append(chefs, r.chefs[id])
	}
	return chefs, nil
}

func (r *MemoryChefRepo) GetServiceByID(serviceID string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		chef := r.chefs[id]
		if svc := chef.ServiceByID(serviceID); svc != nil {
			cp := *svc
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryChefRepo) Create(chef *models.Chef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.chefs[chef.ID]; !exists {
		r.order = append(r.order, chef.ID)
	}
	r.chefs[chef.ID] = *chef
	return nil
}

func (r *MemoryChefRepo) Update(chef *models.Chef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chefs[chef.ID]; !ok {
		return ErrNotFound
	}
	r.chefs[chef.ID] = *chef
	return nil
}

func (r *MemoryChefRepo) UpdateStats(id string, rating float64, totalBookings int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	chef, ok := r.chefs[id]
	if !ok {
		return ErrNotFound
	}
	chef.Rating = rating
	chef.TotalBookings = totalBookings
	chef.UpdatedAt = time.Now()
	r.chefs[id] = chef
	return nil
}

func (r *MemoryChefRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chefs[id]; !ok {
		return ErrNotFound
	}
	delete(r.chefs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
