package clientRepo

import (
	"sync"

	"chefly/models"
)

// MemoryClientRepo implements ClientRepository with an in-process map.
type MemoryClientRepo struct {
	mu      sync.RWMutex
	clients map[string]models.Client
}

// NewMemoryClientRepo creates an empty in-memory client repository.
func NewMemoryClientRepo() *MemoryClientRepo {
	return &MemoryClientRepo{clients: make(map[string]models.Client)}
}

func (r *MemoryClientRepo) GetByID(id string) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &client, nil
}

func (r *MemoryClientRepo) Create(client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client.ID] = *client
	return nil
}
