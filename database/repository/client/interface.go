package clientRepo

import (
	"errors"

	"chefly/models"
)

// ErrNotFound is returned when no client matches the key.
var ErrNotFound = errors.New("client repository: not found")

// ClientRepository defines methods for client data access.
type ClientRepository interface {
	GetByID(id string) (*models.Client, error)
	Create(client *models.Client) error
}
