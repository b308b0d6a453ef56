package handlers

import (
	"net/http"
	"time"

	"chefly/database/repository"
	"chefly/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler manages the client reference records bookings point at.
type ClientHandler struct {
	Repo repository.ClientRepository
}

func NewClientHandler(repo repository.ClientRepository) *ClientHandler {
	return &ClientHandler{Repo: repo}
}

// CreateClient registers a client record.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var input models.Client
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client name is required"})
		return
	}
	input.ID = uuid.New().String()
	input.CreatedAt = time.Now()
	if err := h.Repo.Create(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": input})
}

// GetClient returns one client by ID.
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.Repo.GetByID(c.Param("clientID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}
