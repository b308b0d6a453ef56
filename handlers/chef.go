package handlers

import (
	"net/http"

	"chefly/models"
	chefSvc "chefly/services/chef"

	"github.com/gin-gonic/gin"
)

// ChefHandler exposes chef onboarding and profile management.
type ChefHandler struct {
	Service chefSvc.ChefService
}

func NewChefHandler(svc chefSvc.ChefService) *ChefHandler {
	return &ChefHandler{Service: svc}
}

// CreateChef onboards a new chef.
func (h *ChefHandler) CreateChef(c *gin.Context) {
	var input models.Chef
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	chef, err := h.Service.CreateChef(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create chef", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"chef": chef})
}

// GetChef returns one chef by ID.
func (h *ChefHandler) GetChef(c *gin.Context) {
	chef, err := h.Service.GetChefByID(c.Param("chefID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "chef not found", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chef": chef})
}

// ListChefs returns all chefs in insertion order.
func (h *ChefHandler) ListChefs(c *gin.Context) {
	chefs, err := h.Service.ListChefs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list chefs", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chefs": chefs})
}

// UpdateChef patches the chef's own profile fields.
func (h *ChefHandler) UpdateChef(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	chef, err := h.Service.UpdateChef(c.Param("chefID"), updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update chef", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chef": chef})
}

// AddService attaches a new offering to the chef's catalogue.
func (h *ChefHandler) AddService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	chef, err := h.Service.AddService(c.Param("chefID"), svc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to add service", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chef": chef})
}

// RemoveService drops an offering from the chef's catalogue.
func (h *ChefHandler) RemoveService(c *gin.Context) {
	chef, err := h.Service.RemoveService(c.Param("chefID"), c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to remove service", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chef": chef})
}

// DeleteChef removes the chef and, with it, every owned service.
func (h *ChefHandler) DeleteChef(c *gin.Context) {
	if err := h.Service.DeleteChef(c.Param("chefID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "failed to delete chef", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
