package routes

import (
	"chefly/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterMarketplaceRoutes registers chef discovery and profile endpoints.
func RegisterMarketplaceRoutes(r *gin.Engine, m *handlers.MarketplaceHandler, ch *handlers.ChefHandler, cl *handlers.ClientHandler) {
	chefs := r.Group("/api/chefs")
	{
		chefs.GET("/search", m.SearchChefs)
		chefs.GET("", ch.ListChefs)
		chefs.POST("", ch.CreateChef)
		chefs.GET("/:chefID", ch.GetChef)
		chefs.PATCH("/:chefID", ch.UpdateChef)
		chefs.DELETE("/:chefID", ch.DeleteChef)
		chefs.POST("/:chefID/services", ch.AddService)
		chefs.DELETE("/:chefID/services/:serviceID", ch.RemoveService)
	}

	clients := r.Group("/api/clients")
	{
		clients.POST("", cl.CreateClient)
		clients.GET("/:clientID", cl.GetClient)
	}
}
