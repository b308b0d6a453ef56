package middleware

import (
	"net/http"

	"chefly/models"

	"github.com/gin-gonic/gin"
)

// ActorRoleKey is the context key the handlers read the acting role from.
const ActorRoleKey = "actorRole"

// ActorRole requires a valid 'role' header on booking mutations. Transitions
// are gated per role in the service layer; this middleware only establishes
// which side of the booking is acting.
func ActorRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.ActorRole(c.GetHeader("role"))

		switch role {
		case models.RoleChef, models.RoleClient:
			c.Set(ActorRoleKey, role)
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Invalid or missing 'role' header. Expected 'chef' or 'client'.",
			})
		}
	}
}

// GetActorRole reads the acting role placed by ActorRole.
func GetActorRole(c *gin.Context) models.ActorRole {
	if v, exists := c.Get(ActorRoleKey); exists {
		if role, ok := v.(models.ActorRole); ok {
			return role
		}
	}
	return ""
}
