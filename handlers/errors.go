package handlers

import (
	"net/http"

	bookingSvc "chefly/services/booking"
	"chefly/utils"

	"github.com/gin-gonic/gin"
)

// respondBookingError maps the booking service's typed errors onto HTTP
// statuses.
func respondBookingError(c *gin.Context, err error) {
	switch e := err.(type) {
	case bookingSvc.ValidationError:
		utils.JSONError(c, http.StatusBadRequest, "validation failed", e.Error())
	case bookingSvc.NotFoundError:
		utils.JSONError(c, http.StatusNotFound, "not found", e.Error())
	case bookingSvc.InvalidTransitionError:
		utils.JSONError(c, http.StatusConflict, "invalid transition", e.Error())
	case bookingSvc.ForbiddenError:
		utils.JSONError(c, http.StatusForbidden, "forbidden", e.Error())
	case bookingSvc.ConflictError:
		utils.JSONError(c, http.StatusConflict, "conflict", e.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
