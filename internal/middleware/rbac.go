package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/httperr"
)

// RequireRoles must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := allowed[c.GetString(ContextUserRole)]; !ok {
			httperr.Abort(c, http.StatusForbidden, "forbidden", "You do not have access to this resource")
			return
		}
		c.Next()
	}
}

// SelfOrAdmin lets a user reach routes whose path parameter is their own id.
func SelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil || id == 0 {
			httperr.Abort(c, http.StatusBadRequest, "invalid_id", "Invalid id")
			return
		}

		if !ActorFrom(c).CanActFor(uint(id)) {
			httperr.Abort(c, http.StatusForbidden, "forbidden", "You do not have access to this resource")
			return
		}
		c.Next()
	}
}
