package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/token"
)

const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextSessionID = "sessionID"
)

// SessionChecker reports whether a session id is still usable.
type SessionChecker interface {
	IsActive(ctx context.Context, token string, now time.Time) (bool, error)
}

func AuthMiddleware(tokens *token.Issuer, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Authentication required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Authentication required")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Invalid or expired token")
			return
		}

		active, err := sessions.IsActive(c.Request.Context(), claims.SessionID, time.Now())
		if err != nil {
			log.Printf("session lookup failed: %v", err)
			httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Internal server error")
			return
		}
		if !active {
			httperr.Abort(c, http.StatusUnauthorized, "session_revoked", "Session expired, please log in again")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextSessionID, claims.SessionID)

		c.Next()
	}
}

// ActorFrom reads the caller set by AuthMiddleware.
func ActorFrom(c *gin.Context) user.Actor {
	return user.Actor{
		UserID: c.GetUint(ContextUserID),
		Role:   c.GetString(ContextUserRole),
	}
}
