package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everestwc/everest-backend/internal/response"
)

const (
	// SessionCookieName is the cookie carrying the opaque session ID.
	SessionCookieName = "everest_session"

	// ContextKeyAdminID is the Gin context key for the authenticated admin ID.
	ContextKeyAdminID = "admin_id"
)

// SessionChecker resolves a session ID to the admin it belongs to.
// Implemented by service.AuthService.
type SessionChecker interface {
	AdminID(ctx context.Context, sessionID string) (string, error)
}

// RequireAdmin rejects any request that does not carry a valid admin session
// cookie, before handler logic runs. The admin ID is trusted once established;
// it is not re-checked against the admin store per request.
func RequireAdmin(sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.MsgUnauthorized)
			return
		}

		adminID, err := sessions.AdminID(c.Request.Context(), sessionID)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.MsgUnauthorized)
			return
		}

		c.Set(ContextKeyAdminID, adminID)
		c.Next()
	}
}

// GetAdminID retrieves the authenticated admin ID from the Gin context.
func GetAdminID(c *gin.Context) string {
	val, exists := c.Get(ContextKeyAdminID)
	if !exists {
		return ""
	}
	id, _ := val.(string)
	return id
}
