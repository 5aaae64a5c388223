package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/everestwc/everest-backend/internal/middleware"
	"github.com/everestwc/everest-backend/internal/model"
	"github.com/everestwc/everest-backend/internal/repository"
	"github.com/everestwc/everest-backend/internal/response"
	"github.com/everestwc/everest-backend/internal/validator"
)

// AdminStore looks up admin accounts for login.
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
}

// SessionManager is the session lifecycle surface the auth endpoints need.
// Implemented by service.AuthService.
type SessionManager interface {
	CheckPassword(hash, password string) error
	CreateSession(ctx context.Context, adminID string) (string, error)
	AdminID(ctx context.Context, sessionID string) (string, error)
	DestroySession(ctx context.Context, sessionID string) error
}

// CookieSettings control how the session cookie is written. In production
// the frontend is served cross-site, so the cookie must be Secure with
// SameSite=None; in development Lax over plain HTTP.
type CookieSettings struct {
	MaxAge   int
	Secure   bool
	SameSite http.SameSite
}

// AuthHandler handles the admin login/logout/check endpoints.
type AuthHandler struct {
	admins   AdminStore
	sessions SessionManager
	cookie   CookieSettings
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(admins AdminStore, sessions SessionManager, cookie CookieSettings, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		admins:   admins,
		sessions: sessions,
		cookie:   cookie,
		log:      log.With().Str("component", "auth_handler").Logger(),
	}
}

// Login godoc
// POST /auth/login (public)
// Unknown username and wrong password produce the identical response so the
// endpoint cannot be used to enumerate usernames.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.MsgLoginFailed, fields)
		return
	}

	admin, err := h.admins.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusUnauthorized, response.MsgInvalidCredentials)
			return
		}
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("admin lookup failed")
		response.Fail(c, http.StatusInternalServerError, response.MsgLoginFailed)
		return
	}

	if err := h.sessions.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.MsgInvalidCredentials)
		return
	}

	sessionID, err := h.sessions.CreateSession(c.Request.Context(), admin.ID)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("failed to create session")
		response.Fail(c, http.StatusInternalServerError, response.MsgLoginFailed)
		return
	}

	h.setSessionCookie(c, sessionID, h.cookie.MaxAge)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout godoc
// POST /auth/logout (public)
// Destroys the session unconditionally. A missing cookie still succeeds;
// only a session-store failure is an error, and it is the server's fault.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && sessionID != "" {
		if err := h.sessions.DestroySession(c.Request.Context(), sessionID); err != nil {
			h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("failed to destroy session")
			response.Fail(c, http.StatusInternalServerError, response.MsgLogoutFailed)
			return
		}
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Check godoc
// GET /auth/check (public)
// Pure read of session presence; never fails. Store errors count as
// unauthenticated rather than surfacing.
func (h *AuthHandler) Check(c *gin.Context) {
	authenticated := false
	if sessionID, err := c.Cookie(middleware.SessionCookieName); err == nil && sessionID != "" {
		if _, err := h.sessions.AdminID(c.Request.Context(), sessionID); err == nil {
			authenticated = true
		}
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", h.cookie.Secure, true)
}
