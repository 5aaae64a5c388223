package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/everestwc/everest-backend/internal/model"
	"github.com/everestwc/everest-backend/internal/repository"
	"github.com/everestwc/everest-backend/internal/response"
	"github.com/everestwc/everest-backend/internal/validator"
)

// SettingsStore is the persistence contract for the settings singleton.
type SettingsStore interface {
	Get(ctx context.Context) (*model.Settings, error)
	Upsert(ctx context.Context, patch model.SettingsPatch) (*model.Settings, error)
}

// SettingsHandler serves the site-settings singleton.
type SettingsHandler struct {
	store SettingsStore
	log   zerolog.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store SettingsStore, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		store: store,
		log:   log.With().Str("component", "settings_handler").Logger(),
	}
}

// Get godoc
// GET /settings (public)
// Falls back to a hard-coded default when no row exists; the default is a
// response-time stand-in and is never written to the store.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.store.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, model.DefaultSettings())
			return
		}
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("fetch failed")
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Put godoc
// PUT /settings (admin)
// Creates the row on first write, merges into it afterwards.
func (h *SettingsHandler) Put(c *gin.Context) {
	var patch model.SettingsPatch
	if fields := validator.Bind(c, &patch); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Failed to update settings", fields)
		return
	}

	settings, err := h.store.Upsert(c.Request.Context(), patch)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("upsert failed")
		response.Fail(c, http.StatusBadRequest, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
