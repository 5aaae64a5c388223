package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/everestwc/everest-backend/internal/model"
	"github.com/everestwc/everest-backend/internal/repository"
	"github.com/everestwc/everest-backend/internal/response"
	"github.com/everestwc/everest-backend/internal/validator"
)

// AppointmentHandler serves the appointment intake resource. Unlike the
// content resources, create is public and the read side is admin-only, so it
// does not reuse ContentHandler.
type AppointmentHandler struct {
	store ContentStore[model.Appointment, model.AppointmentPatch]
	log   zerolog.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(store ContentStore[model.Appointment, model.AppointmentPatch], log zerolog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		store: store,
		log:   log.With().Str("component", "appointment_handler").Logger(),
	}
}

// List godoc
// GET /appointments (admin)
func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("list failed")
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}
	if items == nil {
		items = []model.Appointment{}
	}
	c.JSON(http.StatusOK, items)
}

// Create godoc
// POST /appointments (public)
// Accepts name or fullName, requires email and phone, and always persists
// status "pending" no matter what the caller submits.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Failed to create appointment", fields)
		return
	}

	appointment, ok := req.Appointment()
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Missing required fields (name/fullName, email, phone)")
		return
	}

	if err := h.store.Create(c.Request.Context(), &appointment); err != nil {
		h.log.Error().Err(err).Str("email", appointment.Email).Str("request_id", response.RequestID(c)).Msg("failed to create appointment")
		response.Fail(c, http.StatusBadRequest, "Failed to create appointment")
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// Update godoc
// PUT /appointments/:id (admin)
// Full field set including status; the name/fullName alias applies here too.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var patch model.AppointmentPatch
	if fields := validator.Bind(c, &patch); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Failed to update appointment", fields)
		return
	}

	updated, err := h.store.Update(c.Request.Context(), id, patch)
	if err != nil {
		if err == repository.ErrNotFound {
			response.Fail(c, http.StatusNotFound, "Appointment not found")
			return
		}
		h.log.Error().Err(err).Str("id", id).Str("request_id", response.RequestID(c)).Msg("update failed")
		response.Fail(c, http.StatusBadRequest, "Failed to update appointment")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// DELETE /appointments/:id (admin)
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Str("id", id).Str("request_id", response.RequestID(c)).Msg("delete failed")
		response.Fail(c, http.StatusBadRequest, "Failed to delete appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
