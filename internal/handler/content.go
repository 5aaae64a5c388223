package handler

import (
	"context"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/everestwc/everest-backend/internal/repository"
	"github.com/everestwc/everest-backend/internal/response"
	"github.com/everestwc/everest-backend/internal/validator"
)

// ContentStore is the persistence contract shared by every content resource.
// T is the entity type, P its partial-update patch type.
type ContentStore[T any, P any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ContentHandler serves the uniform public-read / admin-write CRUD contract.
// One instance per resource type; the route table attaches the session guard
// to the mutating routes. C is the create-request type validated by binding
// tags, and build maps a validated C to the entity with defaults applied.
type ContentHandler[T any, C any, P any] struct {
	store    ContentStore[T, P]
	build    func(C) T
	singular string
	plural   string
	log      zerolog.Logger
}

// NewContentHandler creates a ContentHandler for one resource type.
// singular and plural are the lowercase resource names used in messages
// ("course", "courses").
func NewContentHandler[T any, C any, P any](
	store ContentStore[T, P],
	build func(C) T,
	singular, plural string,
	log zerolog.Logger,
) *ContentHandler[T, C, P] {
	return &ContentHandler[T, C, P]{
		store:    store,
		build:    build,
		singular: singular,
		plural:   plural,
		log:      log.With().Str("resource", plural).Logger(),
	}
}

// List godoc
// GET /{resource} (public)
// Returns every instance whose visibility flag is set.
func (h *ContentHandler[T, C, P]) List(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("list failed")
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch "+h.plural)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// Create godoc
// POST /{resource} (admin)
func (h *ContentHandler[T, C, P]) Create(c *gin.Context) {
	var req C
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Failed to create "+h.singular, fields)
		return
	}

	entity := h.build(req)
	if err := h.store.Create(c.Request.Context(), &entity); err != nil {
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("create failed")
		response.Fail(c, http.StatusBadRequest, "Failed to create "+h.singular)
		return
	}
	c.JSON(http.StatusOK, entity)
}

// Update godoc
// PUT /{resource}/:id (admin)
// Applies a partial patch; unknown IDs are a 404, not a silent success.
func (h *ContentHandler[T, C, P]) Update(c *gin.Context) {
	id := c.Param("id")

	var patch P
	if fields := validator.Bind(c, &patch); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Failed to update "+h.singular, fields)
		return
	}

	updated, err := h.store.Update(c.Request.Context(), id, patch)
	if err != nil {
		if err == repository.ErrNotFound {
			response.Fail(c, http.StatusNotFound, titleFirst(h.singular)+" not found")
			return
		}
		h.log.Error().Err(err).Str("id", id).Str("request_id", response.RequestID(c)).Msg("update failed")
		response.Fail(c, http.StatusBadRequest, "Failed to update "+h.singular)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// DELETE /{resource}/:id (admin)
// Idempotent: deleting an ID that never existed still succeeds.
func (h *ContentHandler[T, C, P]) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Str("id", id).Str("request_id", response.RequestID(c)).Msg("delete failed")
		response.Fail(c, http.StatusBadRequest, "Failed to delete "+h.singular)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ContentRoutes is the route surface every content resource exposes.
// ContentHandler satisfies it for any type parameters, which lets the router
// treat the nine instantiations uniformly.
type ContentRoutes interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func titleFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
