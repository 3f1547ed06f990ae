package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabidos/sabidos-api/internal/models"
	"github.com/sabidos/sabidos-api/internal/services"
	"go.uber.org/zap"
)

// Creator is a create request that builds a new model
type Creator[T any] interface {
	ToModel() *T
}

// Updater is an update request that patches an existing model
type Updater[T any] interface {
	ApplyTo(*T)
}

// OwnedHandler serves the CRUD routes shared by every owned resource.
// C and U are the create and update request bodies, R the response shape.
type OwnedHandler[T any, P models.Resource[T], C Creator[T], U Updater[T], R any] struct {
	service    *services.OwnedService[T, P]
	toResponse func(T) R
	basePath   string
	log        *zap.Logger
}

func newOwnedHandler[T any, P models.Resource[T], C Creator[T], U Updater[T], R any](
	service *services.OwnedService[T, P],
	toResponse func(T) R,
	basePath string,
	log *zap.Logger,
) *OwnedHandler[T, P, C, U, R] {
	if log == nil {
		log = zap.NewNop()
	}
	return &OwnedHandler[T, P, C, U, R]{
		service:    service,
		toResponse: toResponse,
		basePath:   basePath,
		log:        log,
	}
}

// Register mounts the CRUD routes on group
func (h *OwnedHandler[T, P, C, U, R]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/count", h.Count)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// List returns the caller's resources, or everyone's with all=true
func (h *OwnedHandler[T, P, C, U, R]) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	resources, err := h.service.List(c.Request.Context(), listInput(c, identity))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponses(resources))
}

// Get returns a single resource
func (h *OwnedHandler[T, P, C, U, R]) Get(c *gin.Context) {
	if _, ok := requireIdentity(c); !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	resource, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(*resource))
}

// Count returns how many resources the caller has authored
func (h *OwnedHandler[T, P, C, U, R]) Count(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	count, err := h.service.CountByOwner(c.Request.Context(), identity.UID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

// Create stores a new resource authored by the caller
func (h *OwnedHandler[T, P, C, U, R]) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req C
	if !bindJSON(c, &req) {
		return
	}

	resource, err := h.service.Create(c.Request.Context(), req.ToModel(), identity)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", h.basePath, P(resource).GetID()))
	c.JSON(http.StatusCreated, h.toResponse(*resource))
}

// Update changes a resource owned by the caller
func (h *OwnedHandler[T, P, C, U, R]) Update(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req U
	if !bindJSON(c, &req) {
		return
	}

	resource, err := h.service.Update(c.Request.Context(), id, identity.UID, req.ApplyTo)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(*resource))
}

// Delete removes a resource owned by the caller
func (h *OwnedHandler[T, P, C, U, R]) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, identity.UID); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OwnedHandler[T, P, C, U, R]) toResponses(resources []T) []R {
	items := make([]R, len(resources))
	for i, resource := range resources {
		items[i] = h.toResponse(resource)
	}
	return items
}
