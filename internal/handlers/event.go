package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sabidos/sabidos-api/internal/constants"
	"github.com/sabidos/sabidos-api/internal/dto"
	apierrors "github.com/sabidos/sabidos-api/internal/errors"
	"github.com/sabidos/sabidos-api/internal/models"
	"github.com/sabidos/sabidos-api/internal/services"
	"go.uber.org/zap"
)

type EventHandler struct {
	*OwnedHandler[models.Event, *models.Event, dto.CreateEventRequest, dto.UpdateEventRequest, dto.EventResponse]
	events *services.EventService
}

func NewEventHandler(events *services.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		OwnedHandler: newOwnedHandler[models.Event, *models.Event, dto.CreateEventRequest, dto.UpdateEventRequest](
			events.OwnedService, dto.ToEventResponse, "/api/eventos", log),
		events: events,
	}
}

// Register mounts the event routes, including the calendar queries
func (h *EventHandler) Register(group *gin.RouterGroup) {
	group.GET("/range", h.Range)
	group.GET("/upcoming", h.Upcoming)
	group.GET("/:id/belongs-to", h.BelongsTo)
	h.OwnedHandler.Register(group)
}

// Range returns events between the start and end query times (RFC3339)
func (h *EventHandler) Range(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	start, err := queryTime(c, "start")
	if err != nil {
		apierrors.BadRequest(c, "start must be an RFC3339 timestamp")
		return
	}
	end, err := queryTime(c, "end")
	if err != nil {
		apierrors.BadRequest(c, "end must be an RFC3339 timestamp")
		return
	}

	events, err := h.events.Range(c.Request.Context(), start, end, authorScope(c, identity))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

// Upcoming returns events in the next days (default 7)
func (h *EventHandler) Upcoming(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	days := constants.DefaultUpcomingDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			apierrors.BadRequest(c, "days must be a positive integer")
			return
		}
		days = n
	}

	events, err := h.events.Upcoming(c.Request.Context(), days, authorScope(c, identity))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

// BelongsTo reports whether the event is authored by the caller
func (h *EventHandler) BelongsTo(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	owned, err := h.events.BelongsTo(c.Request.Context(), id, identity.UID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, owned)
}

// queryTime parses an RFC3339 query value. An unencoded "+03:00" offset
// arrives as " 03:00", so spaces are turned back into plus signs.
func queryTime(c *gin.Context, key string) (time.Time, error) {
	return time.Parse(time.RFC3339, strings.ReplaceAll(c.Query(key), " ", "+"))
}
