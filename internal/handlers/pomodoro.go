package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabidos/sabidos-api/internal/dto"
	"github.com/sabidos/sabidos-api/internal/models"
	"github.com/sabidos/sabidos-api/internal/services"
	"go.uber.org/zap"
)

type PomodoroHandler struct {
	*OwnedHandler[models.Pomodoro, *models.Pomodoro, dto.CreatePomodoroRequest, dto.UpdatePomodoroRequest, dto.PomodoroResponse]
	pomodoros *services.PomodoroService
}

func NewPomodoroHandler(pomodoros *services.PomodoroService, log *zap.Logger) *PomodoroHandler {
	return &PomodoroHandler{
		OwnedHandler: newOwnedHandler[models.Pomodoro, *models.Pomodoro, dto.CreatePomodoroRequest, dto.UpdatePomodoroRequest](
			pomodoros.OwnedService, dto.ToPomodoroResponse, "/api/pomodoro", log),
		pomodoros: pomodoros,
	}
}

func (h *PomodoroHandler) Register(group *gin.RouterGroup) {
	group.GET("/count-time", h.CountTime)
	h.OwnedHandler.Register(group)
}

// CountTime returns the total focus duration of the caller, or of the
// user named by firebaseUid
func (h *PomodoroHandler) CountTime(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	uid := c.DefaultQuery("firebaseUid", identity.UID)

	total, err := h.pomodoros.TotalDuration(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, total)
}
