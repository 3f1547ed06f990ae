package dto

import (
	"time"

	"github.com/sabidos/sabidos-api/internal/models"
)

// CreatePomodoroRequest records a finished focus session. Counters are
// pointers so that an explicit zero passes the required check.
type CreatePomodoroRequest struct {
	Ciclos        *int `json:"ciclos" binding:"required,min=0"`
	Duration      *int `json:"duration" binding:"required,min=0"`
	TempoTrabalho *int `json:"tempoTrabalho" binding:"required,min=0"`
	TempoDescanso *int `json:"tempoDescanso" binding:"required,min=0"`
}

// UpdatePomodoroRequest carries the counters to change
type UpdatePomodoroRequest struct {
	Ciclos        *int `json:"ciclos" binding:"omitnil,min=0"`
	Duration      *int `json:"duration" binding:"omitnil,min=0"`
	TempoTrabalho *int `json:"tempoTrabalho" binding:"omitnil,min=0"`
	TempoDescanso *int `json:"tempoDescanso" binding:"omitnil,min=0"`
}

// PomodoroResponse represents a pomodoro session in API responses
type PomodoroResponse struct {
	ID            uint64    `json:"id"`
	Ciclos        int       `json:"ciclos"`
	Duration      int       `json:"duration"`
	TempoTrabalho int       `json:"tempoTrabalho"`
	TempoDescanso int       `json:"tempoDescanso"`
	CreatedAt     time.Time `json:"createdAt"`
	UserID        uint64    `json:"userid"`
	AuthorUID     string    `json:"authorUid"`
}

func (r CreatePomodoroRequest) ToModel() *models.Pomodoro {
	return &models.Pomodoro{
		Cycles:    deref(r.Ciclos),
		Duration:  deref(r.Duration),
		WorkTime:  deref(r.TempoTrabalho),
		BreakTime: deref(r.TempoDescanso),
	}
}

func (r UpdatePomodoroRequest) ApplyTo(session *models.Pomodoro) {
	if r.Ciclos != nil {
		session.Cycles = *r.Ciclos
	}
	if r.Duration != nil {
		session.Duration = *r.Duration
	}
	if r.TempoTrabalho != nil {
		session.WorkTime = *r.TempoTrabalho
	}
	if r.TempoDescanso != nil {
		session.BreakTime = *r.TempoDescanso
	}
}

func ToPomodoroResponse(session models.Pomodoro) PomodoroResponse {
	return PomodoroResponse{
		ID:            session.ID,
		Ciclos:        session.Cycles,
		Duration:      session.Duration,
		TempoTrabalho: session.WorkTime,
		TempoDescanso: session.BreakTime,
		CreatedAt:     session.CreatedAt,
		UserID:        session.UserID,
		AuthorUID:     session.AuthorUID,
	}
}

func ToPomodoroResponses(sessions []models.Pomodoro) []PomodoroResponse {
	items := make([]PomodoroResponse, len(sessions))
	for i, session := range sessions {
		items[i] = ToPomodoroResponse(session)
	}
	return items
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
