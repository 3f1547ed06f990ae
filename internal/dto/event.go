package dto

import (
	"time"

	"github.com/sabidos/sabidos-api/internal/constants"
	"github.com/sabidos/sabidos-api/internal/models"
)

// CreateEventRequest is the body accepted when creating a calendar event
type CreateEventRequest struct {
	TitleEvent       string    `json:"titleEvent" binding:"required,max=200"`
	DescriptionEvent *string   `json:"descriptionEvent" binding:"omitnil,max=500"`
	DataEvento       time.Time `json:"dataEvento" binding:"required"`
	LocalEvento      *string   `json:"localEvento" binding:"omitnil,max=100"`
}

// UpdateEventRequest carries the event fields to change; nil fields are kept
type UpdateEventRequest struct {
	TitleEvent       *string    `json:"titleEvent" binding:"omitnil,min=1,max=200"`
	DescriptionEvent *string    `json:"descriptionEvent" binding:"omitnil,max=500"`
	DataEvento       *time.Time `json:"dataEvento"`
	LocalEvento      *string    `json:"localEvento" binding:"omitnil,max=100"`
	IsCompleted      *bool      `json:"isCompleted"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID               uint64     `json:"id"`
	TitleEvent       string     `json:"titleEvent"`
	DescriptionEvent *string    `json:"descriptionEvent"`
	DataEvento       time.Time  `json:"dataEvento"`
	LocalEvento      *string    `json:"localEvento"`
	IsCompleted      bool       `json:"isCompleted"`
	AuthorUID        string     `json:"authorUid"`
	AuthorName       string     `json:"authorName"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt"`
}

// ToModel converts the request to a new, not yet completed, Event
func (r CreateEventRequest) ToModel() *models.Event {
	return &models.Event{
		Title:       r.TitleEvent,
		Description: r.DescriptionEvent,
		Date:        r.DataEvento.UTC(),
		Location:    r.LocalEvento,
		IsCompleted: false,
	}
}

// ApplyTo copies the non-nil fields onto event
func (r UpdateEventRequest) ApplyTo(event *models.Event) {
	if r.TitleEvent != nil {
		event.Title = *r.TitleEvent
	}
	if r.DescriptionEvent != nil {
		event.Description = r.DescriptionEvent
	}
	if r.DataEvento != nil {
		event.Date = r.DataEvento.UTC()
	}
	if r.LocalEvento != nil {
		event.Location = r.LocalEvento
	}
	if r.IsCompleted != nil {
		event.IsCompleted = *r.IsCompleted
	}
}

// ToEventResponse converts an Event model to EventResponse
func ToEventResponse(event models.Event) EventResponse {
	authorName := constants.DefaultAuthorName
	if event.User != nil && event.User.Name != nil && *event.User.Name != "" {
		authorName = *event.User.Name
	}

	return EventResponse{
		ID:               event.ID,
		TitleEvent:       event.Title,
		DescriptionEvent: event.Description,
		DataEvento:       event.Date,
		LocalEvento:      event.Location,
		IsCompleted:      event.IsCompleted,
		AuthorUID:        event.AuthorUID,
		AuthorName:       authorName,
		CreatedAt:        event.CreatedAt,
		UpdatedAt:        event.UpdatedAt,
	}
}

// ToEventResponses converts a slice of events
func ToEventResponses(events []models.Event) []EventResponse {
	items := make([]EventResponse, len(events))
	for i, event := range events {
		items[i] = ToEventResponse(event)
	}
	return items
}
