package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sabidos/sabidos-api/internal/constants"
	"github.com/sabidos/sabidos-api/internal/models"
	"github.com/sabidos/sabidos-api/internal/repository"
	"go.uber.org/zap"
)

// EventService handles calendar event business logic
type EventService struct {
	*OwnedService[models.Event, *models.Event]
	events repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(events repository.EventRepository, owners OwnerResolver, log *zap.Logger) *EventService {
	return &EventService{
		OwnedService: NewOwnedService[models.Event, *models.Event]("event", events, owners, log),
		events:       events,
	}
}

// Range returns events dated between start and end, earliest first.
// An empty authorUID returns everyone's events.
func (s *EventService) Range(ctx context.Context, start, end time.Time, authorUID string) ([]models.Event, error) {
	if end.Before(start) {
		start, end = end, start
	}

	events, err := s.events.ListBetween(ctx, start.UTC(), end.UTC(), authorUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events in range: %w", err)
	}
	return events, nil
}

// Upcoming returns events from now until days ahead
func (s *EventService) Upcoming(ctx context.Context, days int, authorUID string) ([]models.Event, error) {
	if days <= 0 {
		days = constants.DefaultUpcomingDays
	}
	if days > constants.MaxUpcomingDays {
		days = constants.MaxUpcomingDays
	}

	now := s.now()
	return s.Range(ctx, now, now.AddDate(0, 0, days), authorUID)
}
