package services

import (
	"context"
	"fmt"

	"github.com/sabidos/sabidos-api/internal/models"
	"github.com/sabidos/sabidos-api/internal/repository"
	"go.uber.org/zap"
)

// PomodoroService handles focus session business logic
type PomodoroService struct {
	*OwnedService[models.Pomodoro, *models.Pomodoro]
	pomodoros repository.PomodoroRepository
}

// NewPomodoroService creates a new PomodoroService
func NewPomodoroService(pomodoros repository.PomodoroRepository, owners OwnerResolver, log *zap.Logger) *PomodoroService {
	return &PomodoroService{
		OwnedService: NewOwnedService[models.Pomodoro, *models.Pomodoro]("pomodoro", pomodoros, owners, log),
		pomodoros:    pomodoros,
	}
}

// TotalDuration sums the duration of every session recorded by uid
func (s *PomodoroService) TotalDuration(ctx context.Context, uid string) (int64, error) {
	total, err := s.pomodoros.SumDurationByOwner(ctx, uid)
	if err != nil {
		return 0, fmt.Errorf("failed to sum pomodoro duration: %w", err)
	}
	return total, nil
}

// FlashcardService handles flashcard business logic
type FlashcardService = OwnedService[models.Flashcard, *models.Flashcard]

// NewFlashcardService creates a new FlashcardService
func NewFlashcardService(repo repository.OwnedRepository[models.Flashcard], owners OwnerResolver, log *zap.Logger) *FlashcardService {
	return NewOwnedService[models.Flashcard, *models.Flashcard]("flashcard", repo, owners, log)
}

// SummaryService handles study note business logic
type SummaryService = OwnedService[models.Summary, *models.Summary]

// NewSummaryService creates a new SummaryService
func NewSummaryService(repo repository.OwnedRepository[models.Summary], owners OwnerResolver, log *zap.Logger) *SummaryService {
	return NewOwnedService[models.Summary, *models.Summary]("summary", repo, owners, log)
}
