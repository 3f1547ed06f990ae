package repository

import (
	"context"

	"github.com/sabidos/sabidos-api/internal/models"
	"gorm.io/gorm"
)

// GormPomodoroRepository is a GORM implementation of PomodoroRepository
type GormPomodoroRepository struct {
	*GormOwnedRepository[models.Pomodoro]
	db *gorm.DB
}

// NewPomodoroRepository creates a new PomodoroRepository
func NewPomodoroRepository(db *gorm.DB) PomodoroRepository {
	return &GormPomodoroRepository{
		GormOwnedRepository: NewOwnedRepository[models.Pomodoro](db, "created_at"),
		db:                  db,
	}
}

// SumDurationByOwner totals session durations by author
func (r *GormPomodoroRepository) SumDurationByOwner(ctx context.Context, authorUID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Pomodoro{}).
		Select("COALESCE(SUM(duration), 0)").
		Where("author_uid = ?", authorUID).
		Scan(&total).Error
	return total, err
}

// NewFlashcardRepository creates the flashcard store
func NewFlashcardRepository(db *gorm.DB) OwnedRepository[models.Flashcard] {
	return NewOwnedRepository[models.Flashcard](db, "created_at")
}

// NewSummaryRepository creates the summary store
func NewSummaryRepository(db *gorm.DB) OwnedRepository[models.Summary] {
	return NewOwnedRepository[models.Summary](db, "created_at")
}
