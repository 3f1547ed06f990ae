package repository

import (
	"context"
	"time"

	"github.com/sabidos/sabidos-api/internal/models"
	"gorm.io/gorm"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	*GormOwnedRepository[models.Event]
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{
		GormOwnedRepository: NewOwnedRepository[models.Event](db, "data_evento"),
		db:                  db,
	}
}

// ListBetween lists events within a date range
func (r *GormEventRepository) ListBetween(ctx context.Context, from, to time.Time, authorUID string) ([]models.Event, error) {
	events := []models.Event{}

	query := r.db.WithContext(ctx).
		Preload("User").
		Where("data_evento >= ? AND data_evento <= ?", from, to)
	if authorUID != "" {
		query = query.Where("author_uid = ?", authorUID)
	}

	if err := query.Order("data_evento ASC").Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}
