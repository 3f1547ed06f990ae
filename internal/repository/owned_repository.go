package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOwnedRepository is a GORM implementation of OwnedRepository
type GormOwnedRepository[T any] struct {
	db      *gorm.DB
	orderBy string
}

// NewOwnedRepository creates a repository for T listing by orderBy descending
func NewOwnedRepository[T any](db *gorm.DB, orderBy string) *GormOwnedRepository[T] {
	return &GormOwnedRepository[T]{db: db, orderBy: orderBy}
}

// List retrieves resources with optional author filter and pagination
func (r *GormOwnedRepository[T]) List(ctx context.Context, filter OwnedFilter) ([]T, error) {
	resources := []T{}

	query := r.db.WithContext(ctx).Preload("User")
	if filter.AuthorUID != "" {
		query = query.Where("author_uid = ?", filter.AuthorUID)
	}
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: r.orderBy}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&resources).Error
	if err != nil {
		return nil, err
	}

	return resources, nil
}

// FindByID finds a resource by ID
func (r *GormOwnedRepository[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var resource T
	if err := r.db.WithContext(ctx).Preload("User").First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// CountByOwner counts resources by author
func (r *GormOwnedRepository[T]) CountByOwner(ctx context.Context, authorUID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("author_uid = ?", authorUID).
		Count(&count).Error
	return count, err
}

// ExistsForOwner reports whether the resource belongs to authorUID
func (r *GormOwnedRepository[T]) ExistsForOwner(ctx context.Context, id uint64, authorUID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ? AND author_uid = ?", id, authorUID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a resource without touching its associations
func (r *GormOwnedRepository[T]) Create(ctx context.Context, resource *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(resource).Error
}

// Update saves a resource without touching its associations
func (r *GormOwnedRepository[T]) Update(ctx context.Context, resource *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(resource).Error
}

// Delete removes a resource by ID
func (r *GormOwnedRepository[T]) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(new(T), id).Error
}
