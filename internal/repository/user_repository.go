package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sabidos/sabidos-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrLoadUser is returned when reading the user fails inside the upsert transaction.
	ErrLoadUser = errors.New("user repository: load user failed")
	// ErrSaveUser is returned when persisting the user fails inside the upsert transaction.
	ErrSaveUser = errors.New("user repository: save user failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// FindByFirebaseUID finds a user by Firebase UID
func (r *GormUserRepository) FindByFirebaseUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("firebase_uid = ?", uid).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByFirebaseUID reports whether a user exists for uid
func (r *GormUserRepository) ExistsByFirebaseUID(ctx context.Context, uid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("firebase_uid = ?", uid).
		Count(&count).Error
	return count > 0, err
}

// Upsert creates or updates the user for uid atomically. A concurrent
// insert of the same uid surfaces as a duplicate key; the transaction is
// then replayed once against the row that won.
func (r *GormUserRepository) Upsert(ctx context.Context, uid string, mutate func(user *models.User, created bool)) (*models.User, error) {
	user, err := r.upsertOnce(ctx, uid, mutate)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		user, err = r.upsertOnce(ctx, uid, mutate)
	}
	return user, err
}

func (r *GormUserRepository) upsertOnce(ctx context.Context, uid string, mutate func(user *models.User, created bool)) (*models.User, error) {
	var user models.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created := false
		if err := tx.Where("firebase_uid = ?", uid).First(&user).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %w", ErrLoadUser, err)
			}
			user = models.User{FirebaseUID: uid}
			created = true
		}

		mutate(&user, created)

		var err error
		if created {
			err = tx.Create(&user).Error
		} else {
			err = tx.Save(&user).Error
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSaveUser, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}
