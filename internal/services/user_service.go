package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sabidos/sabidos-api/internal/auth"
	"github.com/sabidos/sabidos-api/internal/constants"
	"github.com/sabidos/sabidos-api/internal/models"
	"github.com/sabidos/sabidos-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfileInput carries the optional profile fields a caller may change
type ProfileInput struct {
	Name *string
}

// UserService handles user profile business logic
type UserService struct {
	repo repository.UserRepository
	log  *zap.Logger
	now  func() time.Time
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{
		repo: repo,
		log:  log.With(zap.String("resource", "user")),
		now:  time.Now,
	}
}

// CreateOrUpdate creates the user for uid or updates the existing one.
// New users without a name get a default; existing users only get the
// fields present in profile, plus email when a different non-empty one
// is supplied.
func (s *UserService) CreateOrUpdate(ctx context.Context, uid, email string, profile *ProfileInput) (*models.User, error) {
	if uid == "" {
		return nil, ErrOwnerRequired
	}

	var wasCreated bool
	user, err := s.repo.Upsert(ctx, uid, func(user *models.User, created bool) {
		now := s.now().UTC()
		wasCreated = created

		if created {
			name := constants.DefaultUserName
			if profile != nil && profile.Name != nil {
				name = *profile.Name
			}
			user.Name = &name
			if email != "" {
				user.Email = &email
			}
			user.CreatedAt = now
			return
		}

		if profile != nil && profile.Name != nil {
			name := *profile.Name
			user.Name = &name
		}
		if email != "" && (user.Email == nil || *user.Email != email) {
			user.Email = &email
		}
		user.UpdatedAt = &now
	})
	if err != nil {
		s.log.Error("upsert failed", zap.String("firebase_uid", uid), zap.Error(err))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if wasCreated {
		s.log.Info("created", zap.String("firebase_uid", uid), zap.Uint64("id", user.ID))
	}

	return user, nil
}

// Sync creates or refreshes a user from data pushed by the client after sign-in
func (s *UserService) Sync(ctx context.Context, uid, email string, name *string) (*models.User, error) {
	return s.CreateOrUpdate(ctx, uid, email, &ProfileInput{Name: name})
}

// GetByUID returns the user for uid
func (s *UserService) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.repo.FindByFirebaseUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// EnsureOwner returns the owner stamp for identity, creating the user row
// on first contact. The author name prefers the token name, then the
// stored profile name.
func (s *UserService) EnsureOwner(ctx context.Context, identity auth.Identity) (models.Owner, error) {
	user, err := s.GetByUID(ctx, identity.UID)
	if errors.Is(err, ErrUserNotFound) {
		var profile *ProfileInput
		if identity.Name != "" {
			name := identity.Name
			profile = &ProfileInput{Name: &name}
		}
		user, err = s.CreateOrUpdate(ctx, identity.UID, identity.Email, profile)
	}
	if err != nil {
		return models.Owner{}, err
	}

	name := identity.Name
	if name == "" && user.Name != nil {
		name = *user.Name
	}
	if name == "" {
		name = constants.DefaultAuthorName
	}

	return models.Owner{UID: user.FirebaseUID, Name: name, UserID: user.ID}, nil
}
