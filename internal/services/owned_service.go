package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sabidos/sabidos-api/internal/auth"
	"github.com/sabidos/sabidos-api/internal/models"
	"github.com/sabidos/sabidos-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrResourceNotFound       = errors.New("resource not found")
	ErrNotResourceOwner       = errors.New("only the author can modify this resource")
	ErrOwnerRequired          = errors.New("caller identity is required")
	ErrUserNotFound           = errors.New("user not found")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoFlashcards         = errors.New("AI did not generate any flashcards")
)

// OwnerResolver returns the stored owner for a caller, creating the user
// row when it does not exist yet.
type OwnerResolver interface {
	EnsureOwner(ctx context.Context, identity auth.Identity) (models.Owner, error)
}

// ListInput represents filters for listing resources
type ListInput struct {
	AuthorUID string
	Limit     int
	Offset    int
}

// OwnedService implements ownership-scoped CRUD for one resource type
type OwnedService[T any, P models.Resource[T]] struct {
	kind   string
	repo   repository.OwnedRepository[T]
	owners OwnerResolver
	log    *zap.Logger
	now    func() time.Time
}

// NewOwnedService creates a new OwnedService. kind names the resource in logs.
func NewOwnedService[T any, P models.Resource[T]](kind string, repo repository.OwnedRepository[T], owners OwnerResolver, log *zap.Logger) *OwnedService[T, P] {
	if log == nil {
		log = zap.NewNop()
	}
	return &OwnedService[T, P]{
		kind:   kind,
		repo:   repo,
		owners: owners,
		log:    log.With(zap.String("resource", kind)),
		now:    time.Now,
	}
}

// List returns resources, optionally restricted to one author
func (s *OwnedService[T, P]) List(ctx context.Context, input ListInput) ([]T, error) {
	resources, err := s.repo.List(ctx, repository.OwnedFilter{
		AuthorUID: input.AuthorUID,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.kind, err)
	}
	return resources, nil
}

// Get returns a single resource with its author
func (s *OwnedService[T, P]) Get(ctx context.Context, id uint64) (*T, error) {
	resource, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to find %s: %w", s.kind, err)
	}
	return resource, nil
}

// CountByOwner counts the resources authored by uid
func (s *OwnedService[T, P]) CountByOwner(ctx context.Context, uid string) (int64, error) {
	count, err := s.repo.CountByOwner(ctx, uid)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.kind, err)
	}
	return count, nil
}

// BelongsTo reports whether the resource exists and is authored by uid
func (s *OwnedService[T, P]) BelongsTo(ctx context.Context, id uint64, uid string) (bool, error) {
	if uid == "" {
		return false, nil
	}
	ok, err := s.repo.ExistsForOwner(ctx, id, uid)
	if err != nil {
		return false, fmt.Errorf("failed to check %s owner: %w", s.kind, err)
	}
	return ok, nil
}

// Create stamps the caller as author and persists the resource. Any
// author fields already set on resource are overwritten.
func (s *OwnedService[T, P]) Create(ctx context.Context, resource *T, identity auth.Identity) (*T, error) {
	if identity.UID == "" {
		return nil, ErrOwnerRequired
	}

	owner, err := s.owners.EnsureOwner(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s owner: %w", s.kind, err)
	}

	p := P(resource)
	p.AssignOwner(owner)
	p.MarkCreated(s.now().UTC())

	if err := s.repo.Create(ctx, resource); err != nil {
		s.log.Error("create failed", zap.String("author_uid", owner.UID), zap.Error(err))
		return nil, fmt.Errorf("failed to create %s: %w", s.kind, err)
	}

	s.log.Info("created", zap.Uint64("id", p.GetID()), zap.String("author_uid", owner.UID))

	return s.Get(ctx, p.GetID())
}

// Update applies changes to a resource owned by uid
func (s *OwnedService[T, P]) Update(ctx context.Context, id uint64, uid string, apply func(*T)) (*T, error) {
	resource, err := s.loadOwned(ctx, id, uid)
	if err != nil {
		return nil, err
	}

	apply(resource)
	P(resource).MarkUpdated(s.now().UTC())

	if err := s.repo.Update(ctx, resource); err != nil {
		s.log.Error("update failed", zap.Uint64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update %s: %w", s.kind, err)
	}

	s.log.Info("updated", zap.Uint64("id", id), zap.String("author_uid", uid))

	return s.Get(ctx, id)
}

// Delete removes a resource owned by uid
func (s *OwnedService[T, P]) Delete(ctx context.Context, id uint64, uid string) error {
	if _, err := s.loadOwned(ctx, id, uid); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("delete failed", zap.Uint64("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete %s: %w", s.kind, err)
	}

	s.log.Info("deleted", zap.Uint64("id", id), zap.String("author_uid", uid))

	return nil
}

// loadOwned fetches a resource and verifies uid is its author
func (s *OwnedService[T, P]) loadOwned(ctx context.Context, id uint64, uid string) (*T, error) {
	resource, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if author := P(resource).GetAuthorUID(); uid == "" || author != uid {
		s.log.Warn("ownership check failed",
			zap.Uint64("id", id),
			zap.String("author_uid", author),
			zap.String("caller_uid", uid),
		)
		return nil, ErrNotResourceOwner
	}

	return resource, nil
}
