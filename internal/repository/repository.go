package repository

import (
	"context"
	"time"

	"github.com/sabidos/sabidos-api/internal/models"
)

// OwnedRepository defines data access shared by every user-authored resource
type OwnedRepository[T any] interface {
	// List retrieves resources matching the filter, newest first
	List(ctx context.Context, filter OwnedFilter) ([]T, error)

	// FindByID finds a resource by ID with its author preloaded
	FindByID(ctx context.Context, id uint64) (*T, error)

	// CountByOwner counts the resources authored by authorUID
	CountByOwner(ctx context.Context, authorUID string) (int64, error)

	// ExistsForOwner reports whether id exists and is authored by authorUID
	ExistsForOwner(ctx context.Context, id uint64, authorUID string) (bool, error)

	// Create inserts a resource
	Create(ctx context.Context, resource *T) error

	// Update saves every column of an existing resource
	Update(ctx context.Context, resource *T) error

	// Delete removes a resource
	Delete(ctx context.Context, id uint64) error
}

// OwnedFilter holds filtering options for listing resources
type OwnedFilter struct {
	AuthorUID string
	Limit     int
	Offset    int
}

// EventRepository adds date queries to the event store
type EventRepository interface {
	OwnedRepository[models.Event]

	// ListBetween lists events dated within [from, to], earliest first
	ListBetween(ctx context.Context, from, to time.Time, authorUID string) ([]models.Event, error)
}

// PomodoroRepository adds aggregates to the pomodoro store
type PomodoroRepository interface {
	OwnedRepository[models.Pomodoro]

	// SumDurationByOwner totals the duration of every session by authorUID
	SumDurationByOwner(ctx context.Context, authorUID string) (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByFirebaseUID finds a user by the identity provider UID
	FindByFirebaseUID(ctx context.Context, uid string) (*models.User, error)

	// ExistsByFirebaseUID reports whether a user row exists for uid
	ExistsByFirebaseUID(ctx context.Context, uid string) (bool, error)

	// Upsert loads the user for uid inside a transaction, lets mutate
	// change it and saves it, creating the row when absent.
	Upsert(ctx context.Context, uid string, mutate func(user *models.User, created bool)) (*models.User, error)
}
