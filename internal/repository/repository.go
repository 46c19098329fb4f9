package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymzen/gymlog-app/internal/domain"
)

var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors from other failures.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository persists authentication accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// WorkoutRepository persists finalized workout sessions, partitioned by
// user id.
type WorkoutRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	// GetByUserID returns the user's history sorted by date descending.
	GetByUserID(ctx context.Context, userID string) ([]domain.WorkoutSession, error)
	// Update overwrites a persisted session's exercises and dates. History
	// edits are full overwrites, not in-place patches.
	Update(ctx context.Context, id primitive.ObjectID, userID string, exercises []domain.SessionExercise, date, loggedAt time.Time) error
}

// ProfileRepository persists one biometric profile per user.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
}

// TemplateRepository persists custom training templates. The built-in
// default template never passes through here.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) (string, error)
	Update(ctx context.Context, template *domain.Template) error
	GetByUserID(ctx context.Context, userID string) ([]domain.Template, error)
	Delete(ctx context.Context, id, userID string) error
}

// CatalogRepository persists the shared exercise catalog. GetAll returns a
// nil slice when the catalog has never been seeded.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]domain.CatalogEntry, error)
	Seed(ctx context.Context, entries []domain.CatalogEntry) error
}
