package ports

import (
	"context"

	"github.com/reelhub/media-api/internal/core/domain"
)

// UserRepository is the credential store. Implementations return
// domain.ErrUserNotFound when no record matches and domain.ErrUsernameTaken
// when the storage-level unique index rejects an insert.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}

// UsernameReserver takes a short-lived claim on a username while a signup
// is in flight.
type UsernameReserver interface {
	Reserve(ctx context.Context, username string) (bool, error)
	Release(ctx context.Context, username string) error
}
