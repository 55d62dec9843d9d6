package ports

import (
	"context"

	"github.com/reelhub/media-api/internal/core/domain"
)

// FavoriteRepository persists favorites. Lookups that match nothing return
// domain.ErrNotFound.
type FavoriteRepository interface {
	FindByUserAndMedia(ctx context.Context, userID, mediaID string) (*domain.Favorite, error)
	Create(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error)
	DeleteForUser(ctx context.Context, userID, favoriteID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
}
