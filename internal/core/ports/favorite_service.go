package ports

import (
	"context"

	"github.com/reelhub/media-api/internal/core/domain"
)

type AddFavoriteInput struct {
	MediaType   string
	MediaID     string
	MediaTitle  string
	MediaPoster string
	MediaRate   float64
}

type FavoriteService interface {
	// Add returns the stored favorite and whether it was newly created.
	Add(ctx context.Context, userID string, input AddFavoriteInput) (*domain.Favorite, bool, error)
	Remove(ctx context.Context, userID, favoriteID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
}
