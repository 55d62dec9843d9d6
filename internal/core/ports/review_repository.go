package ports

import (
	"context"

	"github.com/reelhub/media-api/internal/core/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	DeleteForUser(ctx context.Context, userID, reviewID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Review, error)
	// ListByMedia returns reviews newest first with Author populated.
	ListByMedia(ctx context.Context, mediaID string) ([]*domain.Review, error)
}
