package ports

import (
	"context"

	"github.com/reelhub/media-api/internal/core/domain"
)

type CreateReviewInput struct {
	Content     string
	MediaType   string
	MediaID     string
	MediaTitle  string
	MediaPoster string
}

type ReviewService interface {
	Create(ctx context.Context, author *domain.User, input CreateReviewInput) (*domain.Review, error)
	Remove(ctx context.Context, userID, reviewID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Review, error)
}
