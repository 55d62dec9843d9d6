package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelhub/media-api/internal/core/domain"
	"github.com/reelhub/media-api/internal/core/ports"
)

type ReviewService struct {
	repo ports.ReviewRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewReviewService(repo ports.ReviewRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, log: log, now: time.Now}
}

// Create stores a review written by author and returns it with Author set.
func (s *ReviewService) Create(ctx context.Context, author *domain.User, in ports.CreateReviewInput) (*domain.Review, error) {
	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.Review{
		UserID:      author.ID,
		Content:     in.Content,
		MediaType:   in.MediaType,
		MediaID:     in.MediaID,
		MediaTitle:  in.MediaTitle,
		MediaPoster: in.MediaPoster,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	created.Author = author
	s.log.Info().Str("user_id", author.ID).Str("media_id", in.MediaID).Msg("review created")
	return created, nil
}

func (s *ReviewService) Remove(ctx context.Context, userID, reviewID string) error {
	return s.repo.DeleteForUser(ctx, userID, reviewID)
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	return s.repo.ListByUser(ctx, userID)
}
