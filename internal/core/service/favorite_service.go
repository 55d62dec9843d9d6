package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelhub/media-api/internal/core/domain"
	"github.com/reelhub/media-api/internal/core/ports"
)

type FavoriteService struct {
	repo ports.FavoriteRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewFavoriteService(repo ports.FavoriteRepository, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{repo: repo, log: log, now: time.Now}
}

// Add is idempotent per (user, mediaId): an existing favorite is returned
// as-is with created=false.
func (s *FavoriteService) Add(ctx context.Context, userID string, in ports.AddFavoriteInput) (*domain.Favorite, bool, error) {
	existing, err := s.repo.FindByUserAndMedia(ctx, userID, in.MediaID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.Favorite{
		UserID:      userID,
		MediaType:   in.MediaType,
		MediaID:     in.MediaID,
		MediaTitle:  in.MediaTitle,
		MediaPoster: in.MediaPoster,
		MediaRate:   in.MediaRate,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, false, err
	}

	s.log.Info().Str("user_id", userID).Str("media_id", in.MediaID).Msg("favorite added")
	return created, true, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, favoriteID string) error {
	if err := s.repo.DeleteForUser(ctx, userID, favoriteID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Str("favorite_id", favoriteID).Msg("favorite removed")
	return nil
}

func (s *FavoriteService) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}
