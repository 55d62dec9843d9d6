package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reelhub/media-api/internal/core/domain"
	"github.com/reelhub/media-api/internal/core/ports"
)

// searchTypePeople is the public alias the upstream API calls "person".
const searchTypePeople = "people"

// MediaService proxies the upstream catalog and joins in local favorites
// and reviews.
type MediaService struct {
	catalog   ports.MediaCatalog
	favorites ports.FavoriteRepository
	reviews   ports.ReviewRepository
	log       zerolog.Logger
}

func NewMediaService(
	catalog ports.MediaCatalog,
	favorites ports.FavoriteRepository,
	reviews ports.ReviewRepository,
	log zerolog.Logger,
) *MediaService {
	return &MediaService{catalog: catalog, favorites: favorites, reviews: reviews, log: log}
}

func (s *MediaService) List(ctx context.Context, mediaType, category, page string) (domain.Media, error) {
	return s.catalog.MediaList(ctx, mediaType, category, page)
}

func (s *MediaService) Genres(ctx context.Context, mediaType string) (domain.Media, error) {
	return s.catalog.MediaGenres(ctx, mediaType)
}

func (s *MediaService) Search(ctx context.Context, mediaType, query, page string) (domain.Media, error) {
	if mediaType == searchTypePeople {
		mediaType = "person"
	}
	return s.catalog.MediaSearch(ctx, mediaType, query, page)
}

// Detail fetches the media document and its satellites one after another,
// then attaches reviews and, for a known viewer, the favorite flag.
func (s *MediaService) Detail(ctx context.Context, mediaType, mediaID string, viewer *domain.User) (*ports.MediaDetail, error) {
	media, err := s.catalog.MediaDetail(ctx, mediaType, mediaID)
	if err != nil {
		return nil, err
	}

	detail := &ports.MediaDetail{Media: media}

	if detail.Credits, err = s.catalog.MediaCredits(ctx, mediaType, mediaID); err != nil {
		return nil, err
	}
	if detail.Videos, err = s.catalog.MediaVideos(ctx, mediaType, mediaID); err != nil {
		return nil, err
	}
	recommend, err := s.catalog.MediaRecommend(ctx, mediaType, mediaID)
	if err != nil {
		return nil, err
	}
	detail.Recommend = recommend["results"]
	if detail.Images, err = s.catalog.MediaImages(ctx, mediaType, mediaID); err != nil {
		return nil, err
	}

	if viewer != nil {
		detail.ViewerResolved = true
		_, err := s.favorites.FindByUserAndMedia(ctx, viewer.ID, mediaID)
		switch {
		case err == nil:
			detail.IsFavorite = true
		case errors.Is(err, domain.ErrNotFound):
			s.log.Debug().Str("user_id", viewer.ID).Str("media_id", mediaID).Msg("media not in favorites")
		default:
			return nil, fmt.Errorf("favorite lookup: %w", err)
		}
	}

	if detail.Reviews, err = s.reviews.ListByMedia(ctx, mediaID); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return detail, nil
}

func (s *MediaService) Person(ctx context.Context, personID string) (domain.Media, error) {
	return s.catalog.PersonDetail(ctx, personID)
}

func (s *MediaService) PersonMedias(ctx context.Context, personID string) (domain.Media, error) {
	return s.catalog.PersonMedias(ctx, personID)
}
