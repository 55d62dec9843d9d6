package ports

import (
	"context"

	"github.com/reelhub/media-api/internal/core/domain"
)

// MediaCatalog is the upstream media database. Every call maps to one
// upstream endpoint and returns its JSON object untouched.
type MediaCatalog interface {
	MediaList(ctx context.Context, mediaType, category, page string) (domain.Media, error)
	MediaGenres(ctx context.Context, mediaType string) (domain.Media, error)
	MediaSearch(ctx context.Context, mediaType, query, page string) (domain.Media, error)
	MediaDetail(ctx context.Context, mediaType, mediaID string) (domain.Media, error)
	MediaCredits(ctx context.Context, mediaType, mediaID string) (domain.Media, error)
	MediaVideos(ctx context.Context, mediaType, mediaID string) (domain.Media, error)
	MediaImages(ctx context.Context, mediaType, mediaID string) (domain.Media, error)
	MediaRecommend(ctx context.Context, mediaType, mediaID string) (domain.Media, error)
	PersonDetail(ctx context.Context, personID string) (domain.Media, error)
	PersonMedias(ctx context.Context, personID string) (domain.Media, error)
}
