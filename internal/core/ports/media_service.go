package ports

import (
	"context"

	"github.com/reelhub/media-api/internal/core/domain"
)

// MediaDetail bundles an upstream media document with the local data
// attached to it.
type MediaDetail struct {
	Media          domain.Media
	Credits        domain.Media
	Videos         domain.Media
	Images         domain.Media
	Recommend      any
	Reviews        []*domain.Review
	IsFavorite     bool
	ViewerResolved bool
}

type MediaService interface {
	List(ctx context.Context, mediaType, category, page string) (domain.Media, error)
	Genres(ctx context.Context, mediaType string) (domain.Media, error)
	Search(ctx context.Context, mediaType, query, page string) (domain.Media, error)
	// Detail loads a media item; viewer may be nil for anonymous requests.
	Detail(ctx context.Context, mediaType, mediaID string, viewer *domain.User) (*MediaDetail, error)
	Person(ctx context.Context, personID string) (domain.Media, error)
	PersonMedias(ctx context.Context, personID string) (domain.Media, error)
}
