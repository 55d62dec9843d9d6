package handler

import (
	"github.com/reelhub/media-api/internal/core/domain"
	"github.com/reelhub/media-api/internal/core/ports"
)

// --- Request → Service input ---

func toSignupInput(req signupRequest) ports.SignupInput {
	return ports.SignupInput{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	}
}

func toAddFavoriteInput(req addFavoriteRequest) ports.AddFavoriteInput {
	return ports.AddFavoriteInput{
		MediaType:   req.MediaType,
		MediaID:     string(req.MediaID),
		MediaTitle:  req.MediaTitle,
		MediaPoster: req.MediaPoster,
		MediaRate:   float64(req.MediaRate),
	}
}

func toCreateReviewInput(req createReviewRequest) ports.CreateReviewInput {
	return ports.CreateReviewInput{
		Content:     req.Content,
		MediaType:   req.MediaType,
		MediaID:     string(req.MediaID),
		MediaTitle:  req.MediaTitle,
		MediaPoster: req.MediaPoster,
	}
}

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt.UTC(),
		UpdatedAt:   u.UpdatedAt.UTC(),
	}
}

func toAuthResponse(r *ports.AuthResult) authResponse {
	return authResponse{Token: r.Token, userResponse: toUserResponse(r.User)}
}

func toFavoriteResponse(f *domain.Favorite) favoriteResponse {
	return favoriteResponse{
		ID:          f.ID,
		User:        f.UserID,
		MediaType:   f.MediaType,
		MediaID:     f.MediaID,
		MediaTitle:  f.MediaTitle,
		MediaPoster: f.MediaPoster,
		MediaRate:   f.MediaRate,
		CreatedAt:   f.CreatedAt.UTC(),
		UpdatedAt:   f.UpdatedAt.UTC(),
	}
}

func toFavoriteResponses(favs []*domain.Favorite) []favoriteResponse {
	out := make([]favoriteResponse, 0, len(favs))
	for _, f := range favs {
		out = append(out, toFavoriteResponse(f))
	}
	return out
}

func toReviewResponse(r *domain.Review) reviewResponse {
	var user any = r.UserID
	if r.Author != nil {
		user = toUserResponse(r.Author)
	}
	return reviewResponse{
		ID:          r.ID,
		User:        user,
		Content:     r.Content,
		MediaType:   r.MediaType,
		MediaID:     r.MediaID,
		MediaTitle:  r.MediaTitle,
		MediaPoster: r.MediaPoster,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func toReviewResponses(reviews []*domain.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	return out
}

// toMediaDetailResponse copies the upstream document and attaches the
// enrichment keys. isFavorite is present only for identified viewers.
func toMediaDetailResponse(d *ports.MediaDetail) domain.Media {
	out := make(domain.Media, len(d.Media)+6)
	for k, v := range d.Media {
		out[k] = v
	}
	out["credits"] = d.Credits
	out["videos"] = d.Videos
	out["recommend"] = d.Recommend
	out["images"] = d.Images
	out["reviews"] = toReviewResponses(d.Reviews)
	if d.ViewerResolved {
		out["isFavorite"] = d.IsFavorite
	}
	return out
}
