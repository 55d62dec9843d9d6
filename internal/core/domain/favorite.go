package domain

import "time"

// Favorite marks a media item as bookmarked by a user.
type Favorite struct {
	ID          string
	UserID      string
	MediaType   string
	MediaID     string
	MediaTitle  string
	MediaPoster string
	MediaRate   float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
