package domain

import "time"

// Review is a user's written opinion on a media item.
type Review struct {
	ID          string
	UserID      string
	Content     string
	MediaType   string
	MediaID     string
	MediaTitle  string
	MediaPoster string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Author is populated only by queries that join the users collection.
	Author *User
}
