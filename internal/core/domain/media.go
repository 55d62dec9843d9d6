package domain

const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
)

// MediaTypes lists the media kinds a favorite or review may reference.
var MediaTypes = []string{MediaTypeMovie, MediaTypeTV}

// Media is an opaque upstream document passed through to clients.
type Media map[string]any
