package domain

import "time"

// User models an account holder. PasswordHash and Salt are always written
// together and never leave the service boundary.
type User struct {
	ID           string
	Username     string
	DisplayName  string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
