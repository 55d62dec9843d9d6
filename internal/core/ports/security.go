package ports

import "github.com/reelhub/media-api/internal/core/domain"

// PasswordHasher derives and checks salted password hashes on a user record.
type PasswordHasher interface {
	SetPassword(user *domain.User, password string) error
	Verify(user *domain.User, candidate string) bool
}

// TokenIssuer mints bearer tokens bound to a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// TokenVerifier checks a bearer token and returns the user id it carries.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
