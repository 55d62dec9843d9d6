package domain

import "errors"

var (
	ErrUsernameTaken     = errors.New("username already in use")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("resource not found")
)

// ValidationError reports the first request field rule that failed.
// Message is client-facing and returned verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
