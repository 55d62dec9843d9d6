package ports

import (
	"context"

	"github.com/reelhub/media-api/internal/core/domain"
)

type SignupInput struct {
	Username    string
	Password    string
	DisplayName string
}

// AuthResult is returned by flows that authenticate a user.
type AuthResult struct {
	Token string
	User  *domain.User
}

type UserService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Signin(ctx context.Context, username, password string) (*AuthResult, error)
	UpdatePassword(ctx context.Context, userID, password, newPassword string) error
	Info(ctx context.Context, userID string) (*domain.User, error)
}
