package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelhub/media-api/internal/core/domain"
	"github.com/reelhub/media-api/internal/core/ports"
)

// UserService implements signup, signin and account maintenance.
type UserService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	reserver ports.UsernameReserver
	log      zerolog.Logger
	now      func() time.Time
}

type UserServiceOption func(*UserService)

// WithUsernameReserver guards signups with a short-lived username claim.
// The storage unique index stays the actual enforcement.
func WithUsernameReserver(r ports.UsernameReserver) UserServiceOption {
	return func(s *UserService) { s.reserver = r }
}

func NewUserService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	log zerolog.Logger,
	opts ...UserServiceOption,
) *UserService {
	s := &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup creates an account and returns a token for it. The existence check
// and the insert are not atomic; a duplicate that slips between them is
// caught by the repository's unique index.
func (s *UserService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	if s.reserver != nil {
		ok, err := s.reserver.Reserve(ctx, in.Username)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("username", in.Username).Msg("username reservation failed, continuing")
		case !ok:
			return nil, domain.ErrUsernameTaken
		default:
			defer s.release(in.Username)
		}
	}

	existing, err := s.repo.FindByUsername(ctx, in.Username)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrUsernameTaken
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Username:    in.Username,
		DisplayName: in.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.hasher.SetPassword(user, in.Password); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user signed up")
	return &ports.AuthResult{Token: tok, User: created}, nil
}

func (s *UserService) Signin(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(user, password) {
		return nil, domain.ErrIncorrectPassword
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &ports.AuthResult{Token: tok, User: user}, nil
}

// UpdatePassword replaces the password after checking the current one.
// A user that vanished since authentication is reported as unauthorized.
func (s *UserService) UpdatePassword(ctx context.Context, userID, password, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUnauthorized
		}
		return err
	}

	if !s.hasher.Verify(user, password) {
		return domain.ErrIncorrectPassword
	}

	if err := s.hasher.SetPassword(user, newPassword); err != nil {
		return err
	}
	user.UpdatedAt = s.now().UTC()

	if _, err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password updated")
	return nil
}

func (s *UserService) Info(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// release runs detached from the request so a cancelled signup still frees
// the reservation.
func (s *UserService) release(username string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.reserver.Release(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to release username reservation")
	}
}
