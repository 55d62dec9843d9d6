package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/reelhub/media-api/internal/core/domain"
	"github.com/reelhub/media-api/internal/core/ports"
)

func newTestUserService(repo *stubUserRepo, opts ...UserServiceOption) *UserService {
	return NewUserService(repo, stubHasher{}, stubTokens{}, zerolog.Nop(), opts...)
}

func TestUserService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	res, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Password: "pass1234", DisplayName: "Alice"})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if res.Token != "token-for-"+res.User.ID {
		t.Fatalf("token not bound to created user: %q", res.Token)
	}
	if res.User.DisplayName != "Alice" || res.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
	if res.User.PasswordHash != "hash:pass1234" || res.User.Salt == "" {
		t.Fatalf("expected hashed password and salt, got %+v", res.User)
	}
	if res.User.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
}

func TestUserService_Signup_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Password: "pw", DisplayName: "A"}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	_, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Password: "pw2", DisplayName: "B"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

// The unique index catches a duplicate that passed the existence check.
func TestUserService_Signup_RaceCaughtByStore(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = domain.ErrUsernameTaken
	svc := newTestUserService(repo)

	_, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Password: "pw", DisplayName: "A"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserService_Signup_LookupFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errBoom
	svc := newTestUserService(repo)

	_, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Password: "pw", DisplayName: "A"})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestUserService_Signup_TokenFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, stubHasher{}, stubTokens{err: errBoom}, zerolog.Nop())

	_, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Password: "pw", DisplayName: "A"})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected token error, got %v", err)
	}
}

func TestUserService_Signup_ReservationHeld(t *testing.T) {
	repo := newStubUserRepo()
	reserver := newStubReserver()
	reserver.held["alice"] = true
	svc := newTestUserService(repo, WithUsernameReserver(reserver))

	_, err := svc.Signup(context.Background(), ports.SignupInput{Username: "alice", Password: "pw", DisplayName: "A"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("store must not be touched while reservation is held")
	}
}

func TestUserService_Signup_ReservationReleased(t *testing.T) {
	repo := newStubUserRepo()
	reserver := newStubReserver()
	svc := newTestUserService(repo, WithUsernameReserver(reserver))

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "bob", Password: "pw", DisplayName: "B"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if len(reserver.released) != 1 || reserver.released[0] != "bob" {
		t.Fatalf("expected reservation release, got %v", reserver.released)
	}
	if reserver.held["bob"] {
		t.Fatalf("reservation still held")
	}
}

func TestUserService_Signup_ReserverDownStillSignsUp(t *testing.T) {
	repo := newStubUserRepo()
	reserver := newStubReserver()
	reserver.err = errBoom
	svc := newTestUserService(repo, WithUsernameReserver(reserver))

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Username: "carol", Password: "pw", DisplayName: "C"}); err != nil {
		t.Fatalf("signup should proceed without reservation: %v", err)
	}
	if len(reserver.released) != 0 {
		t.Fatalf("nothing to release when reservation failed")
	}
}

func TestUserService_Signin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)
	signup, err := svc.Signup(context.Background(), ports.SignupInput{Username: "dave", Password: "goodpass", DisplayName: "Dave"})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	res, err := svc.Signin(context.Background(), "dave", "goodpass")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if res.User.ID != signup.User.ID || res.Token == "" {
		t.Fatalf("unexpected signin result: %+v", res)
	}

	if _, err := svc.Signin(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrIncorrectPassword) {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
	if _, err := svc.Signin(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)
	signup, _ := svc.Signup(context.Background(), ports.SignupInput{Username: "erin", Password: "oldpass1", DisplayName: "Erin"})
	id := signup.User.ID

	if err := svc.UpdatePassword(context.Background(), id, "wrongpass", "newpass1"); !errors.Is(err, domain.ErrIncorrectPassword) {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("store must not be updated on wrong password")
	}

	if err := svc.UpdatePassword(context.Background(), id, "oldpass1", "newpass1"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := svc.Signin(context.Background(), "erin", "oldpass1"); !errors.Is(err, domain.ErrIncorrectPassword) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, err := svc.Signin(context.Background(), "erin", "newpass1"); err != nil {
		t.Fatalf("new password must work: %v", err)
	}

	if err := svc.UpdatePassword(context.Background(), "ghost", "x", "y"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for vanished user, got %v", err)
	}
}

func TestUserService_Info(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)
	signup, _ := svc.Signup(context.Background(), ports.SignupInput{Username: "frank", Password: "pw", DisplayName: "Frank"})

	user, err := svc.Info(context.Background(), signup.User.ID)
	if err != nil || user.Username != "frank" {
		t.Fatalf("unexpected info result: %+v, %v", user, err)
	}

	if _, err := svc.Info(context.Background(), "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
