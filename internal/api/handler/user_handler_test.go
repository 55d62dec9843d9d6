package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/reelhub/media-api/internal/api/validation"
	"github.com/reelhub/media-api/internal/core/domain"
	"github.com/reelhub/media-api/internal/core/ports"
)

var alice = &domain.User{
	ID:           "65f000000000000000000001",
	Username:     "alice",
	DisplayName:  "Alice",
	PasswordHash: "deadbeef",
	Salt:         "cafe",
	CreatedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	UpdatedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
}

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, b)
	}
	return m
}

func TestUserHandler_Signup_Success(t *testing.T) {
	stub := &stubUserService{
		signupFn: func(_ context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
			if in.Username != "alice" || in.Password != "password1" || in.DisplayName != "Alice" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{Token: "tok", User: alice}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newContext(http.MethodPost, "/api/v1/user/signup", `{"username":"alice","password":"password1","displayName":"Alice"}`, nil)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	body := decode(t, rec.Body.Bytes())
	if body["token"] != "tok" || body["id"] != alice.ID || body["username"] != "alice" || body["displayName"] != "Alice" {
		t.Fatalf("unexpected body: %v", body)
	}
	for _, k := range []string{"password", "passwordHash", "salt", "_id", "user"} {
		if _, ok := body[k]; ok {
			t.Fatalf("response leaked %q: %v", k, body)
		}
	}
}

func TestUserHandler_Signup_UsernameTaken(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		signupFn: func(context.Context, ports.SignupInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUsernameTaken
		},
	})

	c, rec := newContext(http.MethodPost, "/api/v1/user/signup", `{"username":"alice","password":"password1","displayName":"Alice"}`, nil)
	err := h.Signup(c)
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("handler wrote a body on error: %s", rec.Body.String())
	}
}

func TestUserHandler_Signup_MalformedBody(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		signupFn: func(context.Context, ports.SignupInput) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, _ := newContext(http.MethodPost, "/api/v1/user/signup", `{"username":`, nil)
	if err := h.Signup(c); !errors.Is(err, validation.ErrInvalidBody) {
		t.Fatalf("expected ErrInvalidBody, got %v", err)
	}
}

func TestUserHandler_Signin(t *testing.T) {
	tests := []struct {
		name    string
		result  *ports.AuthResult
		err     error
		wantErr error
		want    int
	}{
		{"success answers 201", &ports.AuthResult{Token: "tok", User: alice}, nil, nil, http.StatusCreated},
		{"unknown user", nil, domain.ErrUserNotFound, domain.ErrUserNotFound, 0},
		{"wrong password", nil, domain.ErrIncorrectPassword, domain.ErrIncorrectPassword, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUserHandler(&stubUserService{
				signinFn: func(_ context.Context, username, password string) (*ports.AuthResult, error) {
					if username != "alice" || password != "wrong-or-right" {
						t.Fatalf("unexpected credentials %q %q", username, password)
					}
					return tt.result, tt.err
				},
			})

			c, rec := newContext(http.MethodPost, "/api/v1/user/signin", `{"username":"alice","password":"wrong-or-right"}`, nil)
			err := h.Signin(c)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.want != 0 && rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestUserHandler_UpdatePassword(t *testing.T) {
	var gotUser, gotOld, gotNew string
	h := NewUserHandler(&stubUserService{
		updatePasswordFn: func(_ context.Context, userID, password, newPassword string) error {
			gotUser, gotOld, gotNew = userID, password, newPassword
			return nil
		},
	})

	c, rec := newContext(http.MethodPut, "/api/v1/user/update-password", `{"password":"old-pass1","newPassword":"new-pass1"}`, alice)
	if err := h.UpdatePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUser != alice.ID || gotOld != "old-pass1" || gotNew != "new-pass1" {
		t.Fatalf("unexpected args: %s %s %s", gotUser, gotOld, gotNew)
	}
}

func TestUserHandler_RequiresAuthenticatedUser(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newContext(http.MethodGet, "/api/v1/user/info", "", nil)
	if err := h.Info(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	c, _ = newContext(http.MethodPut, "/api/v1/user/update-password", `{}`, nil)
	if err := h.UpdatePassword(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUserHandler_Info(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		infoFn: func(_ context.Context, userID string) (*domain.User, error) {
			if userID != alice.ID {
				t.Fatalf("unexpected user id %q", userID)
			}
			return alice, nil
		},
	})

	c, rec := newContext(http.MethodGet, "/api/v1/user/info", "", alice)
	if err := h.Info(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := decode(t, rec.Body.Bytes())
	if body["username"] != "alice" || body["createdAt"] != "2024-03-01T10:00:00Z" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["salt"]; ok {
		t.Fatalf("salt leaked")
	}
}
