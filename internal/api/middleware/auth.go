package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/media-api/internal/api/metrics"
	"github.com/reelhub/media-api/internal/core/domain"
	"github.com/reelhub/media-api/internal/core/ports"
	"github.com/reelhub/media-api/internal/pkg/token"
)

const userKey = "user"

// UserLoader resolves the subject of a verified token.
type UserLoader interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth requires a bearer token that verifies and names an existing user.
// The user is stored on the context under "user". Token checks run before
// any store access, so a bad token never reaches the database.
func Auth(verifier ports.TokenVerifier, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, reason, err := authenticate(c, verifier, users)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				return err
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

// OptionalAuth attaches the user when the request carries a valid token and
// otherwise lets the request through anonymously.
func OptionalAuth(verifier ports.TokenVerifier, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, _, err := authenticate(c, verifier, users); err == nil {
				c.Set(userKey, user)
			}
			return next(c)
		}
	}
}

// UserFrom returns the user attached by Auth or OptionalAuth.
func UserFrom(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userKey).(*domain.User)
	return user, ok && user != nil
}

func authenticate(c echo.Context, verifier ports.TokenVerifier, users UserLoader) (*domain.User, string, error) {
	raw, ok := token.FromRequest(c.Request())
	if !ok {
		return nil, "missing_token", domain.ErrUnauthorized
	}

	userID, err := verifier.Verify(raw)
	if err != nil {
		return nil, "invalid_token", domain.ErrUnauthorized
	}

	user, err := users.FindByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "unknown_user", domain.ErrUnauthorized
		}
		return nil, "lookup_failed", fmt.Errorf("load token subject: %w", err)
	}
	return user, "", nil
}
