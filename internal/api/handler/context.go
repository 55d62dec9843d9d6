package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/reelhub/media-api/internal/api/middleware"
	"github.com/reelhub/media-api/internal/api/validation"
	"github.com/reelhub/media-api/internal/core/domain"
)

// currentUser returns the user attached by the Auth middleware. A missing
// user means the route was registered without it; answer 401 rather than
// dereference nil.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// bind decodes the JSON body, reporting malformed payloads as a 400.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return validation.ErrInvalidBody
	}
	return nil
}
