package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/media-api/internal/api/metrics"
	"github.com/reelhub/media-api/internal/core/domain"
	"github.com/reelhub/media-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Signup creates an account and signs it in.
//
// @Summary      Sign up
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "New account"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /user/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.service.Signup(c.Request().Context(), toSignupInput(req))
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(signupResult(err)).Inc()
		return err
	}
	metrics.SignupsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusCreated, toAuthResponse(res))
}

// Signin exchanges credentials for a token.
//
// @Summary      Sign in
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /user/signin [post]
func (h *UserHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.service.Signin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues(signinResult(err)).Inc()
		return err
	}
	metrics.SigninsTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusCreated, toAuthResponse(res))
}

// UpdatePassword replaces the caller's password after checking the current one.
//
// @Summary      Update password
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /user/update-password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.service.UpdatePassword(c.Request().Context(), user.ID, req.Password, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Password updated"})
}

// Info returns the caller's profile.
//
// @Summary      Current user
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /user/info [get]
func (h *UserHandler) Info(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	info, err := h.service.Info(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(info))
}

func signupResult(err error) string {
	if errors.Is(err, domain.ErrUsernameTaken) {
		return "username_taken"
	}
	return "error"
}

func signinResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrIncorrectPassword):
		return "incorrect_password"
	default:
		return "error"
	}
}
