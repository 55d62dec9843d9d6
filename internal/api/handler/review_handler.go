package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/media-api/internal/core/ports"
)

type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List returns the caller's reviews, newest first.
//
// @Summary      List my reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   reviewResponse
// @Failure      401  {object}  map[string]any
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	reviews, err := h.service.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewResponses(reviews))
}

// Create posts a review authored by the caller.
//
// @Summary      Create review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	review, err := h.service.Create(c.Request().Context(), user, toCreateReviewInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toReviewResponse(review))
}

// Remove deletes one of the caller's reviews.
//
// @Summary      Remove review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        reviewId  path      string  true  "Review id"
// @Success      200       {object}  messageResponse
// @Failure      401       {object}  map[string]any
// @Failure      404       {object}  map[string]any
// @Router       /reviews/{reviewId} [delete]
func (h *ReviewHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), user.ID, c.Param("reviewId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Review removed"})
}
