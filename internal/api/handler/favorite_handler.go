package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/media-api/internal/core/ports"
)

type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// List returns the caller's favorites, newest first.
//
// @Summary      List favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   favoriteResponse
// @Failure      401  {object}  map[string]any
// @Router       /user/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	favs, err := h.service.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFavoriteResponses(favs))
}

// Add bookmarks a media item. Adding the same media twice returns the
// existing favorite with 200.
//
// @Summary      Add favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addFavoriteRequest  true  "Media to bookmark"
// @Success      200   {object}  favoriteResponse
// @Success      201   {object}  favoriteResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /user/favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addFavoriteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	fav, created, err := h.service.Add(c.Request().Context(), user.ID, toAddFavoriteInput(req))
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, toFavoriteResponse(fav))
}

// Remove deletes one of the caller's favorites.
//
// @Summary      Remove favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        favoriteId  path      string  true  "Favorite id"
// @Success      200         {object}  messageResponse
// @Failure      401         {object}  map[string]any
// @Failure      404         {object}  map[string]any
// @Router       /user/favorites/{favoriteId} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), user.ID, c.Param("favoriteId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Favorite removed"})
}
