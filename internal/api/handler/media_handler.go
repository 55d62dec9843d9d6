package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/media-api/internal/api/middleware"
	"github.com/reelhub/media-api/internal/core/ports"
)

// MediaHandler proxies the media database for movies, tv shows and people.
type MediaHandler struct {
	service ports.MediaService
}

func NewMediaHandler(service ports.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// List returns one category listing (popular, top_rated, ...).
//
// @Summary      List media by category
// @Tags         media
// @Produce      json
// @Param        mediaType      path   string  true   "movie or tv"
// @Param        mediaCategory  path   string  true   "Category"
// @Param        page           query  string  false  "Page"
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /{mediaType}/{mediaCategory} [get]
func (h *MediaHandler) List(c echo.Context) error {
	media, err := h.service.List(c.Request().Context(), c.Param("mediaType"), c.Param("mediaCategory"), c.QueryParam("page"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, media)
}

// Genres lists the genres of a media type.
//
// @Summary      List genres
// @Tags         media
// @Produce      json
// @Param        mediaType  path  string  true  "movie or tv"
// @Success      200  {object}  map[string]any
// @Router       /{mediaType}/genres [get]
func (h *MediaHandler) Genres(c echo.Context) error {
	media, err := h.service.Genres(c.Request().Context(), c.Param("mediaType"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, media)
}

// Search runs a text query. The "people" media type searches persons.
//
// @Summary      Search media
// @Tags         media
// @Produce      json
// @Param        mediaType  path   string  true   "movie, tv or people"
// @Param        query      query  string  false  "Search text"
// @Param        page       query  string  false  "Page"
// @Success      200  {object}  map[string]any
// @Router       /{mediaType}/search [get]
func (h *MediaHandler) Search(c echo.Context) error {
	media, err := h.service.Search(c.Request().Context(), c.Param("mediaType"), c.QueryParam("query"), c.QueryParam("page"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, media)
}

// Detail returns a media item with credits, videos, recommendations, images
// and local reviews. Identified callers also get isFavorite.
//
// @Summary      Media detail
// @Tags         media
// @Produce      json
// @Param        mediaType  path  string  true  "movie or tv"
// @Param        mediaId    path  string  true  "Media id"
// @Success      200  {object}  map[string]any
// @Router       /{mediaType}/detail/{mediaId} [get]
func (h *MediaHandler) Detail(c echo.Context) error {
	viewer, _ := middleware.UserFrom(c)

	detail, err := h.service.Detail(c.Request().Context(), c.Param("mediaType"), c.Param("mediaId"), viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMediaDetailResponse(detail))
}

// Person returns a person's profile.
//
// @Summary      Person detail
// @Tags         person
// @Produce      json
// @Param        personId  path  string  true  "Person id"
// @Success      200  {object}  map[string]any
// @Router       /person/{personId} [get]
func (h *MediaHandler) Person(c echo.Context) error {
	person, err := h.service.Person(c.Request().Context(), c.Param("personId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, person)
}

// PersonMedias returns the combined movie and tv credits of a person.
//
// @Summary      Person credits
// @Tags         person
// @Produce      json
// @Param        personId  path  string  true  "Person id"
// @Success      200  {object}  map[string]any
// @Router       /person/{personId}/medias [get]
func (h *MediaHandler) PersonMedias(c echo.Context) error {
	medias, err := h.service.PersonMedias(c.Request().Context(), c.Param("personId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, medias)
}
