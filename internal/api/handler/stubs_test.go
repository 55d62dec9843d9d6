package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/media-api/internal/core/domain"
	"github.com/reelhub/media-api/internal/core/ports"
)

type stubUserService struct {
	signupFn         func(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error)
	signinFn         func(ctx context.Context, username, password string) (*ports.AuthResult, error)
	updatePasswordFn func(ctx context.Context, userID, password, newPassword string) error
	infoFn           func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubUserService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	return s.signupFn(ctx, in)
}

func (s *stubUserService) Signin(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	return s.signinFn(ctx, username, password)
}

func (s *stubUserService) UpdatePassword(ctx context.Context, userID, password, newPassword string) error {
	return s.updatePasswordFn(ctx, userID, password, newPassword)
}

func (s *stubUserService) Info(ctx context.Context, userID string) (*domain.User, error) {
	return s.infoFn(ctx, userID)
}

type stubFavoriteService struct {
	addFn    func(ctx context.Context, userID string, in ports.AddFavoriteInput) (*domain.Favorite, bool, error)
	removeFn func(ctx context.Context, userID, favoriteID string) error
	listFn   func(ctx context.Context, userID string) ([]*domain.Favorite, error)
}

func (s *stubFavoriteService) Add(ctx context.Context, userID string, in ports.AddFavoriteInput) (*domain.Favorite, bool, error) {
	return s.addFn(ctx, userID, in)
}

func (s *stubFavoriteService) Remove(ctx context.Context, userID, favoriteID string) error {
	return s.removeFn(ctx, userID, favoriteID)
}

func (s *stubFavoriteService) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	return s.listFn(ctx, userID)
}

type stubReviewService struct {
	createFn func(ctx context.Context, author *domain.User, in ports.CreateReviewInput) (*domain.Review, error)
	removeFn func(ctx context.Context, userID, reviewID string) error
	listFn   func(ctx context.Context, userID string) ([]*domain.Review, error)
}

func (s *stubReviewService) Create(ctx context.Context, author *domain.User, in ports.CreateReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, author, in)
}

func (s *stubReviewService) Remove(ctx context.Context, userID, reviewID string) error {
	return s.removeFn(ctx, userID, reviewID)
}

func (s *stubReviewService) ListByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	return s.listFn(ctx, userID)
}

type stubMediaService struct {
	listFn         func(ctx context.Context, mediaType, category, page string) (domain.Media, error)
	genresFn       func(ctx context.Context, mediaType string) (domain.Media, error)
	searchFn       func(ctx context.Context, mediaType, query, page string) (domain.Media, error)
	detailFn       func(ctx context.Context, mediaType, mediaID string, viewer *domain.User) (*ports.MediaDetail, error)
	personFn       func(ctx context.Context, personID string) (domain.Media, error)
	personMediasFn func(ctx context.Context, personID string) (domain.Media, error)
}

func (s *stubMediaService) List(ctx context.Context, mediaType, category, page string) (domain.Media, error) {
	return s.listFn(ctx, mediaType, category, page)
}

func (s *stubMediaService) Genres(ctx context.Context, mediaType string) (domain.Media, error) {
	return s.genresFn(ctx, mediaType)
}

func (s *stubMediaService) Search(ctx context.Context, mediaType, query, page string) (domain.Media, error) {
	return s.searchFn(ctx, mediaType, query, page)
}

func (s *stubMediaService) Detail(ctx context.Context, mediaType, mediaID string, viewer *domain.User) (*ports.MediaDetail, error) {
	return s.detailFn(ctx, mediaType, mediaID, viewer)
}

func (s *stubMediaService) Person(ctx context.Context, personID string) (domain.Media, error) {
	return s.personFn(ctx, personID)
}

func (s *stubMediaService) PersonMedias(ctx context.Context, personID string) (domain.Media, error) {
	return s.personMediasFn(ctx, personID)
}

// newContext builds an echo context for method/target with an optional JSON
// body and, when user is non-nil, the user the Auth middleware would attach.
func newContext(method, target, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("user", user)
	}
	return c, rec
}
