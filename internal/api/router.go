package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/reelhub/media-api/docs"
	"github.com/reelhub/media-api/internal/api/handler"
	"github.com/reelhub/media-api/internal/api/middleware"
	"github.com/reelhub/media-api/internal/api/validation"
	"github.com/reelhub/media-api/internal/core/ports"
)

const basePath = "/api/v1"

// Deps carries everything the router wires into handlers and middleware.
type Deps struct {
	Log zerolog.Logger

	Users     ports.UserService
	Favorites ports.FavoriteService
	Reviews   ports.ReviewService
	Media     ports.MediaService

	Tokens     ports.TokenVerifier
	UserLoader middleware.UserLoader

	// Checks are the readiness probes for the configured dependencies.
	Checks []handler.DependencyCheck

	CORSOrigins []string

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}
	if len(d.CORSOrigins) == 0 {
		d.CORSOrigins = []string{"*"}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "mediaapi",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Dependencies ---
	rules := validation.NewRunner()
	auth := middleware.Auth(d.Tokens, d.UserLoader)
	optionalAuth := middleware.OptionalAuth(d.Tokens, d.UserLoader)

	userHandler := handler.NewUserHandler(d.Users)
	favoriteHandler := handler.NewFavoriteHandler(d.Favorites)
	reviewHandler := handler.NewReviewHandler(d.Reviews)
	mediaHandler := handler.NewMediaHandler(d.Media)

	v1 := e.Group(basePath)

	// --- User routes (validation runs before auth) ---
	user := v1.Group("/user")
	user.POST("/signup", userHandler.Signup, rules.Middleware(handler.SignupRules...))
	user.POST("/signin", userHandler.Signin, rules.Middleware(handler.SigninRules...))
	user.PUT("/update-password", userHandler.UpdatePassword, rules.Middleware(handler.UpdatePasswordRules...), auth)
	user.GET("/info", userHandler.Info, auth)
	user.GET("/favorites", favoriteHandler.List, auth)
	user.POST("/favorites", favoriteHandler.Add, rules.Middleware(handler.AddFavoriteRules...), auth)
	user.DELETE("/favorites/:favoriteId", favoriteHandler.Remove, auth)

	// --- Review routes ---
	reviews := v1.Group("/reviews")
	reviews.GET("", reviewHandler.List, auth)
	reviews.POST("", reviewHandler.Create, rules.Middleware(handler.CreateReviewRules...), auth)
	reviews.DELETE("/:reviewId", reviewHandler.Remove, auth)

	// --- People ---
	person := v1.Group("/person")
	person.GET("/:personId/medias", mediaHandler.PersonMedias)
	person.GET("/:personId", mediaHandler.Person)

	// --- Media proxy (registered last; static segments above win) ---
	media := v1.Group("/:mediaType")
	media.GET("/search", mediaHandler.Search)
	media.GET("/genres", mediaHandler.Genres)
	media.GET("/detail/:mediaId", mediaHandler.Detail, optionalAuth)
	media.GET("/:mediaCategory", mediaHandler.List)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
