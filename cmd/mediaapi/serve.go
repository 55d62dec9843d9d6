package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/reelhub/media-api/internal/api"
	"github.com/reelhub/media-api/internal/api/handler"
	"github.com/reelhub/media-api/internal/api/metrics"
	"github.com/reelhub/media-api/internal/core/service"
	"github.com/reelhub/media-api/internal/infrastructure/db/mongo"
	"github.com/reelhub/media-api/internal/infrastructure/db/redis"
	"github.com/reelhub/media-api/internal/infrastructure/tmdb"
	"github.com/reelhub/media-api/internal/pkg/config"
	"github.com/reelhub/media-api/internal/pkg/password"
	"github.com/reelhub/media-api/internal/pkg/token"
	"github.com/reelhub/media-api/pkg/logger"
)

const serviceName = "media-api"

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			return runServer(ctx, cfg)
		},
	}
}

// runServer wires the dependencies and serves until ctx is cancelled.
func runServer(ctx context.Context, cfg *config.Config) error {
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	users := mongo.NewUserRepository(db)
	favorites := mongo.NewFavoriteRepository(db)
	reviews := mongo.NewReviewRepository(db)
	if err := mongo.EnsureIndexes(ctx, users, favorites, reviews); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	checks := []handler.DependencyCheck{handler.MongoCheck(db)}
	var userOpts []service.UserServiceOption

	if cfg.Redis.Addr != "" {
		var rdb *goredis.Client
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB, ClientName: serviceName})
		if err != nil {
			return err
		}
		defer rdb.Close()

		checks = append(checks, handler.RedisCheck(rdb))
		userOpts = append(userOpts, service.WithUsernameReserver(redis.NewUsernameReservation(rdb, redis.DefaultReservationTTL)))
	} else {
		log.Info().Msg("redis disabled: REDIS_ADDR not set")
	}

	tokens, err := token.NewManager(token.Config{Secret: cfg.Token.Secret, TTL: cfg.Token.TTL})
	if err != nil {
		return err
	}

	catalog, err := tmdb.NewClient(tmdb.Config{
		BaseURL: cfg.TMDB.BaseURL,
		APIKey:  cfg.TMDB.APIKey,
		Timeout: cfg.TMDB.Timeout,
	}, tmdb.WithObserver(metrics.ObserveUpstream))
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Deps{
		Log:         log,
		Users:       service.NewUserService(users, password.NewHasher(), tokens, logger.Named("user_service"), userOpts...),
		Favorites:   service.NewFavoriteService(favorites, logger.Named("favorite_service")),
		Reviews:     service.NewReviewService(reviews, logger.Named("review_service")),
		Media:       service.NewMediaService(catalog, favorites, reviews, logger.Named("media_service")),
		Tokens:      tokens,
		UserLoader:  users,
		Checks:      checks,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
