package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT,             default=5000"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
	CORSOrigins     []string      `env:"CORS_ALLOW_ORIGINS, default=*"`

	Token TokenConfig
	Mongo MongoConfig
	Redis RedisConfig
	TMDB  TMDBConfig
}

type TokenConfig struct {
	Secret string        `env:"TOKEN_SECRET_KEY, required"`
	TTL    time.Duration `env:"TOKEN_TTL,        default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URL, default=mongodb://localhost:27017"`
	Database string `env:"MONGODB_DB,  default=media_api"`
}

// RedisConfig is optional; an empty Addr disables Redis entirely.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type TMDBConfig struct {
	BaseURL string        `env:"TMDB_BASE_URL, default=https://api.themoviedb.org/3/"`
	APIKey  string        `env:"TMDB_KEY"`
	Timeout time.Duration `env:"TMDB_TIMEOUT,  default=10s"`
}

// IsDevelopment reports whether the process runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// LoadFrom reads configuration from an explicit lookuper instead of the
// process environment.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
