package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
//
// JWT_SECRET and MYSQL_DSN are mandatory; Load fails when either is absent so
// the process refuses to start with an unusable configuration.
type Config struct {
	ServerPort string `env:"SERVER_PORT, default=8080"`
	Env        string `env:"ENV,         default=development"`

	MySQLDSN string `env:"MYSQL_DSN, required"`

	JWTSecret       string        `env:"JWT_SECRET, required"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL,  default=24h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`

	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string `env:"CORS_ORIGIN, default=*"`

	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX,    default=100"`

	Redis RedisConfig
}

// RedisConfig holds connection settings for the rate-limit counter store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB,   default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

// Load builds Config from the environment using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
