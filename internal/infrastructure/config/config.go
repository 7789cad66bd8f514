package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string `env:"PORT,            default=8080"`
	Env             string `env:"ENV,             default=development"`
	JWTSecret       string `env:"JWT_SECRET"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS, default=24"`
	LogLevel        string `env:"LOG_LEVEL,       default=info"`
	AuditWorkers    int    `env:"AUDIT_WORKERS,   default=4"`

	Postgres  PostgresConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type PostgresConfig struct {
	URL      string `env:"DATABASE_URL, default=postgres://localhost:5432/todo?sslmode=disable"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS, default=5"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type RateLimitConfig struct {
	// PerMinute caps unauthenticated credential attempts per client IP.
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE, default=30"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
