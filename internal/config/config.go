package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreMemory   = "memory"
	StoreBolt     = "bolt"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

type Config struct {
	HTTPAddr     string        `env:"HTTP_ADDR" envDefault:":8080"`
	StoreDriver  string        `env:"STORE_DRIVER" envDefault:"bolt"`
	BoltPath     string        `env:"BOLT_PATH" envDefault:"data/igusa.db"`
	RedisURL     string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	DBDSN        string        `env:"DB_DSN"`
	DebugMode    bool          `env:"DEBUG_MODE" envDefault:"false"`
	LogLevel     slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	RandSeed     int64         `env:"RAND_SEED"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"100ms"`
	AllowOrigin  string        `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements env tags cannot express.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreRedis:
	case StoreBolt:
		if c.BoltPath == "" {
			return fmt.Errorf("BOLT_PATH is required for store driver %q", c.StoreDriver)
		}
	case StorePostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required for store driver %q", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("TICK_INTERVAL must not be negative, got %s", c.TickInterval)
	}
	return nil
}
