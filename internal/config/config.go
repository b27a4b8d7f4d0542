package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Backend names accepted in STORE_BACKEND.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	// Core
	BotToken string `env:"BOT_TOKEN,required"`
	AdminID  int64  `env:"ADMIN_ID,required"`

	// Store
	StoreBackend string `env:"STORE_BACKEND" envDefault:"file"`
	DataDir      string `env:"DATA_DIR" envDefault:"data"`
	DatabaseURL  string `env:"DATABASE_URL"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Users
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"hi"`

	// Add-task link preview
	PreviewTimeout time.Duration `env:"PREVIEW_TIMEOUT" envDefault:"10s"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	switch cfg.StoreBackend {
	case BackendFile, BackendRedis:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// IsAdmin reports whether the actor is the configured administrator.
// The admin identity is immutable after startup.
func (c *Config) IsAdmin(telegramID int64) bool {
	return telegramID == c.AdminID
}
