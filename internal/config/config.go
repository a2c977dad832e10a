package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL  string        `env:"API_BASE_URL,  default=http://localhost:3000"`
	Env         string        `env:"ENV,           default=development"`
	LogLevel    string        `env:"LOG_LEVEL,     default=info"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,  default=30s"`

	Session SessionConfig
	Redis   RedisConfig
	Mock    MockConfig
}

type SessionConfig struct {
	// Backend selects where the session record lives: file, redis, or memory.
	Backend string `env:"SESSION_BACKEND, default=file"`
	// File is the session file path for the file backend. Defaults to
	// motobazar/session.json under the user config directory.
	File string `env:"SESSION_FILE"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// MockConfig configures the development API server.
type MockConfig struct {
	Port      string        `env:"PORT,       default=3000"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-only-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
}

// Load reads configuration from the environment using go-envconfig, after a
// best-effort .env load for local development.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Session.File == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.Session.File = filepath.Join(dir, "motobazar", "session.json")
	}

	return &cfg, nil
}
