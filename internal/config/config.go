package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage                  string        `env:"STAGE" envDefault:"dev"`
	Port                   int           `env:"PORT" envDefault:"9191"`
	DatabaseURL            string        `env:"DATABASE_URL"`
	BoardWidth             int           `env:"BOARD_WIDTH" envDefault:"10"`
	BoardHeight            int           `env:"BOARD_HEIGHT" envDefault:"10"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"20m"`
	AllowedOrigins         []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Load reads .env (except in prod, where the environment is already set)
// and parses it into a Config.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func MustLoad(envFile string) Config {
	cfg, err := Load(envFile)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c Config) validate() error {
	if c.Stage != StageDev && c.Stage != StageProd {
		return cerr.ErrInvalidStage(c.Stage)
	}
	if c.BoardWidth <= 0 || c.BoardHeight <= 0 {
		return cerr.ErrInvalidBoardSize(c.BoardWidth, c.BoardHeight)
	}
	if c.SessionCleanupInterval <= 0 {
		return fmt.Errorf("session cleanup interval must be positive, got: %s", c.SessionCleanupInterval)
	}
	return nil
}

func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseURL != ""
}
