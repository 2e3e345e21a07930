package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"littlelemon"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	// RedisAddr enables the shared rate limit store. Empty keeps counters in memory.
	RedisAddr         string `env:"REDIS_ADDR"`
	RatePerMinuteUser int    `env:"RATE_USER_PER_MINUTE" envDefault:"60"`
	RatePerMinuteAnon int    `env:"RATE_ANON_PER_MINUTE" envDefault:"20"`
	PageSize          int    `env:"PAGE_SIZE" envDefault:"20"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	BacklogSchedule   string `env:"BACKLOG_SCHEDULE" envDefault:"0 */5 * * * *"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PageSize < 1 {
		return Config{}, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	return cfg, nil
}

// SlogLevel maps LOG_LEVEL onto slog. Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// EchoLevel maps LOG_LEVEL onto the echo logger.
func (c Config) EchoLevel() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
