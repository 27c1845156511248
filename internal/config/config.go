// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all runtime configuration values.  Each section maps to a
// group of environment variables; see the env tags for names and defaults.
type Config struct {
	App       AppConfig
	Auth      AuthConfig
	Booking   BookingConfig
	Logger    LoggerConfig
	Session   SessionConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	RabbitMQ  RabbitMQConfig
}

type AppConfig struct {
	Env             string        `env:"APP_ENV" envDefault:"dev"`
	Port            string        `env:"APP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// AuthConfig drives the demo sign-in.  Every fixture account accepts
// DemoPassword.
type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET,required,notEmpty"`
	AccessTTL    time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"60m"`
	BcryptCost   int           `env:"BCRYPT_COST" envDefault:"10"`
	DemoPassword string        `env:"DEMO_PASSWORD" envDefault:"eventistan123"`
}

type BookingConfig struct {
	ProcessingDelay time.Duration `env:"BOOKING_PROCESSING_DELAY" envDefault:"2s"`
	WalletBalance   int64         `env:"BOOKING_WALLET_BALANCE" envDefault:"5000"`
	ForgotDelay     time.Duration `env:"FORGOT_PASSWORD_DELAY" envDefault:"2s"`
}

// Wallet returns the demo wallet balance as money.
func (b BookingConfig) Wallet() decimal.Decimal { return decimal.NewFromInt(b.WalletBalance) }

type LoggerConfig struct {
	Level  string `env:"LOGGER_LEVEL" envDefault:"info"`
	AsJSON bool   `env:"LOGGER_AS_JSON" envDefault:"false"`
}

type SessionConfig struct {
	TTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	Prefix string        `env:"SESSION_PREFIX" envDefault:"session"`
}

// Load reads configuration values from environment variables.  When
// APP_ENV is "local" a .env file is loaded first; a missing file is not an
// error.
func Load(path ...string) (Config, error) {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	cfg.RateLimit = cfg.RateLimit.normalize()
	if cfg.Redis.Host != "" && cfg.Redis.Port != "" {
		cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port
	}
	return cfg, nil
}

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
