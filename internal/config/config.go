// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/validation"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Addr string `env:"RENTIFUL_ADDR,default=:8080" json:"addr" validate:"required"`

	DBDriver string `env:"DB_DRIVER,default=sqlite" json:"dbDriver" validate:"oneof=sqlite pgx"`
	DBDSN    string `env:"DB_DSN,default=./data/rentiful.db" json:"dbDsn" validate:"required"`

	// TxTimeout bounds every atomic write.
	TxTimeout time.Duration `env:"TX_TIMEOUT,default=5s" json:"txTimeout" validate:"gt=0"`

	JWTSecret string        `env:"JWT_SECRET" json:"jwtSecret"`
	JWTTTL    time.Duration `env:"JWT_TTL,default=24h" json:"jwtTtl" validate:"gt=0"`

	// RedisAddr enables the application listing cache when set.
	RedisAddr     string        `env:"REDIS_ADDR" json:"redisAddr"`
	RedisPassword string        `env:"REDIS_PASSWORD" json:"redisPassword"`
	RedisDB       int           `env:"REDIS_DB,default=0" json:"redisDb" validate:"gte=0"`
	CacheTTL      time.Duration `env:"CACHE_TTL,default=30s" json:"cacheTtl" validate:"gt=0"`

	// PaymentsSchedule is a cron expression; empty disables the realizer.
	PaymentsSchedule   string        `env:"PAYMENTS_SCHEDULE,default=@hourly" json:"paymentsSchedule"`
	PaymentGracePeriod time.Duration `env:"PAYMENT_GRACE_PERIOD,default=120h" json:"paymentGracePeriod" validate:"gte=0"`

	LogLevel  string `env:"LOG_LEVEL,default=info" json:"logLevel"`
	LogFormat string `env:"LOG_FORMAT,default=text" json:"logFormat" validate:"oneof=text json"`
}

// Load reads the given .env files (missing files are ignored), then decodes
// and validates the environment.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// RequireJWTSecret reports an error when no signing secret is configured.
// Only commands that mint or verify tokens need one.
func (c *Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	return nil
}
