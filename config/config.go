package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// MinJWTSecretLength applies outside development.
const MinJWTSecretLength = 32

var errMissingSecret = errors.New("JWT_SECRET is required")

// Config is built once at start-up and handed to every component that needs it.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	Env       string `env:"APP_ENV" envDefault:"production"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"host=localhost port=5432 user=postgres password=postgres dbname=portfolio sslmode=disable"`

	JWTSecret     string        `env:"JWT_SECRET"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"168h"`

	AuthCookieName   string `env:"AUTH_COOKIE_NAME" envDefault:"token"`
	AuthCookieSecure bool   `env:"AUTH_COOKIE_SECURE" envDefault:"false"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	LoginRateLimit float64 `env:"LOGIN_RATE_LIMIT" envDefault:"0.5"`
	LoginBurst     int     `env:"LOGIN_BURST" envDefault:"5"`

	RedisURL    string        `env:"REDIS_URL"`
	CachePrefix string        `env:"CACHE_PREFIX" envDefault:"portfolio:"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errMissingSecret
	}
	if !c.IsDevelopment() && len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes outside development, got %d", MinJWTSecretLength, len(c.JWTSecret))
	}
	if c.JWTExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive, got %s", c.JWTExpiration)
	}
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
