package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=http://localhost:3000"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host            string        `env:"DB_HOST,     default=localhost"`
	Port            string        `env:"DB_PORT,     default=5432"`
	User            string        `env:"DB_USER,     default=postgres"`
	Password        string        `env:"DB_PASSWORD, default=postgres"`
	DBName          string        `env:"DB_NAME,     default=aquapure_portal"`
	SSLMode         string        `env:"DB_SSLMODE,  default=disable"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS, default=5"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS, default=20"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
}

// DSN returns the PostgreSQL connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
