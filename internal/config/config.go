package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Port string `env:"PORT" envDefault:"4242"`

	StoreDriver   string `env:"STORE_DRIVER" envDefault:"mongo"`
	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"hub"`
	PostgresDSN   string `env:"POSTGRES_DSN"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"hub.db"`

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h"`

	RedisURL      string `env:"REDIS_URL"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	NatsURL string `env:"NATS_URL"`

	EmailAPIKey string `env:"EMAIL_API_KEY"`
	EmailSender string `env:"EMAIL_SENDER" envDefault:"no-reply@42hub.dev"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`

	LoginAttemptsMax    int           `env:"LOGIN_ATTEMPTS_MAX" envDefault:"10"`
	LoginAttemptsWindow time.Duration `env:"LOGIN_ATTEMPTS_WINDOW" envDefault:"1m"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMongo, StoreSQLite:
	case StorePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required when STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.LoginAttemptsMax <= 0 {
		return fmt.Errorf("LOGIN_ATTEMPTS_MAX must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
