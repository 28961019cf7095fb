package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration, read from the environment.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AuthConfig tunes the credential and token machinery. BcryptCost is the
// password-hash work factor; TokenTTL bounds session lifetime (expiry is the
// only token invalidation mechanism).
type AuthConfig struct {
	JWTSecret   string        `env:"JWT_SECRET, required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,   default=24h"`
	BcryptCost  int           `env:"BCRYPT_COST, default=10"`
	LoginLimit  int           `env:"LOGIN_ATTEMPT_LIMIT,  default=0"`
	LoginWindow time.Duration `env:"LOGIN_ATTEMPT_WINDOW, default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=vending_machine"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
