package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Variant picks the deployed listing profile: jobs, campaigns, or
	// marketplace.
	Variant string `env:"VARIANT, default=jobs"`

	Admin AdminConfig
	Login LoginConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AdminConfig describes the fixed administrator account seeded at first boot.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME,     default=Administrator"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@example.com"`
	Password string `env:"ADMIN_PASSWORD, default=admin"`
}

type LoginConfig struct {
	MaxAttempts int64         `env:"LOGIN_MAX_ATTEMPTS, default=10"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=listings"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
