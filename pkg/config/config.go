package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvLocal = "local"

	// DefaultSecretKey signs flash cookies when SECRET_KEY is not set. Only
	// suitable for local development.
	DefaultSecretKey = "dev-secret"
)

var Empty = &Config{
	AppEnv:    EnvLocal,
	Port:      5000,
	SecretKey: DefaultSecretKey,
	Log: LogConfig{
		Level:  "info",
		Format: "json",
	},
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"local"`
	Port      int    `envconfig:"PORT" default:"5000"`
	SecretKey string `envconfig:"SECRET_KEY" default:"dev-secret"`
	SentryDSN string `envconfig:"SENTRY_DSN"`

	Log LogConfig

	DB struct {
		Driver      string        `envconfig:"DB_DRIVER" default:"sqlite"`
		Path        string        `envconfig:"DB_PATH" default:"contacts.db"`
		BusyTimeout time.Duration `envconfig:"DB_BUSY_TIMEOUT" default:"3s"`
		Name        string        `envconfig:"DB_NAME"`
		Host        string        `envconfig:"DB_HOST"`
		Port        int           `envconfig:"DB_PORT" default:"5432"`
		User        string        `envconfig:"DB_USER"`
		Pass        string        `envconfig:"DB_PASS"`
		EnableSSL   bool          `envconfig:"ENABLE_SSL"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}

// InsecureSecret reports whether flash cookies are signed with the built-in
// development key outside of a local environment.
func (c *Config) InsecureSecret() bool {
	return c.SecretKey == DefaultSecretKey && c.AppEnv != EnvLocal
}
