package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Clinic ClinicConfig
	Redis  RedisConfig

	// SessionTTL bounds how long a browser session survives between visits.
	SessionTTL time.Duration `env:"SESSION_TTL, default=12h"`
}

type ClinicConfig struct {
	// BaseURL is the root of the remote clinic backend API.
	BaseURL string        `env:"CLINIC_API_URL, default=http://localhost:8081"`
	Timeout time.Duration `env:"CLINIC_API_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// SessionKeyPrefix namespaces session records on a shared instance.
	SessionKeyPrefix string `env:"REDIS_SESSION_KEY_PREFIX, default=session:"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
