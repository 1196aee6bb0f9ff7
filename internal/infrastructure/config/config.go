package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// InsecureDefaultSecret is the hardcoded fallback signing secret inherited
// from the original deployment. It is deliberately kept so the service boots
// without configuration, and main logs a warning whenever it is in use.
// Set JWT_SECRET in any real environment.
const InsecureDefaultSecret = "supersecretkey"

type Config struct {
	Port      string        `env:"PORT,       default=7070"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=supersecretkey"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/smarthealthcare"`
}

// RedisConfig controls the optional token revocation store. When Enabled is
// false no Redis connection is made and tokens remain purely stateless.
type RedisConfig struct {
	Enabled bool   `env:"REDIS_ENABLED, default=false"`
	Addr    string `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int    `env:"REDIS_DB,      default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
