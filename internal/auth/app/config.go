package app

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Secret is the shared HMAC key for signing and verifying access
	// tokens. Must be at least 32 bytes.
	Secret string `env:"AUTH_SECRET,required"`

	Issuer   string `env:"AUTH_ISSUER" envDefault:"rydo-auth"`
	Audience string `env:"AUTH_AUDIENCE" envDefault:"rydo-api"`

	AccessTTL  time.Duration `env:"AUTH_ACCESS_TTL" envDefault:"15m"`
	RefreshTTL time.Duration `env:"AUTH_REFRESH_TTL" envDefault:"4380h"` // ~6 months
	ClockSkew  time.Duration `env:"AUTH_CLOCK_SKEW" envDefault:"30s"`

	DatabaseFile string `env:"AUTH_DATABASE_FILE" envDefault:"auth.db"`
	PepperFile   string `env:"AUTH_PEPPER_FILE" envDefault:"pepper"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Port                 int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads configuration from the environment. Missing required
// variables (AUTH_SECRET) are reported as errors, not defaults.
func LoadConfig() (Config, error) {
	return env.ParseAs[Config]()
}
