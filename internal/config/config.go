package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken      string        `envconfig:"BOT_TOKEN" required:"true"`
	DefaultTZ     string        `envconfig:"DEFAULT_TZ" default:"+0530"`  // +HHMM offset or IANA name
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"` // proactive check cadence
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`    // debug|info|warn|error
	HTTPAddr      string        `envconfig:"HTTP_ADDR" default:":8080"`   // liveness endpoint
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
