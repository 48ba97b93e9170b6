package config

import (
	"github.com/caarlos0/env/v11"
)

// loadFromEnv overrides configuration with UNICOURSE_-prefixed environment variables.
// Only variables that are set take effect; nested structs are walked by env tag.
func loadFromEnv(config *Config) error {
	return env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix})
}
