package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when UNICOURSE_CONFIG is not set
const DefaultConfigPath = "configs/config.yaml"

// ConfigPathEnv names the environment variable that points at the config file
const ConfigPathEnv = "UNICOURSE_CONFIG"

// EnvPrefix is prepended to every env tag
const EnvPrefix = "UNICOURSE_"

// Config structure represents the application configuration.
// It only tunes diagnostics on stderr; command output never depends on it.
type Config struct {
	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error", "fatal", "disabled"}
	validLogFormats = []string{"text", "json"}
)

// Default returns the configuration used when nothing else is given
func Default() *Config {
	config := &Config{}
	setDefaults(config)
	return config
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	// A missing file is fine, defaults and env still apply
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Logging.Level = "warn"
	config.Logging.Format = "text"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	if !contains(validLogLevels, config.Logging.Level) {
		return fmt.Errorf("log level %q must be one of %s", config.Logging.Level, strings.Join(validLogLevels, ", "))
	}

	if !contains(validLogFormats, config.Logging.Format) {
		return fmt.Errorf("log format %q must be one of %s", config.Logging.Format, strings.Join(validLogFormats, ", "))
	}

	return nil
}

// ResolvePath returns the config file path from the environment or the default
func ResolvePath() string {
	if path, ok := os.LookupEnv(ConfigPathEnv); ok && path != "" {
		return path
	}
	return DefaultConfigPath
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
