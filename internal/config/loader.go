package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load assembles the configuration from three layers, later layers winning:
// env-default tag values, the YAML file, then environment variables.
// CONFIG_PATH selects the file. When it is unset, ./config.yaml is read if
// present and the env-only path is taken otherwise; an explicitly set
// CONFIG_PATH pointing at a missing file is an error, never a silent
// fallback.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := configPath()
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config from env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func configPath() (path string, explicit bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultConfigPath, false
}
