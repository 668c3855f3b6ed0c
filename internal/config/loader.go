package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	envConfigPath     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
)

// Load reads the service configuration and validates it.
// Values resolve as ENV, then YAML, then env-default tags. The YAML file is
// CONFIG_PATH when set, else ./config.yaml; only an explicit path must exist.
func Load() (*Config, error) {
	path := os.Getenv(envConfigPath)
	if path == "" {
		return load(defaultConfigPath, false)
	}
	return load(path, true)
}

func load(path string, required bool) (*Config, error) {
	var (
		cfg    Config
		err    error
		source = path
	)

	switch _, statErr := os.Stat(path); {
	case statErr == nil:
		err = cleanenv.ReadConfig(path, &cfg)
	case required:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		source = "env"
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", source, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
