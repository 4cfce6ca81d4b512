package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable consulted when no --config flag is given.
const PathEnv = "CONFIG_PATH"

const defaultPath = "./config.yaml"

// Load is LoadFrom with the path taken from CONFIG_PATH.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(PathEnv))
}

// LoadFrom reads path (YAML), overlays environment variables and validates
// the result. Precedence is ENV > YAML > env-default tags.
//
// An empty path tries ./config.yaml and silently falls back to ENV only
// when that file is absent. A non-empty path must exist.
func LoadFrom(path string) (*Config, error) {
	file, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if file == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(file, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", describe(file), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// resolvePath returns the YAML file to read, or "" for ENV-only loading.
func resolvePath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("file %s: %w", path, err)
		}
		return path, nil
	}

	_, err := os.Stat(defaultPath)
	switch {
	case err == nil:
		return defaultPath, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("file %s: %w", defaultPath, err)
	}
}

func describe(file string) string {
	if file == "" {
		return "environment"
	}
	return file
}
