package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	defaultConfigFile = "./config.yaml"
	defaultDotenvFile = ".env"
)

// Load builds the server configuration. Sources, strongest first:
// process environment, a dotenv file, a YAML file, env-default tags.
//
// CONFIG_PATH and DOTENV_PATH select the files. When a path is set
// explicitly the file must exist; the default locations are optional.
func Load() (*Config, error) {
	dotenv, dotenvExplicit := pathFromEnv("DOTENV_PATH", defaultDotenvFile)
	if err := godotenv.Load(dotenv); err != nil && !optionalMissing(err, dotenvExplicit) {
		return nil, fmt.Errorf("config: dotenv %s: %w", dotenv, err)
	}

	var cfg Config
	file, fileExplicit := pathFromEnv("CONFIG_PATH", defaultConfigFile)
	_, statErr := os.Stat(file)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(file, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	case optionalMissing(statErr, fileExplicit):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: file %s: %w", file, statErr)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func pathFromEnv(key, fallback string) (path string, explicit bool) {
	if v := os.Getenv(key); v != "" {
		return v, true
	}
	return fallback, false
}

func optionalMissing(err error, explicit bool) bool {
	return !explicit && errors.Is(err, fs.ErrNotExist)
}
