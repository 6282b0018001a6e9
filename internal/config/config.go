package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Colors   bool   `yaml:"colors" env:"COLORS" env-default:"true"`
}

// MustLoad - load all configurations in config.yml file. The file is
// optional: without one the game runs on environment values and defaults.
func MustLoad(path string) *Config {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}

		return config
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
