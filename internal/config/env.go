package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level overrides read from INVASION_* variables.
// Command-line flags take precedence over these values.
type Env struct {
	FPS        int    `env:"INVASION_FPS"`
	ConfigPath string `env:"INVASION_CONFIG"`
	Preset     string `env:"INVASION_PRESET"`
	LogPath    string `env:"INVASION_LOG"`
	LogLevel   string `env:"INVASION_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads overrides from the environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
