package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a config describes an unplayable game.
var ErrInvalidConfig = errors.New("invalid config")

// configFile is the file name searched for in the config directories.
const configFile = "invasion.yaml"

// Load loads the Alien Invasion configuration.
// Search order: customPath -> ~/.invasion/configs/invasion.yaml -> ./configs/invasion.yaml -> embedded default.
// Only an explicit customPath may fail; the other locations are skipped when
// missing or unparsable. The result is always validated.
func Load(customPath string) (InvasionConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, Validate(cfg)
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, Validate(cfg)
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", configFile)); err == nil {
		return cfg, Validate(cfg)
	}

	cfg, err := Parse(defaultInvasionYAML)
	if err != nil {
		return DefaultInvasionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and parses a single YAML config file.
// Fields missing from the file keep their default values.
func LoadFile(path string) (InvasionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvasionConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return InvasionConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration.
func Parse(data []byte) (InvasionConfig, error) {
	cfg := DefaultInvasionConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvasionConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the config can produce a playable game: the fleet
// builder needs room for at least one alien and the speed-up factors must
// never slow the game down.
func Validate(cfg InvasionConfig) error {
	switch {
	case cfg.Alien.Width <= 0 || cfg.Alien.Height <= 0:
		return fmt.Errorf("%w: alien size %dx%d must be positive", ErrInvalidConfig, cfg.Alien.Width, cfg.Alien.Height)
	case cfg.Ship.Width <= 0 || cfg.Ship.Height <= 0:
		return fmt.Errorf("%w: ship size %dx%d must be positive", ErrInvalidConfig, cfg.Ship.Width, cfg.Ship.Height)
	case cfg.Bullet.Width <= 0 || cfg.Bullet.Height <= 0:
		return fmt.Errorf("%w: bullet size %dx%d must be positive", ErrInvalidConfig, cfg.Bullet.Width, cfg.Bullet.Height)
	case cfg.Screen.Width <= 3*cfg.Alien.Width:
		return fmt.Errorf("%w: screen width %d must exceed 3 alien widths", ErrInvalidConfig, cfg.Screen.Width)
	case cfg.Screen.Height <= 5*cfg.Alien.Height:
		return fmt.Errorf("%w: screen height %d must exceed 5 alien heights", ErrInvalidConfig, cfg.Screen.Height)
	case cfg.Ship.Width > cfg.Screen.Width || cfg.Ship.Height > cfg.Screen.Height:
		return fmt.Errorf("%w: ship does not fit on screen", ErrInvalidConfig)
	case cfg.Ship.Limit < 1:
		return fmt.Errorf("%w: ship limit %d must be at least 1", ErrInvalidConfig, cfg.Ship.Limit)
	case cfg.Bullet.Allowed < 0:
		return fmt.Errorf("%w: bullets allowed %d must not be negative", ErrInvalidConfig, cfg.Bullet.Allowed)
	case cfg.Fleet.DropSpeed < 0:
		return fmt.Errorf("%w: fleet drop speed %d must not be negative", ErrInvalidConfig, cfg.Fleet.DropSpeed)
	case cfg.Dynamic.ShipSpeed <= 0 || cfg.Dynamic.BulletSpeed <= 0 || cfg.Dynamic.AlienSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case cfg.Dynamic.AlienPoints < 0:
		return fmt.Errorf("%w: alien points %d must not be negative", ErrInvalidConfig, cfg.Dynamic.AlienPoints)
	case cfg.Scaling.Speedup < 1 || cfg.Scaling.Score < 1:
		return fmt.Errorf("%w: scaling factors must be at least 1", ErrInvalidConfig)
	case cfg.Timing.LifeLostPause < 0:
		return fmt.Errorf("%w: life lost pause must not be negative", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invasion", "configs", filename)
}
