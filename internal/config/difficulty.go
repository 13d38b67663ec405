package config

import (
	"fmt"
	"strings"
)

// ParsePreset converts a CLI/env string into a preset.
// An empty string means "no preset" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return "", nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyHard:
		return DifficultyHard, nil
	case DifficultyFixed:
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values; fixed disables the per-level speed-up.
func ApplyPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Limit = 5
		cfg.Bullet.Allowed = 5
		cfg.Scaling.Speedup = 1.05
		cfg.Dynamic.AlienSpeed = 0.75
	case DifficultyHard:
		cfg.Ship.Limit = 2
		cfg.Bullet.Allowed = 2
		cfg.Scaling.Speedup = 1.2
		cfg.Dynamic.AlienSpeed = 1.5
		cfg.Fleet.DropSpeed = 15
	case DifficultyFixed:
		cfg.Scaling.Speedup = 1.0
		cfg.Scaling.Score = 1.0
	}
}
