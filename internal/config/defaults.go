package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the default Alien Invasion configuration.
// It mirrors defaults/invasion.yaml and is used when the embedded file
// cannot be parsed.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Screen: ScreenConfig{
			Width:  1200,
			Height: 800,
		},
		Ship: ShipConfig{
			Limit:  3,
			Width:  60,
			Height: 48,
			Color:  "bright_cyan",
		},
		Bullet: BulletConfig{
			Width:   3,
			Height:  15,
			Allowed: 3,
			Color:   "gray",
		},
		Alien: AlienConfig{
			Width:  60,
			Height: 58,
			Color:  "bright_green",
		},
		Fleet: FleetConfig{
			DropSpeed: 10,
		},
		Scaling: ScalingConfig{
			Speedup: 1.1,
			Score:   1.5,
		},
		Dynamic: DynamicConfig{
			ShipSpeed:   1.5,
			BulletSpeed: 2.5,
			AlienSpeed:  1.0,
			AlienPoints: 50,
		},
		Timing: TimingConfig{
			LifeLostPause: 0.5,
		},
		Input: InputConfig{
			InitialHoldMS: 500,
			RepeatHoldMS:  120,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvasionYAML
}
