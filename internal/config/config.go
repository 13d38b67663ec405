// Package config provides YAML-based game configuration loading,
// difficulty presets and environment overrides for Alien Invasion.
package config

// InvasionConfig contains all tunable values for the game.
// Distances are in world units, speeds in world units per tick.
type InvasionConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Ship    ShipConfig    `yaml:"ship"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Alien   AlienConfig   `yaml:"alien"`
	Fleet   FleetConfig   `yaml:"fleet"`
	Scaling ScalingConfig `yaml:"scaling"`
	Dynamic DynamicConfig `yaml:"dynamic"`
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
}

// ScreenConfig defines the world size. It is fixed for a session and
// independent of the terminal size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Limit  int    `yaml:"limit"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
}

// BulletConfig defines the player's projectiles.
type BulletConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Allowed int    `yaml:"allowed"`
	Color   string `yaml:"color"`
}

// AlienConfig defines a single alien sprite.
type AlienConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
}

// FleetConfig defines fleet movement.
type FleetConfig struct {
	DropSpeed int `yaml:"drop_speed"`
}

// ScalingConfig defines how the game speeds up on every cleared level.
type ScalingConfig struct {
	Speedup float64 `yaml:"speedup"` // Applied to ship, bullet and alien speed
	Score   float64 `yaml:"score"`   // Applied to alien points
}

// DynamicConfig holds the starting values of settings that change during play.
type DynamicConfig struct {
	ShipSpeed   float64 `yaml:"ship_speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	AlienSpeed  float64 `yaml:"alien_speed"`
	AlienPoints int     `yaml:"alien_points"`
}

// TimingConfig defines real-time pauses.
type TimingConfig struct {
	LifeLostPause float64 `yaml:"life_lost_pause"` // Seconds
}

// InputConfig tunes how terminal key repeats are turned into held keys.
type InputConfig struct {
	InitialHoldMS int `yaml:"initial_hold_ms"` // Release delay after the first press
	RepeatHoldMS  int `yaml:"repeat_hold_ms"`  // Release delay after an auto-repeat
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
