package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Direction is the shared horizontal sign of the fleet.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Settings holds the static and dynamic values of a session.
// Static fields never change once built; dynamic fields are reinitialized
// at the start of every game and only grow via IncreaseSpeed.
type Settings struct {
	// Static
	ScreenWidth    int
	ScreenHeight   int
	ShipLimit      int
	ShipWidth      int
	ShipHeight     int
	BulletWidth    int
	BulletHeight   int
	BulletsAllowed int
	AlienWidth     int
	AlienHeight    int
	FleetDropSpeed int
	SpeedupScale   float64
	ScoreScale     float64
	LifeLostPause  float64 // Seconds

	ShipColor   core.Color
	BulletColor core.Color
	AlienColor  core.Color

	// Dynamic
	ShipSpeed      float64
	BulletSpeed    float64
	AlienSpeed     float64
	FleetDirection Direction
	AlienPoints    int

	initial config.DynamicConfig
}

// NewSettings builds settings from a loaded config and initializes the
// dynamic fields.
func NewSettings(cfg config.InvasionConfig) *Settings {
	s := &Settings{
		ScreenWidth:    cfg.Screen.Width,
		ScreenHeight:   cfg.Screen.Height,
		ShipLimit:      cfg.Ship.Limit,
		ShipWidth:      cfg.Ship.Width,
		ShipHeight:     cfg.Ship.Height,
		BulletWidth:    cfg.Bullet.Width,
		BulletHeight:   cfg.Bullet.Height,
		BulletsAllowed: cfg.Bullet.Allowed,
		AlienWidth:     cfg.Alien.Width,
		AlienHeight:    cfg.Alien.Height,
		FleetDropSpeed: cfg.Fleet.DropSpeed,
		SpeedupScale:   cfg.Scaling.Speedup,
		ScoreScale:     cfg.Scaling.Score,
		LifeLostPause:  cfg.Timing.LifeLostPause,

		ShipColor:   colorOr(cfg.Ship.Color, core.ColorBrightCyan),
		BulletColor: colorOr(cfg.Bullet.Color, core.ColorGray),
		AlienColor:  colorOr(cfg.Alien.Color, core.ColorBrightGreen),

		initial: cfg.Dynamic,
	}
	s.InitializeDynamicSettings()
	return s
}

// InitializeDynamicSettings resets the settings that change during a game.
func (s *Settings) InitializeDynamicSettings() {
	s.ShipSpeed = s.initial.ShipSpeed
	s.BulletSpeed = s.initial.BulletSpeed
	s.AlienSpeed = s.initial.AlienSpeed
	s.FleetDirection = DirRight
	s.AlienPoints = s.initial.AlienPoints
}

// IncreaseSpeed speeds the game up and raises the alien point value.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale

	s.AlienPoints = int(float64(s.AlienPoints) * s.ScoreScale)
}

// ScreenRect returns the world bounds as a rectangle at the origin.
func (s *Settings) ScreenRect() core.Rect {
	return core.NewRect(0, 0, s.ScreenWidth, s.ScreenHeight)
}

func colorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}
