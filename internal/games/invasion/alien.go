package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Alien is a single member of the fleet. Direction and speed are shared
// through Settings; an alien has no velocity of its own.
type Alien struct {
	rect  core.Rect
	x     float64
	color core.Color
}

// NewAlien creates an alien with its top-left corner at (x, y).
func NewAlien(s *Settings, x, y int) *Alien {
	return &Alien{
		rect:  core.NewRect(x, y, s.AlienWidth, s.AlienHeight),
		x:     float64(x),
		color: s.AlienColor,
	}
}

// AtEdge reports whether the alien touches or passes either side.
func (a *Alien) AtEdge(s *Settings) bool {
	return a.rect.Right() >= s.ScreenWidth || a.rect.X <= 0
}

// Update moves the alien along the fleet direction.
func (a *Alien) Update(s *Settings) {
	a.x += s.AlienSpeed * float64(s.FleetDirection)
	a.rect.X = int(a.x)
}

// Drop moves the alien down by dy.
func (a *Alien) Drop(dy int) {
	a.rect.Y += dy
}

// Rect returns the alien's bounding box.
func (a *Alien) Rect() core.Rect {
	return a.rect
}

// Draw returns the alien's draw command.
func (a *Alien) Draw() DrawCommand {
	return DrawCommand{Kind: KindAlien, Rect: a.rect, Color: a.color}
}
