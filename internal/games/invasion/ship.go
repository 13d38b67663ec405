package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Ship is the player's ship. It sits on the bottom edge and only moves
// horizontally.
type Ship struct {
	rect  core.Rect
	x     float64 // Exact horizontal position; rect.X is its truncation
	color core.Color

	MovingLeft  bool
	MovingRight bool
}

// NewShip creates a ship centered at the bottom of the screen.
func NewShip(s *Settings) *Ship {
	sh := &Ship{
		rect:  core.NewRect(0, 0, s.ShipWidth, s.ShipHeight),
		color: s.ShipColor,
	}
	sh.Center(s)
	return sh
}

// Center moves the ship to the middle of the bottom edge.
func (sh *Ship) Center(s *Settings) {
	sh.rect = s.ScreenRect().MidBottom(sh.rect.W, sh.rect.H)
	sh.x = float64(sh.rect.X)
}

// Update applies the movement flags. Right and left are checked
// independently, so holding both still moves the ship.
func (sh *Ship) Update(s *Settings) {
	if sh.MovingRight && sh.rect.Right() < s.ScreenWidth {
		sh.x += s.ShipSpeed
	}
	if sh.MovingLeft && sh.rect.X > 0 {
		sh.x -= s.ShipSpeed
	}
	sh.rect.X = int(sh.x)
}

// Rect returns the ship's bounding box.
func (sh *Ship) Rect() core.Rect {
	return sh.rect
}

// X returns the exact horizontal position.
func (sh *Ship) X() float64 {
	return sh.x
}

// Draw returns the ship's draw command.
func (sh *Ship) Draw() DrawCommand {
	return DrawCommand{Kind: KindShip, Rect: sh.rect, Color: sh.color}
}
