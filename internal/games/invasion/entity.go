package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// EntityKind identifies what a draw command depicts.
type EntityKind int

const (
	KindShip EntityKind = iota
	KindProjectile
	KindAlien
)

// String returns the lowercase name of the kind.
func (k EntityKind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindAlien:
		return "alien"
	default:
		return "unknown"
	}
}

// DrawCommand asks the platform to draw one entity.
type DrawCommand struct {
	Kind  EntityKind
	Rect  core.Rect // World units
	Color core.Color
}

// Entity is the behaviour shared by everything that moves on screen.
// Settings are passed on every call; entities keep no reference to them.
type Entity interface {
	Update(s *Settings)
	Rect() core.Rect
	Draw() DrawCommand
}

var (
	_ Entity = (*Ship)(nil)
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Alien)(nil)
)
