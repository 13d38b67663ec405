package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Projectile is a bullet fired upward by the ship.
type Projectile struct {
	rect  core.Rect
	y     float64
	color core.Color
}

// NewProjectile creates a projectile whose mid-top matches the ship's.
func NewProjectile(s *Settings, ship *Ship) *Projectile {
	sr := ship.Rect()
	p := &Projectile{
		rect:  core.NewRect(sr.CenterX()-s.BulletWidth/2, sr.Y, s.BulletWidth, s.BulletHeight),
		color: s.BulletColor,
	}
	p.y = float64(p.rect.Y)
	return p
}

// Update moves the projectile up by the current bullet speed.
func (p *Projectile) Update(s *Settings) {
	p.y -= s.BulletSpeed
	p.rect.Y = int(p.y)
}

// Expired reports whether the bottom edge has left the top of the screen.
func (p *Projectile) Expired() bool {
	return p.y+float64(p.rect.H) <= 0
}

// Rect returns the projectile's bounding box.
func (p *Projectile) Rect() core.Rect {
	return p.rect
}

// Draw returns the projectile's draw command.
func (p *Projectile) Draw() DrawCommand {
	return DrawCommand{Kind: KindProjectile, Rect: p.rect, Color: p.color}
}

// fireBullet adds a projectile unless the cap is reached.
// Returns the (possibly unchanged) collection and whether a bullet was added.
func fireBullet(s *Settings, ship *Ship, bullets []*Projectile) ([]*Projectile, bool) {
	if len(bullets) >= s.BulletsAllowed {
		return bullets, false
	}
	return append(bullets, NewProjectile(s, ship)), true
}

// updateBullets moves every projectile and drops the expired ones,
// keeping insertion order.
func updateBullets(s *Settings, bullets []*Projectile) []*Projectile {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Update(s)
		if !b.Expired() {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(bullets); i++ {
		bullets[i] = nil
	}
	return kept
}
