package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Fleet is the collection of live aliens moving as one formation.
type Fleet struct {
	Aliens []*Alien
}

// Build clears the fleet and lays out a fresh grid.
//
// The cursor starts one alien in from the top-left corner. Aliens are placed
// left to right every two alien widths while x < W-2aw; rows are placed every
// two alien heights while y < H-3ah, which leaves room for the ship.
func (f *Fleet) Build(s *Settings) {
	f.Clear()

	aw, ah := s.AlienWidth, s.AlienHeight
	if aw <= 0 || ah <= 0 {
		return
	}

	for y := ah; y < s.ScreenHeight-3*ah; y += 2 * ah {
		for x := aw; x < s.ScreenWidth-2*aw; x += 2 * aw {
			f.Aliens = append(f.Aliens, NewAlien(s, x, y))
		}
	}
}

// Update runs the edge policy and then moves every alien.
// At most one flip and drop happens per call, no matter how many aliens
// touch an edge. Reports whether the fleet bounced.
func (f *Fleet) Update(s *Settings) bool {
	bounced := false
	for _, a := range f.Aliens {
		if a.AtEdge(s) {
			f.changeDirection(s)
			bounced = true
			break
		}
	}

	for _, a := range f.Aliens {
		a.Update(s)
	}
	return bounced
}

func (f *Fleet) changeDirection(s *Settings) {
	for _, a := range f.Aliens {
		a.Drop(s.FleetDropSpeed)
	}
	s.FleetDirection *= -1
}

// Len returns the number of live aliens.
func (f *Fleet) Len() int {
	return len(f.Aliens)
}

// Empty reports whether every alien has been destroyed.
func (f *Fleet) Empty() bool {
	return len(f.Aliens) == 0
}

// Clear removes every alien.
func (f *Fleet) Clear() {
	f.Aliens = f.Aliens[:0]
}

// Hits reports whether any alien overlaps r.
func (f *Fleet) Hits(r core.Rect) bool {
	for _, a := range f.Aliens {
		if a.rect.Intersects(r) {
			return true
		}
	}
	return false
}

// ReachedBottom reports whether any alien's bottom edge is at or below
// the given y.
func (f *Fleet) ReachedBottom(bottom int) bool {
	for _, a := range f.Aliens {
		if a.rect.Bottom() >= bottom {
			return true
		}
	}
	return false
}
