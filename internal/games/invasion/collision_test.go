package invasion

import (
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// bulletAt creates a projectile covering r.
func bulletAt(r core.Rect) *Projectile {
	return &Projectile{rect: r, y: float64(r.Y)}
}

func TestResolveCollisionsUnordered(t *testing.T) {
	s := newTestSettings()
	f := &Fleet{}
	f.Build(s)

	a0 := f.Aliens[0].Rect()
	a1 := f.Aliens[1].Rect()

	bullets := []*Projectile{
		bulletAt(core.NewRect(a0.X+10, a0.Y+10, 3, 15)), // hits alien 0
		bulletAt(core.NewRect(a0.X+20, a0.Y+10, 3, 15)), // also hits alien 0
		bulletAt(core.NewRect(a1.X+10, a1.Y+10, 3, 15)), // hits alien 1
		bulletAt(core.NewRect(600, 700, 3, 15)),         // misses
	}

	kept, destroyed := resolveCollisions(bullets, f)
	if destroyed != 2 {
		t.Errorf("destroyed = %d, expected 2", destroyed)
	}
	if len(kept) != 1 || kept[0].Rect().Y != 700 {
		t.Errorf("kept %d bullets, expected only the miss", len(kept))
	}
	if f.Len() != 43 {
		t.Errorf("fleet Len() = %d, expected 43", f.Len())
	}
}

func TestResolveCollisionsWideProjectile(t *testing.T) {
	s := newTestSettings()
	f := &Fleet{}
	f.Build(s)

	// One projectile spanning the first two aliens of the top row
	bullets := []*Projectile{bulletAt(core.NewRect(60, 58, 200, 15))}
	kept, destroyed := resolveCollisions(bullets, f)

	if destroyed != 2 {
		t.Errorf("destroyed = %d, expected 2", destroyed)
	}
	if len(kept) != 0 {
		t.Errorf("kept %d bullets, expected 0", len(kept))
	}
}

func TestScoringPerDestroyedAlien(t *testing.T) {
	tests := []struct {
		name      string
		hits      int
		highScore int
		expScore  int
		expHigh   int
	}{
		{"one alien", 1, 0, 50, 50},
		{"three aliens", 3, 0, 150, 150},
		{"below high score", 2, 120, 100, 120},
		{"equal to high score", 2, 100, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startedGame(t)
			g.stats.HighScore = tt.highScore

			for i := range tt.hits {
				r := g.fleet.Aliens[i].Rect()
				g.bullets = append(g.bullets, bulletAt(core.NewRect(r.X+5, r.Y+5, 3, 15)))
			}
			g.checkBulletAlienCollisions()

			if g.stats.Score != tt.expScore {
				t.Errorf("Score = %d, expected %d", g.stats.Score, tt.expScore)
			}
			if g.stats.HighScore != tt.expHigh {
				t.Errorf("HighScore = %d, expected %d", g.stats.HighScore, tt.expHigh)
			}
		})
	}
}

func TestLevelRollover(t *testing.T) {
	g := startedGame(t)
	g.fleet.Aliens = g.fleet.Aliens[:1]
	r := g.fleet.Aliens[0].Rect()
	g.bullets = append(g.bullets,
		bulletAt(core.NewRect(r.X+5, r.Y+5, 3, 15)),
		bulletAt(core.NewRect(600, 600, 3, 15)),
	)
	shipSpeed := g.settings.ShipSpeed
	alienSpeed := g.settings.AlienSpeed

	if !g.checkBulletAlienCollisions() {
		t.Fatal("checkBulletAlienCollisions() = false, expected a cleared level")
	}

	if g.stats.Level != 2 {
		t.Errorf("Level = %d, expected 2", g.stats.Level)
	}
	if g.stats.Score != 50 {
		t.Errorf("Score = %d, expected 50 (points before the increase)", g.stats.Score)
	}
	if g.settings.AlienPoints != 75 {
		t.Errorf("AlienPoints = %d, expected 75", g.settings.AlienPoints)
	}
	if !almostEqual(g.settings.ShipSpeed, shipSpeed*1.1) || !almostEqual(g.settings.AlienSpeed, alienSpeed*1.1) {
		t.Errorf("speeds = %v/%v, expected x1.1", g.settings.ShipSpeed, g.settings.AlienSpeed)
	}
	if g.fleet.Len() != 45 {
		t.Errorf("fleet Len() = %d, expected one rebuild of 45", g.fleet.Len())
	}
	if len(g.bullets) != 0 {
		t.Errorf("len(bullets) = %d, expected 0", len(g.bullets))
	}
}

func TestNoRolloverWhileAliensRemain(t *testing.T) {
	g := startedGame(t)
	if g.checkBulletAlienCollisions() {
		t.Error("checkBulletAlienCollisions() = true with a full fleet")
	}
	if g.stats.Level != 1 {
		t.Errorf("Level = %d, expected 1", g.stats.Level)
	}
}
