package invasion

import (
	"math"
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

func newTestSettings() *Settings {
	return NewSettings(config.DefaultInvasionConfig())
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSettingsDefaults(t *testing.T) {
	s := newTestSettings()

	if s.ShipSpeed != 1.5 || s.BulletSpeed != 2.5 || s.AlienSpeed != 1.0 {
		t.Errorf("speeds = %v/%v/%v, expected 1.5/2.5/1.0", s.ShipSpeed, s.BulletSpeed, s.AlienSpeed)
	}
	if s.FleetDirection != DirRight {
		t.Errorf("FleetDirection = %d, expected %d", s.FleetDirection, DirRight)
	}
	if s.AlienPoints != 50 {
		t.Errorf("AlienPoints = %d, expected 50", s.AlienPoints)
	}
	if s.ShipLimit != 3 || s.BulletsAllowed != 3 {
		t.Errorf("limits = %d/%d, expected 3/3", s.ShipLimit, s.BulletsAllowed)
	}
	if s.AlienColor != core.ColorBrightGreen {
		t.Errorf("AlienColor = %d, expected bright green", s.AlienColor)
	}
}

func TestSettingsIncreaseSpeed(t *testing.T) {
	s := newTestSettings()
	s.IncreaseSpeed()

	if s.AlienPoints != 75 {
		t.Errorf("AlienPoints = %d, expected 75", s.AlienPoints)
	}
	if !almostEqual(s.ShipSpeed, 1.5*1.1) {
		t.Errorf("ShipSpeed = %v, expected %v", s.ShipSpeed, 1.5*1.1)
	}
	if !almostEqual(s.BulletSpeed, 2.5*1.1) {
		t.Errorf("BulletSpeed = %v, expected %v", s.BulletSpeed, 2.5*1.1)
	}
	if !almostEqual(s.AlienSpeed, 1.1) {
		t.Errorf("AlienSpeed = %v, expected 1.1", s.AlienSpeed)
	}

	// 75 * 1.5 = 112.5 truncates
	s.IncreaseSpeed()
	if s.AlienPoints != 112 {
		t.Errorf("AlienPoints = %d, expected 112", s.AlienPoints)
	}
}

func TestSettingsInitializeDynamicIsIdempotent(t *testing.T) {
	s := newTestSettings()
	s.IncreaseSpeed()
	s.FleetDirection = DirLeft

	s.InitializeDynamicSettings()
	first := *s
	s.InitializeDynamicSettings()

	if *s != first {
		t.Error("InitializeDynamicSettings() is not idempotent")
	}
	if s.AlienPoints != 50 || s.ShipSpeed != 1.5 || s.FleetDirection != DirRight {
		t.Errorf("dynamic settings not reset: %+v", *s)
	}
}

func TestStats(t *testing.T) {
	st := NewStats(newTestSettings())

	if st.ShipsLeft != 3 || st.Score != 0 || st.Level != 1 || st.HighScore != 0 {
		t.Fatalf("NewStats() = %+v, expected ships=3 score=0 level=1 high=0", *st)
	}

	if !st.AddScore(100) {
		t.Error("AddScore(100) should set a new high score")
	}
	st.ResetStats()
	if st.HighScore != 100 {
		t.Errorf("HighScore after reset = %d, expected 100", st.HighScore)
	}
	if st.AddScore(50) {
		t.Error("AddScore(50) should not beat 100")
	}
	if st.HighScore != 100 {
		t.Errorf("HighScore = %d, expected 100", st.HighScore)
	}
	if !st.AddScore(51) || st.HighScore != 101 {
		t.Errorf("HighScore = %d, expected 101", st.HighScore)
	}
}

func TestShipCenter(t *testing.T) {
	s := newTestSettings()
	sh := NewShip(s)

	expected := core.NewRect(570, 752, 60, 48)
	if sh.Rect() != expected {
		t.Errorf("Rect() = %+v, expected %+v", sh.Rect(), expected)
	}
	if sh.X() != 570 {
		t.Errorf("X() = %v, expected 570", sh.X())
	}
}

func TestShipUpdate(t *testing.T) {
	tests := []struct {
		name          string
		left, right   bool
		ticks         int
		expectedX     float64
		expectedRectX int
	}{
		{"idle", false, false, 10, 570, 570},
		{"right", false, true, 1, 571.5, 571},
		{"right twice", false, true, 2, 573, 573},
		{"left", true, false, 1, 568.5, 568},
		{"both", true, true, 5, 570, 570},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSettings()
			sh := NewShip(s)
			sh.MovingLeft = tt.left
			sh.MovingRight = tt.right
			for range tt.ticks {
				sh.Update(s)
			}
			if sh.X() != tt.expectedX {
				t.Errorf("X() = %v, expected %v", sh.X(), tt.expectedX)
			}
			if sh.Rect().X != tt.expectedRectX {
				t.Errorf("Rect().X = %d, expected %d", sh.Rect().X, tt.expectedRectX)
			}
		})
	}
}

func TestShipStaysOnScreen(t *testing.T) {
	s := newTestSettings()
	sh := NewShip(s)

	sh.MovingRight = true
	for range 1000 {
		sh.Update(s)
	}
	stopped := sh.Rect().X
	sh.Update(s)
	if sh.Rect().X != stopped {
		t.Errorf("ship kept moving right past the edge: %d -> %d", stopped, sh.Rect().X)
	}
	if sh.Rect().Right() < s.ScreenWidth {
		t.Errorf("Right() = %d, expected to reach %d", sh.Rect().Right(), s.ScreenWidth)
	}

	sh.MovingRight = false
	sh.MovingLeft = true
	for range 1000 {
		sh.Update(s)
	}
	if sh.Rect().X != 0 {
		t.Errorf("Rect().X = %d, expected 0 at the left edge", sh.Rect().X)
	}
}

func TestProjectileSpawnsAtShipMidTop(t *testing.T) {
	s := newTestSettings()
	sh := NewShip(s)
	p := NewProjectile(s, sh)

	expected := core.NewRect(599, 752, 3, 15)
	if p.Rect() != expected {
		t.Errorf("Rect() = %+v, expected %+v", p.Rect(), expected)
	}
	if p.Draw().Color != core.ColorGray {
		t.Errorf("Draw().Color = %d, expected gray", p.Draw().Color)
	}
}

func TestProjectileCap(t *testing.T) {
	s := newTestSettings()
	sh := NewShip(s)

	var bullets []*Projectile
	added := 0
	for range s.BulletsAllowed + 1 {
		var ok bool
		bullets, ok = fireBullet(s, sh, bullets)
		if ok {
			added++
		}
	}

	if len(bullets) != s.BulletsAllowed {
		t.Errorf("len(bullets) = %d, expected %d", len(bullets), s.BulletsAllowed)
	}
	if added != s.BulletsAllowed {
		t.Errorf("added = %d, expected %d", added, s.BulletsAllowed)
	}
}

func TestProjectileExpiry(t *testing.T) {
	tests := []struct {
		bottom float64
		speed  float64
		ticks  int // ceil(bottom/speed)
	}{
		{100, 2.5, 40},
		{10, 3, 4},
		{767, 2.5, 307},
		{15, 15, 1},
	}

	for _, tt := range tests {
		s := newTestSettings()
		s.BulletSpeed = tt.speed

		p := &Projectile{rect: core.NewRect(0, int(tt.bottom)-15, 3, 15), y: tt.bottom - 15}
		bullets := []*Projectile{p}

		for i := 1; i < tt.ticks; i++ {
			bullets = updateBullets(s, bullets)
			if len(bullets) != 1 {
				t.Fatalf("bottom=%v speed=%v: removed after %d ticks, expected %d", tt.bottom, tt.speed, i, tt.ticks)
			}
		}
		bullets = updateBullets(s, bullets)
		if len(bullets) != 0 {
			t.Errorf("bottom=%v speed=%v: still alive after %d ticks", tt.bottom, tt.speed, tt.ticks)
		}
	}
}

func TestUpdateBulletsKeepsOrder(t *testing.T) {
	s := newTestSettings()
	gone := &Projectile{rect: core.NewRect(0, -14, 3, 15), y: -14}
	a := &Projectile{rect: core.NewRect(10, 400, 3, 15), y: 400}
	b := &Projectile{rect: core.NewRect(20, 500, 3, 15), y: 500}

	bullets := updateBullets(s, []*Projectile{a, gone, b})
	if len(bullets) != 2 || bullets[0] != a || bullets[1] != b {
		t.Errorf("updateBullets() kept %d bullets, expected [a b] in order", len(bullets))
	}
}

func TestAlienAtEdge(t *testing.T) {
	s := newTestSettings()

	tests := []struct {
		x        int
		expected bool
	}{
		{0, true},
		{1, false},
		{600, false},
		{1139, false},
		{1140, true},
		{1200, true},
	}

	for _, tt := range tests {
		a := NewAlien(s, tt.x, 100)
		if got := a.AtEdge(s); got != tt.expected {
			t.Errorf("AtEdge() at x=%d = %v, expected %v", tt.x, got, tt.expected)
		}
	}
}

func TestAlienSubPixelMotion(t *testing.T) {
	s := newTestSettings()
	s.AlienSpeed = 0.25
	a := NewAlien(s, 100, 100)

	for range 3 {
		a.Update(s)
	}
	if a.Rect().X != 100 {
		t.Errorf("Rect().X = %d after 0.75 units, expected 100", a.Rect().X)
	}
	a.Update(s)
	if a.Rect().X != 101 {
		t.Errorf("Rect().X = %d after 1.0 units, expected 101", a.Rect().X)
	}
}
