package invasion

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	State     string
	Paused    bool
	Cooldown  int
	Score     int
	Level     int
	ShipsLeft int
	HighScore int

	// Dynamic settings
	ShipSpeed      float64
	BulletSpeed    float64
	AlienSpeed     float64
	FleetDirection int
	AlienPoints    int

	ShipX       float64
	MovingLeft  bool
	MovingRight bool

	// Each projectile is 2 ints: X, Y
	BulletData []int
	BulletY    []float64 // Sub-pixel y per projectile

	// Each alien is 2 ints: X, Y
	AlienData []int
	AlienX    []float64 // Sub-pixel x per alien
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bulletData := make([]int, 0, len(g.bullets)*2)
	bulletY := make([]float64, 0, len(g.bullets))
	for _, b := range g.bullets {
		bulletData = append(bulletData, b.rect.X, b.rect.Y)
		bulletY = append(bulletY, b.y)
	}

	alienData := make([]int, 0, g.fleet.Len()*2)
	alienX := make([]float64, 0, g.fleet.Len())
	for _, a := range g.fleet.Aliens {
		alienData = append(alienData, a.rect.X, a.rect.Y)
		alienX = append(alienX, a.x)
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:     g.state,
		Paused:    g.paused,
		Cooldown:  g.cooldown,
		Score:     g.stats.Score,
		Level:     g.stats.Level,
		ShipsLeft: g.stats.ShipsLeft,
		HighScore: g.stats.HighScore,

		ShipSpeed:      g.settings.ShipSpeed,
		BulletSpeed:    g.settings.BulletSpeed,
		AlienSpeed:     g.settings.AlienSpeed,
		FleetDirection: int(g.settings.FleetDirection),
		AlienPoints:    g.settings.AlienPoints,

		ShipX:       g.ship.x,
		MovingLeft:  g.ship.MovingLeft,
		MovingRight: g.ship.MovingRight,

		BulletData: bulletData,
		BulletY:    bulletY,
		AlienData:  alienData,
		AlienX:     alienX,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(snap.Cooldown)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipsLeft)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FleetDirection) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AlienPoints)    //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.ShipSpeed)
	h = h*31 + math.Float64bits(snap.BulletSpeed)
	h = h*31 + math.Float64bits(snap.AlienSpeed)
	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + boolBit(snap.MovingLeft)
	h = h*31 + boolBit(snap.MovingRight)

	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletY {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.AlienData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.AlienX {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
