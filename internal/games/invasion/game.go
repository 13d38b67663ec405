// Package invasion implements the Alien Invasion game core: a fixed-tick
// simulation of a ship shooting at a descending, edge-bouncing fleet.
package invasion

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

// Game states
const (
	StateIdle     = "idle"     // Fleet built, simulation frozen, Play button shown
	StateActive   = "active"   // Simulation runs every tick
	StateLifeLost = "lifelost" // Timed pause after losing a ship
	StateGameOver = "gameover" // Last ship lost, waiting for Play
)

// Play button size in world units.
const (
	ButtonWidth  = 200
	ButtonHeight = 50
)

func init() {
	registry.Register("invasion", "Alien Invasion", func(opts registry.Options) registry.Game {
		return New(opts.Config, opts.Logger)
	})
}

// Game is the loop driver. It owns the settings, stats and every entity
// collection; subsystems only see them for the duration of a call.
type Game struct {
	cfg     config.InvasionConfig
	runtime core.RuntimeConfig
	log     *log.Logger

	settings *Settings
	stats    *Stats
	ship     *Ship
	bullets  []*Projectile
	fleet    *Fleet
	button   core.Rect

	state     string
	paused    bool
	cooldown  int // Ticks left in StateLifeLost
	tickCount int
}

// New creates a game for the given config. A nil logger discards output.
func New(cfg config.InvasionConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invasion"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// Bounds returns the world size.
func (g *Game) Bounds() (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Reset builds a fresh session in the idle state. The high score survives
// a reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultTickRate
	}
	g.runtime = runtime

	highScore := 0
	if g.stats != nil {
		highScore = g.stats.HighScore
	}

	g.settings = NewSettings(g.cfg)
	g.stats = NewStats(g.settings)
	g.stats.HighScore = highScore
	g.ship = NewShip(g.settings)
	g.bullets = make([]*Projectile, 0, max(g.settings.BulletsAllowed, 0))
	g.fleet = &Fleet{}
	g.fleet.Build(g.settings)
	g.button = g.settings.ScreenRect().MidBottom(ButtonWidth, ButtonHeight)
	g.button.Y = g.settings.ScreenHeight/2 - ButtonHeight/2

	g.state = StateIdle
	g.paused = false
	g.cooldown = 0
	g.tickCount = 0
}

// Step drains the events of this tick and, when active, advances the
// simulation by one tick in the order ship, projectiles, fleet, collisions,
// ship hit.
func (g *Game) Step(events []core.Event) core.StepResult {
	for _, ev := range events {
		if g.handleEvent(ev) {
			g.log.Info("quit", "state", g.state, "score", g.stats.Score)
			return core.StepResult{State: g.State(), Quit: true}
		}
	}

	g.tickCount++

	switch g.state {
	case StateActive:
		if !g.paused {
			g.update()
		}
	case StateLifeLost:
		g.cooldown--
		if g.cooldown <= 0 {
			g.cooldown = 0
			g.state = StateActive
		}
	}

	return core.StepResult{State: g.State()}
}

// handleEvent applies one input event. Reports whether the game should quit.
func (g *Game) handleEvent(ev core.Event) bool {
	switch ev.Kind {
	case core.EventQuit:
		return true

	case core.EventKeyDown:
		if ev.Key == core.KeyQ {
			return true
		}
		// Movement keys still steer during the pause so a held key is
		// applied once play resumes.
		if g.state == StateLifeLost && ev.Key != core.KeyLeft && ev.Key != core.KeyRight {
			return false
		}
		g.keyDown(ev.Key)

	case core.EventKeyUp:
		switch ev.Key {
		case core.KeyRight:
			g.ship.MovingRight = false
		case core.KeyLeft:
			g.ship.MovingLeft = false
		}

	case core.EventMouseClick:
		if g.button.Contains(ev.X, ev.Y) {
			g.Play()
		}
	}
	return false
}

func (g *Game) keyDown(k core.Key) {
	switch k {
	case core.KeyRight:
		g.ship.MovingRight = true
	case core.KeyLeft:
		g.ship.MovingLeft = true
	case core.KeySpace:
		if g.state == StateActive && !g.paused {
			g.bullets, _ = fireBullet(g.settings, g.ship, g.bullets)
		}
	case core.KeyEnter:
		g.Play()
	case core.KeyEscape:
		if g.state == StateActive {
			g.paused = !g.paused
			g.log.Debug("pause toggled", "paused", g.paused)
		}
	}
}

// Play starts a new game from Idle or GameOver. It does nothing while a
// game is running, so a second Play cannot reset an active game.
func (g *Game) Play() {
	if g.state != StateIdle && g.state != StateGameOver {
		return
	}

	g.settings.InitializeDynamicSettings()
	g.stats.ResetStats()
	g.bullets = g.bullets[:0]
	g.fleet.Build(g.settings)
	g.ship.Center(g.settings)

	g.state = StateActive
	g.paused = false
	g.log.Info("new game", "aliens", g.fleet.Len(), "ships", g.stats.ShipsLeft)
}

func (g *Game) update() {
	g.ship.Update(g.settings)
	g.bullets = updateBullets(g.settings, g.bullets)
	if g.fleet.Update(g.settings) {
		g.log.Debug("fleet bounced", "direction", g.settings.FleetDirection)
	}
	g.checkBulletAlienCollisions()

	if g.fleet.Hits(g.ship.Rect()) || g.fleet.ReachedBottom(g.settings.ScreenHeight) {
		g.shipHit()
	}
}

// shipHit spends a ship. While ships remain the round restarts after a
// timed pause; losing the last one ends the game.
func (g *Game) shipHit() {
	g.stats.ShipsLeft--
	if g.stats.ShipsLeft > 0 {
		g.bullets = g.bullets[:0]
		g.fleet.Build(g.settings)
		g.ship.Center(g.settings)

		g.state = StateLifeLost
		g.cooldown = g.pauseTicks()
		g.log.Info("life lost", "ships_left", g.stats.ShipsLeft, "pause_ticks", g.cooldown)
		return
	}

	g.stats.ShipsLeft = 0
	g.state = StateGameOver
	g.paused = false
	g.log.Info("game over",
		"score", g.stats.Score,
		"level", g.stats.Level,
		"high_score", g.stats.HighScore,
	)
}

func (g *Game) pauseTicks() int {
	return int(math.Round(g.settings.LifeLostPause * float64(g.runtime.TickRate)))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.state,
		Score:    g.stats.Score,
		Level:    g.stats.Level,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
		ShowMenu: g.showMenu(),
	}
}

func (g *Game) showMenu() bool {
	return g.state == StateIdle || g.state == StateGameOver
}
