package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Scoreboard holds the values shown in the HUD.
type Scoreboard struct {
	Score     int
	Level     int
	ShipsLeft int
	HighScore int
}

// Frame is everything needed to draw one tick.
type Frame struct {
	Commands      []DrawCommand // Ship, then projectiles, then aliens
	Scoreboard    Scoreboard
	ShowMenu      bool
	CursorVisible bool
	Button        core.Rect
	Phase         string
	Paused        bool
}

// Frame returns the draw list and HUD values for the current tick.
func (g *Game) Frame() Frame {
	cmds := make([]DrawCommand, 0, 1+len(g.bullets)+g.fleet.Len())
	cmds = append(cmds, g.ship.Draw())
	for _, b := range g.bullets {
		cmds = append(cmds, b.Draw())
	}
	for _, a := range g.fleet.Aliens {
		cmds = append(cmds, a.Draw())
	}

	menu := g.showMenu()
	return Frame{
		Commands: cmds,
		Scoreboard: Scoreboard{
			Score:     g.stats.Score,
			Level:     g.stats.Level,
			ShipsLeft: g.stats.ShipsLeft,
			HighScore: g.stats.HighScore,
		},
		ShowMenu:      menu,
		CursorVisible: menu,
		Button:        g.button,
		Phase:         g.state,
		Paused:        g.paused,
	}
}
