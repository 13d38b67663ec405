package invasion

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Glyphs used when projecting entities onto the terminal grid.
const (
	ShipGlyph   = '▲'
	BulletGlyph = '│'
	AlienGlyph  = '▓'
	LifeGlyph   = '▲'
)

// Render projects the current frame onto dst. The world is scaled to fill
// everything below the HUD row.
func (g *Game) Render(dst *core.Screen) {
	f := g.Frame()
	w, h := dst.Width(), dst.Height()
	fieldH := h - core.HUDRows
	if w <= 0 || fieldH <= 0 {
		return
	}

	for _, cmd := range f.Commands {
		r := g.project(cmd.Rect, w, fieldH)
		dst.DrawRect(r, glyphFor(cmd.Kind), cmd.Color)
	}

	drawHUD(dst, f.Scoreboard)

	switch {
	case f.ShowMenu:
		g.drawMenu(dst, f, w, fieldH)
	case f.Phase == StateLifeLost:
		dst.DrawTextCentered(fieldH/2+core.HUDRows-2, "SHIP LOST", core.ColorBrightRed)
	case f.Paused:
		dst.DrawTextCentered(fieldH/2+core.HUDRows, "PAUSED", core.ColorBrightYellow)
	}
}

// project maps a world rectangle into the playfield below the HUD.
func (g *Game) project(r core.Rect, w, fieldH int) core.Rect {
	ww, wh := g.Bounds()
	cell := r.Scale(ww, wh, w, fieldH)
	cell.Y += core.HUDRows
	return cell
}

func glyphFor(k EntityKind) rune {
	switch k {
	case KindShip:
		return ShipGlyph
	case KindProjectile:
		return BulletGlyph
	default:
		return AlienGlyph
	}
}

// drawHUD draws the remaining ships on the left and score, level and high
// score on the right.
func drawHUD(dst *core.Screen, sb Scoreboard) {
	dst.DrawTextColor(1, 0, strings.Repeat(string(LifeGlyph), max(sb.ShipsLeft, 0)), core.ColorBrightCyan)

	dst.DrawTextCentered(0, fmt.Sprintf("HIGH %d", sb.HighScore), core.ColorYellow)

	right := fmt.Sprintf("SCORE %d  LEVEL %d", sb.Score, sb.Level)
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorWhite)
}

// drawMenu draws the Play button. The box is at least three rows tall so
// the label always fits inside the border.
func (g *Game) drawMenu(dst *core.Screen, f Frame, w, fieldH int) {
	btn := g.project(f.Button, w, fieldH)
	if btn.W < 8 {
		btn.X -= (8 - btn.W) / 2
		btn.W = 8
	}
	if btn.H < 3 {
		btn.Y -= (3 - btn.H) / 2
		btn.H = 3
	}
	dst.DrawRect(btn, ' ', core.ColorDefault)
	dst.DrawBox(btn, core.ColorGreen)

	label := "Play"
	_, cy := btn.Center()
	dst.DrawTextColor(btn.X+(btn.W-len(label))/2, cy, label, core.ColorBrightGreen)

	if f.Phase == StateGameOver {
		dst.DrawTextCentered(btn.Y-2, "GAME OVER", core.ColorBrightRed)
	}
	dst.DrawTextCentered(btn.Bottom()+1, "click Play or press Enter", core.ColorGray)
}
