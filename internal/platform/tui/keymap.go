package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Fire   key.Binding
	Play   key.Binding
	Pause  key.Binding
	Scores key.Binding
	Quit   key.Binding
	Abort  key.Binding
}

// ShortHelp returns the bindings shown in the help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Play, k.Pause, k.Scores, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Play, k.Pause, k.Scores},
		{k.Quit, k.Abort},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter/p", "play"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// MapKey translates a key message to a game key.
// Returns core.KeyNone for keys the game does not use.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Fire):
		return core.KeySpace
	case key.Matches(msg, k.Play):
		return core.KeyEnter
	case key.Matches(msg, k.Pause):
		return core.KeyEscape
	case key.Matches(msg, k.Quit):
		return core.KeyQ
	}
	return core.KeyNone
}

// isHoldKey reports whether k is a movement key that goes through the latch.
func isHoldKey(k core.Key) bool {
	return k == core.KeyLeft || k == core.KeyRight
}

// opposite returns the other movement key.
func opposite(k core.Key) core.Key {
	if k == core.KeyLeft {
		return core.KeyRight
	}
	return core.KeyLeft
}
