package core

import "fmt"

// Key identifies a logical key, abstracted from physical key codes.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // Left arrow - move ship left
	KeyRight     // Right arrow - move ship right
	KeySpace     // Space - fire
	KeyQ         // Q - quit
	KeyEnter     // Enter, P - start a new game (keyboard Play button)
	KeyEscape    // Esc - pause/unpause
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyQ:
		return "Q"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes the kinds of input events.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseClick
	EventQuit
)

// Event is a single discrete input event delivered to a game.
// Mouse coordinates are in world units.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y int
}

// KeyDown creates a key press event.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUp creates a key release event.
func KeyUp(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// MouseClick creates a click event at world position (x, y).
func MouseClick(x, y int) Event {
	return Event{Kind: EventMouseClick, X: x, Y: y}
}

// Quit creates a quit request event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// String formats the event for logs and test failures, e.g. "KeyDown(Left)".
func (e Event) String() string {
	switch e.Kind {
	case EventKeyDown:
		return fmt.Sprintf("KeyDown(%s)", e.Key)
	case EventKeyUp:
		return fmt.Sprintf("KeyUp(%s)", e.Key)
	case EventMouseClick:
		return fmt.Sprintf("MouseClick(%d,%d)", e.X, e.Y)
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventQueue collects the events that arrive between two ticks.
// The platform appends as input arrives and drains once per tick.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
