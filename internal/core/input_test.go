package core

import "testing"

func TestEventString(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{KeyDown(KeyRight), "KeyDown(Right)"},
		{KeyUp(KeyLeft), "KeyUp(Left)"},
		{MouseClick(600, 400), "MouseClick(600,400)"},
		{Quit(), "Quit"},
		{KeyDown(Key(99)), "KeyDown(Unknown)"},
	}

	for _, tc := range tests {
		if got := tc.event.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue

	if q.Drain() != nil {
		t.Error("Drain() on empty queue should return nil")
	}

	q.Push(KeyDown(KeySpace))
	q.Push(KeyDown(KeySpace))
	q.Push(KeyUp(KeyRight))
	if q.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", q.Len())
	}

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Drain() returned %d events, expected 3", len(events))
	}
	if events[2] != KeyUp(KeyRight) {
		t.Errorf("Drain() should keep arrival order, got %v last", events[2])
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, expected 0", q.Len())
	}

	// The drained slice must not be overwritten by later pushes.
	q.Push(Quit())
	if events[0] != KeyDown(KeySpace) {
		t.Errorf("Drained events were modified by Push: %v", events[0])
	}
}
