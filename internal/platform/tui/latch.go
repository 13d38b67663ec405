package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Default hold timeouts. Terminals wait about half a second before the
// first auto-repeat, then repeat every 30-100ms.
const (
	DefaultInitialHold = 500 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// KeyLatch turns terminal key presses into held keys.
//
// Terminals report presses (and auto-repeats) but never releases, so a key
// counts as held until no repeat arrives within its hold window. The first
// press gets the longer initial window to cover the auto-repeat delay.
type KeyLatch struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Key]time.Time // Release deadline per held key
}

// NewKeyLatch creates a latch. Non-positive durations use the defaults.
func NewKeyLatch(initial, repeat time.Duration) *KeyLatch {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &KeyLatch{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Key]time.Time),
	}
}

// Press records a press of k at now. Reports whether this is a new press,
// i.e. whether a KeyDown should be emitted.
func (l *KeyLatch) Press(k core.Key, now time.Time) bool {
	if _, ok := l.held[k]; ok {
		l.held[k] = now.Add(l.repeat)
		return false
	}
	l.held[k] = now.Add(l.initial)
	return true
}

// Release forgets k. Reports whether it was held.
func (l *KeyLatch) Release(k core.Key) bool {
	if _, ok := l.held[k]; !ok {
		return false
	}
	delete(l.held, k)
	return true
}

// Expire releases every key whose deadline has passed and returns them
// in key order.
func (l *KeyLatch) Expire(now time.Time) []core.Key {
	var out []core.Key
	for k, deadline := range l.held {
		if !now.Before(deadline) {
			out = append(out, k)
		}
	}
	for _, k := range out {
		delete(l.held, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
