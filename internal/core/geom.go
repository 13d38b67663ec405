// Package core provides fundamental types shared by the game and the platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in world units.
// It is used both for collision detection and as the extent of a draw command.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// MidBottom returns a rectangle of size w x h whose bottom edge sits on the
// bottom of r and which is horizontally centered in r.
func (r Rect) MidBottom(w, h int) Rect {
	return NewRect(r.CenterX()-w/2, r.Bottom()-h, w, h)
}

// Scale projects r from a world of size (fromW, fromH) into a grid of size
// (toW, toH), rounding each edge to the nearest cell. The result always covers
// at least one cell so that thin entities stay visible.
func (r Rect) Scale(fromW, fromH, toW, toH int) Rect {
	if fromW <= 0 || fromH <= 0 {
		return Rect{}
	}
	x0 := (r.X*toW + fromW/2) / fromW
	y0 := (r.Y*toH + fromH/2) / fromH
	x1 := (r.Right()*toW + fromW/2) / fromW
	y1 := (r.Bottom()*toH + fromH/2) / fromH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Unscale maps the center of cell (cx, cy) in a grid of size (gridW, gridH)
// back to a point in a world of size (worldW, worldH). It is the inverse of
// Scale for mouse input. Cells outside the grid land on the world's edge.
func Unscale(cx, cy, gridW, gridH, worldW, worldH int) (int, int) {
	if gridW <= 0 || gridH <= 0 {
		return 0, 0
	}
	x := (2*cx + 1) * worldW / (2 * gridW)
	y := (2*cy + 1) * worldH / (2 * gridH)
	return Clamp(x, 0, worldW-1), Clamp(y, 0, worldH-1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
