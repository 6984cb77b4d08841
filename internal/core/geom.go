// Package core provides fundamental types and utilities for the dropcatch platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an integer cell rectangle used for screen drawing.
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

// Box is an axis-aligned bounding box in field units.
// Drops and the slider live in a continuous coordinate space; the renderer
// maps it onto terminal cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Catches reports whether a falling box b touches the catcher box c.
//
// The vertical test is inclusive on the catcher's top edge so a drop resting
// exactly on the slider counts, while the horizontal test is strict on both
// sides so boxes that only share an edge do not.
func (b Box) Catches(c Box) bool {
	if b.Bottom() < c.Top() || b.Top() >= c.Bottom() {
		return false
	}
	return b.Left() < c.Right() && b.Right() > c.Left()
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

// ClampF restricts a float64 value to be within [min, max].
// When max < min the lower bound wins, so a slider wider than its container
// is pinned to the left edge.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}
