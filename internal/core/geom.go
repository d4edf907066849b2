// Package core provides fundamental types and utilities for the invaders platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds a rectangle from a fractional top-left position.
// Coordinates are floored so negative positions stay on the correct side of zero.
func RectAt(x, y float64, w, h int) Rect {
	return Rect{X: int(math.Floor(x)), Y: int(math.Floor(y)), W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
// If max < min the range collapses to min.
func ClampF(val, min, max float64) float64 {
	if max < min {
		max = min
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
