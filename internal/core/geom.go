// Package core provides fundamental types and utilities for the brickout
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Vec2 is a 2D vector in world coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle in world coordinates.
// Pos is the bottom-left corner; the world's visible vertical extent is
// always [-1, 1] and the horizontal extent [-boundX, boundX].
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// NewRect creates a rectangle from its bottom-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.Pos.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Pos.X + r.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Pos.Y
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Pos.Y + r.Size.Y
}

// CenterX returns the x-coordinate of the rectangle's center.
func (r Rect) CenterX() float64 {
	return r.Pos.X + r.Size.X/2
}

// CenterY returns the y-coordinate of the rectangle's center.
func (r Rect) CenterY() float64 {
	return r.Pos.Y + r.Size.Y/2
}

// Overlaps returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; rectangles that merely touch
// along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Left() >= o.Right() || o.Left() >= r.Right() {
		return false
	}
	if r.Bottom() >= o.Top() || o.Bottom() >= r.Top() {
		return false
	}
	return true
}

// Bounds describes the world extents for the current aspect ratio.
// Exactly one of X, Y is always 1: wide windows stretch X, tall windows
// stretch Y.
type Bounds struct {
	X, Y float64
}

// BoundsForAspect computes world bounds from a viewport aspect ratio
// (width / height).
func BoundsForAspect(aspect float64) Bounds {
	if aspect <= 0 {
		aspect = 1
	}
	if aspect >= 1 {
		return Bounds{X: aspect, Y: 1}
	}
	return Bounds{X: 1, Y: 1 / aspect}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
