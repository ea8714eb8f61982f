// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Point is a grid cell as a (column, row) pair. The type itself is
// unbounded; validity against the grid is the simulation's job.
type Point struct {
	X, Y int
}

// Grid describes the playfield extents. Cells are valid in
// [0, W) x [0, H).
type Grid struct {
	W, H int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Wrap maps an out-of-range coordinate to the opposite edge. A single
// grid step can only leave the grid on one axis, so at most one
// coordinate changes per call in practice.
func (g Grid) Wrap(p Point) Point {
	switch {
	case p.X < 0:
		p.X = g.W - 1
	case p.X >= g.W:
		p.X = 0
	}
	switch {
	case p.Y < 0:
		p.Y = g.H - 1
	case p.Y >= g.H:
		p.Y = 0
	}
	return p
}

// Rect represents an axis-aligned box used for UI hit-regions.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
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
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
