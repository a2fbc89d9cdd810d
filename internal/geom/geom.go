// Package geom provides the 2D primitives shared by the simulation and
// rendering layers. World units are pixels; positions are float64 so that
// sub-pixel movement accumulates correctly across frames.
package geom

// Point is a position in world or screen space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for constructing a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Translate returns the rect shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Center returns the rect's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the rect (right/bottom exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// WithinBox reports whether a and b are strictly closer than dist on both
// axes. This is the box-distance check used for pickups and blast ranges.
func WithinBox(a, b Point, dist float64) bool {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx < dist && dy < dist
}
