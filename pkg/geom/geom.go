package geom

// Minimal 2D geometry helpers for screen-space layout and hit testing.
// Coordinates follow the window convention: origin top-left, y grows down.

import "math"

// Vec2 represents a 2D point or size in screen coordinates.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Distance computes the Euclidean distance between two points.
func Distance(a, b Vec2) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// Contains reports whether p lies inside r. Edges count as inside so a
// click on a component border still registers.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Pos.X && p.X <= r.Pos.X+r.Size.X &&
		p.Y >= r.Pos.Y && p.Y <= r.Pos.Y+r.Size.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.Pos.X + r.Size.X/2, r.Pos.Y + r.Size.Y/2}
}

// Circle is a circle anchored at its center.
type Circle struct {
	Center Vec2
	Radius float64
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Vec2) bool {
	return Distance(c.Center, p) <= c.Radius
}
