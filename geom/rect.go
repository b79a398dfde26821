package geom

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Pos  Vec
	Size Vec
}

// R builds a Rect from its top-left corner and size.
func R(x, y, w, h float64) Rect {
	return Rect{Pos: Vec{X: x, Y: y}, Size: Vec{X: w, Y: h}}
}

func (r Rect) Left() float64 { return r.Pos.X }
func (r Rect) Right() float64 { return r.Pos.X + r.Size.X }
func (r Rect) Top() float64 { return r.Pos.Y }
func (r Rect) Bottom() float64 { return r.Pos.Y + r.Size.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.Pos.X + r.Size.X*0.5, Y: r.Pos.Y + r.Size.Y*0.5}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec) Rect {
	r.Pos = r.Pos.Add(d)
	return r
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		Pos:  Vec{X: r.Pos.X - d, Y: r.Pos.Y - d},
		Size: Vec{X: r.Size.X + 2*d, Y: r.Size.Y + 2*d},
	}
}

// Contains reports whether p lies strictly inside r.
func (r Rect) Contains(p Vec) bool {
	return p.X > r.Left() && p.X < r.Right() && p.Y > r.Top() && p.Y < r.Bottom()
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Overlaps reports whether a and b intersect with positive area. Rectangles
// that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}

// HorizontalOverlap is the width of the x-projection shared by a and b.
func HorizontalOverlap(a, b Rect) float64 {
	return math.Max(0, math.Min(a.Right(), b.Right())-math.Max(a.Left(), b.Left()))
}

// VerticalOverlap is the height of the y-projection shared by a and b.
func VerticalOverlap(a, b Rect) float64 {
	return math.Max(0, math.Min(a.Bottom(), b.Bottom())-math.Max(a.Top(), b.Top()))
}
