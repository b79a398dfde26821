// Package geom holds the 2D primitives shared by the camera, the physics
// resolver and every node type.
package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec is a 2D float vector. It aliases the chipmunk vector so Add, Sub,
// Mult, Length, Normalize and Lerp are available everywhere.
type Vec = cp.Vector

// V builds a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Zero is the origin.
var Zero = Vec{}

// SnapToGrid rounds each component of v to the nearest multiple of cell.
func SnapToGrid(v Vec, cell float64) Vec {
	if cell <= 0 {
		return v
	}
	return Vec{
		X: math.Round(v.X/cell) * cell,
		Y: math.Round(v.Y/cell) * cell,
	}
}

// Mul multiplies component-wise.
func Mul(a, b Vec) Vec {
	return Vec{X: a.X * b.X, Y: a.Y * b.Y}
}

// Rotate turns v by angle radians.
func Rotate(v Vec, angle float64) Vec {
	return v.Rotate(cp.ForAngle(angle))
}
