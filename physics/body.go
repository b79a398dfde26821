// Package physics resolves moving rectangles against static tile colliders
// and drives the fixed-step simulation clock.
package physics

import "github.com/milk9111/truecolor/geom"

// Body is a dynamic rectangle. Position is the owning node's position; the
// hitbox sits at Position+Offset with the given Size.
type Body struct {
	Position     geom.Vec
	Velocity     geom.Vec
	Acceleration geom.Vec
	Offset       geom.Vec
	Size         geom.Vec
}

// Collider returns the body's hitbox in world space.
func (b *Body) Collider() geom.Rect {
	return geom.Rect{Pos: b.Position.Add(b.Offset), Size: b.Size}
}

func (b *Body) setTop(y float64) {
	b.Position.Y = y - b.Offset.Y
}

func (b *Body) setLeft(x float64) {
	b.Position.X = x - b.Offset.X
}

func (b *Body) stopVertical() {
	b.Velocity.Y = 0
	b.Acceleration.Y = 0
}

// Contact summarizes what a resolve pass touched. Locks are recomputed on
// every pass.
type Contact struct {
	Grounded  bool
	Ceiling   bool
	LockLeft  bool
	LockRight bool
}

func (c Contact) merge(o Contact) Contact {
	return Contact{
		Grounded:  c.Grounded || o.Grounded,
		Ceiling:   c.Ceiling || o.Ceiling,
		LockLeft:  c.LockLeft || o.LockLeft,
		LockRight: c.LockRight || o.LockRight,
	}
}
