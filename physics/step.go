package physics

import (
	"math"

	"github.com/milk9111/truecolor/geom"
)

// Stepper integrates a body for one fixed step.
type Stepper struct {
	Resolver *Resolver
	// Gravity is added to the vertical acceleration every second while the
	// body is airborne.
	Gravity float64
	// MaxFallSpeed caps downward velocity.
	MaxFallSpeed float64
}

// DefaultStepper returns the game tuning.
func DefaultStepper() *Stepper {
	return &Stepper{
		Resolver:     DefaultResolver(),
		Gravity:      9.8,
		MaxFallSpeed: 600,
	}
}

// Step moves b by its velocity, resolves it against colliders and then
// applies gravity when the body did not land. Movement is split into
// substeps of at most half the resolver tolerance so a fast fall cannot skip
// past a floor's snap window.
func (s *Stepper) Step(b *Body, colliders []geom.Rect, dt float64) Contact {
	if s == nil || b == nil || dt <= 0 {
		return Contact{}
	}
	res := s.Resolver
	if res == nil {
		res = DefaultResolver()
	}

	delta := b.Velocity.Mult(dt)
	n := 1
	if half := res.VerticalTolerance * 0.5; half > 0 {
		n = int(math.Ceil(math.Max(math.Abs(delta.X), math.Abs(delta.Y)) / half))
		if n < 1 {
			n = 1
		}
	}

	var c Contact
	sub := dt / float64(n)
	for i := 0; i < n; i++ {
		b.Position = b.Position.Add(b.Velocity.Mult(sub))
		c = c.merge(res.Resolve(b, colliders))
	}

	if !c.Grounded {
		b.Acceleration.Y += s.Gravity * dt
		b.Velocity = b.Velocity.Add(b.Acceleration)
		if s.MaxFallSpeed > 0 && b.Velocity.Y > s.MaxFallSpeed {
			b.Velocity.Y = s.MaxFallSpeed
		}
	}
	return c
}

// Grounded probes a short distance below the body's hitbox for a floor.
// Resting bodies alternate between contact and no contact across steps, so
// callers that gate jumps on the floor use this as well.
func Grounded(b *Body, colliders []geom.Rect, reach float64) bool {
	if b == nil {
		return false
	}
	box := b.Collider()
	ray := geom.Ray{
		Origin:    geom.V(box.Center().X, box.Bottom()),
		Direction: geom.V(0, 1),
	}
	_, _, ok := ray.Cast(reach, colliders)
	return ok
}
