package physics

import (
	"math"

	"github.com/milk9111/truecolor/geom"
)

// Resolver classifies overlaps between a body and static colliders by
// penetration thresholds and applies the corrections.
type Resolver struct {
	// VerticalTolerance is how deep a body may sink into a floor or ceiling
	// and still be snapped out.
	VerticalTolerance float64
	// HorizontalGate is the fraction of body width that must overlap a
	// collider for a floor or ceiling contact.
	HorizontalGate float64
	// VerticalGate is the fraction of body height that must overlap a
	// collider for a wall contact.
	VerticalGate float64
	// WallSnap is the largest horizontal correction applied on a wall
	// contact. Larger corrections only lock the direction.
	WallSnap float64

	// Trace, when set, is called for each overlapping pair with the kind of
	// contact it produced. Used by the debug overlay.
	Trace func(collider geom.Rect, kind ContactKind)
}

// ContactKind names the outcome for one collider pair.
type ContactKind int

const (
	ContactNone ContactKind = iota
	ContactGround
	ContactCeiling
	ContactWallRight
	ContactWallLeft
)

// DefaultResolver returns the tuning used by the game.
func DefaultResolver() *Resolver {
	return &Resolver{
		VerticalTolerance: 5,
		HorizontalGate:    0.1,
		VerticalGate:      0.05,
		WallSnap:          5,
	}
}

// Resolve tests b against every collider and corrects its position and
// vertical motion. Each pair is evaluated on its own; a pair that produced a
// floor or ceiling contact is never also tested as a wall.
func (r *Resolver) Resolve(b *Body, colliders []geom.Rect) Contact {
	var c Contact
	if r == nil || b == nil {
		return c
	}
	for _, col := range colliders {
		kind := r.resolvePair(b, col)
		switch kind {
		case ContactGround:
			c.Grounded = true
		case ContactCeiling:
			c.Ceiling = true
		case ContactWallRight:
			c.LockRight = true
		case ContactWallLeft:
			c.LockLeft = true
		}
	}
	return c
}

func (r *Resolver) resolvePair(b *Body, col geom.Rect) ContactKind {
	box := b.Collider()
	if !geom.Overlaps(box, col) {
		return ContactNone
	}
	kind := r.classify(b, box, col)
	if r.Trace != nil {
		r.Trace(col, kind)
	}
	return kind
}

func (r *Resolver) classify(b *Body, box, col geom.Rect) ContactKind {
	falling := b.Velocity.Y > 0
	rising := b.Velocity.Y < 0
	hGate := geom.HorizontalOverlap(box, col) > box.Size.X*r.HorizontalGate

	if falling && box.Bottom()-col.Top() <= r.VerticalTolerance && hGate {
		b.setTop(col.Top() - box.Size.Y)
		b.stopVertical()
		return ContactGround
	}
	if rising && col.Bottom()-box.Top() <= r.VerticalTolerance && hGate {
		b.setTop(col.Bottom())
		b.stopVertical()
		return ContactCeiling
	}

	if geom.VerticalOverlap(box, col) <= box.Size.Y*r.VerticalGate {
		return ContactNone
	}
	switch {
	case box.Right() > col.Left() && box.Left() < col.Left():
		target := col.Left() - box.Size.X
		if math.Abs(box.Left()-target) < r.WallSnap {
			b.setLeft(target)
		}
		return ContactWallRight
	case box.Left() < col.Right() && box.Right() > col.Right():
		target := col.Right()
		if math.Abs(box.Left()-target) < r.WallSnap {
			b.setLeft(target)
		}
		return ContactWallLeft
	}
	return ContactNone
}
