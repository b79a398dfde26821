package scene

import (
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
)

// Action is a directional or activation event dispatched into the tree.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionEnter
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionEnter:
		return "enter"
	}
	return "unknown"
}

// Creatable nodes reset their transient state on (re)load.
type Creatable interface {
	OnCreated()
}

// AllCreatedObserver runs after every sibling of a level has been created.
type AllCreatedObserver interface {
	OnAllCreated()
}

// Updatable nodes replace the default per-frame update. Implementations call
// Base.UpdateChildren themselves when they want children to tick.
type Updatable interface {
	OnUpdated(dt float64)
}

// Physical nodes run on the fixed physics step.
type Physical interface {
	OnPhysics(dt float64)
}

// Controllable nodes receive directional and activation events.
type Controllable interface {
	OnAction(a Action)
}

// Reparentable nodes are told after they move to a new parent.
type Reparentable interface {
	OnReparent()
}

// ChildObserver nodes are told when a child is linked under them.
type ChildObserver interface {
	OnChildAdded(child Node)
}

// Collidable nodes expose a custom hitbox.
type Collidable interface {
	Collider() geom.Rect
}

// Drawable nodes render themselves. Implementations call Base.DrawChildren
// when children should be drawn too.
type Drawable interface {
	Draw(r gfx.Renderer)
}

// MiniGameObserver nodes are told when a mini-game finishes.
type MiniGameObserver interface {
	OnMiniGameOver(name string, won bool)
}

// Create runs OnCreated when n implements it.
func Create(n Node) {
	if c, ok := n.(Creatable); ok {
		c.OnCreated()
	}
}

// Update runs n's per-frame hook or the default behavior.
func Update(n Node, dt float64) {
	if n == nil {
		return
	}
	if u, ok := n.(Updatable); ok {
		u.OnUpdated(dt)
		return
	}
	DefaultUpdate(n, dt)
}

// DefaultUpdate makes n follow its parent and then updates its children.
func DefaultUpdate(n Node, dt float64) {
	b := n.Core()
	if p := b.Parent(); p != nil {
		b.Position = p.Core().Position
	}
	b.UpdateChildren(dt)
}

// Physics runs the fixed-step hook on n and its descendants.
func Physics(n Node, dt float64) {
	if n == nil {
		return
	}
	if p, ok := n.(Physical); ok {
		p.OnPhysics(dt)
	}
	for _, c := range n.Core().Children() {
		Physics(c, dt)
	}
}

// Draw renders n, falling back to its children when n draws nothing itself.
func Draw(n Node, r gfx.Renderer) {
	if n == nil {
		return
	}
	if d, ok := n.(Drawable); ok {
		d.Draw(r)
		return
	}
	n.Core().DrawChildren(r)
}

// ColliderOf returns n's hitbox.
func ColliderOf(n Node) geom.Rect {
	if c, ok := n.(Collidable); ok {
		return c.Collider()
	}
	return n.Core().DefaultCollider()
}

// Colliding reports whether the hitboxes of a and b overlap.
func Colliding(a, b Node) bool {
	if a == nil || b == nil {
		return false
	}
	return geom.Overlaps(ColliderOf(a), ColliderOf(b))
}
