// Package scene implements the node tree every entity lives in. Nodes are
// owned by a Tree arena and refer to each other through NodeID handles.
package scene

import (
	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
)

// Kind tags the concrete node types so lookups need no type switches over
// every implementation.
type Kind int

const (
	KindGeneric Kind = iota
	KindPlayer
	KindItem
	KindTrigger
	KindNPC
	KindEnemy
	KindMiniGame
	KindPiece
	KindHUD
	KindMenu
)

var kindNames = map[Kind]string{
	KindGeneric:  "generic",
	KindPlayer:   "player",
	KindItem:     "item",
	KindTrigger:  "trigger",
	KindNPC:      "npc",
	KindEnemy:    "enemy",
	KindMiniGame: "minigame",
	KindPiece:    "piece",
	KindHUD:      "hud",
	KindMenu:     "menu",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Node is anything that lives in a Tree.
type Node interface {
	Core() *Base
	Kind() Kind
}

// Base carries the state every node shares. Concrete nodes embed it.
type Base struct {
	Name     string
	Position geom.Vec
	// Sprite is the node's region on the sprite sheet.
	Sprite gfx.Sprite
	// Thumbnail, when set, is drawn for the node in inventory slots.
	Thumbnail *gfx.Sprite

	id       NodeID
	parent   NodeID
	linked   bool
	children []NodeID
	tree     *Tree
}

// Core returns b. Embedding Base satisfies half of Node.
func (b *Base) Core() *Base {
	return b
}

// ID returns the node's handle, zero until it joins a tree.
func (b *Base) ID() NodeID {
	if b == nil {
		return 0
	}
	return b.id
}

// Tree returns the owning tree.
func (b *Base) Tree() *Tree {
	if b == nil {
		return nil
	}
	return b.tree
}

// World returns the session services, or nil when detached.
func (b *Base) World() World {
	if b == nil || b.tree == nil {
		return nil
	}
	return b.tree.world
}

// Parent returns the parent node. Top-level nodes have none.
func (b *Base) Parent() Node {
	if b == nil || b.tree == nil || !b.parent.Valid() {
		return nil
	}
	return b.tree.Get(b.parent)
}

// TopLevel reports whether the node sits directly under the tree root.
func (b *Base) TopLevel() bool {
	return b != nil && b.linked && !b.parent.Valid()
}

// Linked reports whether the node is part of the tree's hierarchy.
func (b *Base) Linked() bool {
	return b != nil && b.linked
}

// Children returns a snapshot of the node's children in order.
func (b *Base) Children() []Node {
	if b == nil || b.tree == nil {
		return nil
	}
	return b.tree.resolve(b.children)
}

// ChildCount returns the number of children.
func (b *Base) ChildCount() int {
	if b == nil {
		return 0
	}
	return len(b.children)
}

// ChildAt returns the i-th child or nil.
func (b *Base) ChildAt(i int) Node {
	if b == nil || b.tree == nil || i < 0 || i >= len(b.children) {
		return nil
	}
	return b.tree.Get(b.children[i])
}

// IndexOf returns the position of child among b's children, or -1.
func (b *Base) IndexOf(child Node) int {
	if b == nil || child == nil {
		return -1
	}
	id := child.Core().id
	for i, c := range b.children {
		if c == id {
			return i
		}
	}
	return -1
}

// UpdateChildren runs Update on every child.
func (b *Base) UpdateChildren(dt float64) {
	for _, c := range b.Children() {
		Update(c, dt)
	}
}

// DrawChildren runs Draw on every child.
func (b *Base) DrawChildren(r gfx.Renderer) {
	for _, c := range b.Children() {
		Draw(c, r)
	}
}

// DefaultCollider is a sprite-sized box at the node position.
func (b *Base) DefaultCollider() geom.Rect {
	return geom.Rect{Pos: b.Position, Size: geom.V(common.SpriteSize, common.SpriteSize)}
}
