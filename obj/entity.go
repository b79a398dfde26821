package obj

import (
	"github.com/milk9111/truecolor/camera"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/scene"
)

// entityNode is embedded by every node spawned from level data.
type entityNode struct {
	scene.Base
	entity levels.Entity
}

func newEntityNode(e levels.Entity, def gfx.Sprite) entityNode {
	n := entityNode{entity: e}
	n.Name = e.Type
	n.Position = e.Position()
	n.Sprite = spriteOr(e.Sprite, def)
	return n
}

// respawn moves the node back to its authored position.
func (n *entityNode) respawn() {
	n.Position = n.entity.Position()
}

func (n *entityNode) cam() *camera.Camera {
	if w := n.World(); w != nil {
		return w.Camera()
	}
	return nil
}

// onScreen reports whether the node is near the viewport. Without a camera
// everything counts as visible.
func (n *entityNode) onScreen() bool {
	c := n.cam()
	return c == nil || c.IsOnScreen(n.Position)
}

// toScreen converts a world position through the session camera.
func (n *entityNode) toScreen(p geom.Vec) geom.Vec {
	if c := n.cam(); c != nil {
		return c.WorldToScreen(p)
	}
	return p
}

func (n *entityNode) debug() bool {
	w := n.World()
	return w != nil && w.Debug()
}

func playerOf(w scene.World) *Player {
	if w == nil {
		return nil
	}
	p, _ := w.Player().(*Player)
	return p
}
