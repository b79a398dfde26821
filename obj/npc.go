package obj

import (
	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/scene"
)

// firstChatID is the id of the first line of every chat. Later lines count
// up from it, so a chat can not be queued twice.
const firstChatID = 10

// npcCore is shared by the characters. NPCs have no physics and only
// simulate while on screen.
type npcCore struct {
	entityNode
	anim     *gfx.Animator
	opts     gfx.Options
	chatting bool
}

func newNPCCore(e levels.Entity, def gfx.Sprite) npcCore {
	return npcCore{entityNode: newEntityNode(e, def)}
}

func (n *npcCore) Kind() scene.Kind { return scene.KindNPC }

// create resets the shared state. NPCs are drawn slightly lower than their
// authored position because nothing settles them onto the floor.
func (n *npcCore) create() {
	n.respawn()
	n.Position.Y += 8
	n.chatting = false
	n.opts = gfx.Options{}
	n.anim = gfx.NewAnimator()
}

// chatEnded reports, once, that a chat started with chat has been read.
func (n *npcCore) chatEnded() bool {
	w := n.World()
	if n.chatting && w != nil && !w.PersistentDialogOpen() {
		n.chatting = false
		return true
	}
	return false
}

// chat queues msgs as persistent dialogs unless a chat is already running,
// ours or another NPC's.
func (n *npcCore) chat(msgs ...string) {
	w := n.World()
	if n.chatting || w == nil || w.Dialogs().Queued(firstChatID) {
		return
	}
	n.chatting = true
	id := firstChatID
	for _, m := range msgs {
		w.AddDialog(dialog.Entry{Message: m, Persistent: true, ID: id})
		id++
	}
}

// touchingPlayer tests a sprite-sized box at the NPC position, whatever
// Collider the concrete type reports.
func (n *npcCore) touchingPlayer() bool {
	p := playerOf(n.World())
	if p == nil {
		return false
	}
	box := geom.R(n.Position.X, n.Position.Y, common.SpriteSize, common.SpriteSize)
	return geom.Overlaps(box, scene.ColliderOf(p))
}

// interacting reports whether an Enter press reaches this NPC.
func (n *npcCore) interacting(a scene.Action) bool {
	return a == scene.ActionEnter && n.onScreen() && n.touchingPlayer()
}

func (n *npcCore) Draw(r gfx.Renderer) {
	if !n.onScreen() {
		return
	}
	r.DrawSprite(n.anim.Frame(), n.toScreen(n.Position), n.opts)
	if n.debug() {
		box := scene.ColliderOf(n)
		box.Pos = n.toScreen(box.Pos)
		r.DrawRect(box, gfx.White, false)
	}
}
