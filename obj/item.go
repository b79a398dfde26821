package obj

import (
	"math"

	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/scene"
	"github.com/milk9111/truecolor/script"
)

const (
	flagKnowsHowToCollect = "KnowsHowToCollect"
	wiggleAmplitude       = 5.0
	hintRise              = 30.0
)

// itemBehavior decides what picking an item up does.
type itemBehavior interface {
	collect(it *Item)
}

// Optional behavior hooks.
type (
	itemGate interface {
		enabled(it *Item) bool
	}
	itemActive interface {
		active(it *Item, dt float64)
		inactive(it *Item, dt float64)
	}
	itemDrawer interface {
		draw(it *Item, r gfx.Renderer)
	}
	itemCreator interface {
		created(it *Item)
	}
)

// Item is anything the player can walk into or pick up.
type Item struct {
	entityNode

	Hint     string
	Auto     bool
	Wiggle   bool
	kind     scene.Kind
	behavior itemBehavior
	visible  *script.Condition
	anim     *gfx.Animator

	carried   bool
	touching  bool
	phase     float64
	wiggleDef bool
}

func newItem(e levels.Entity, def gfx.Sprite, hint string, b itemBehavior) *Item {
	it := &Item{
		entityNode: newEntityNode(e, def),
		Hint:       hint,
		Wiggle:     true,
		kind:       scene.KindItem,
		behavior:   b,
		wiggleDef:  true,
	}
	thumb := it.Sprite
	it.Thumbnail = &thumb
	it.anim = gfx.NewAnimator()
	it.anim.Add("idle", gfx.NewAnimation(it.Sprite, 1, true))
	return it
}

func (it *Item) Kind() scene.Kind { return it.kind }

// Carried reports whether the item is held by someone.
func (it *Item) Carried() bool { return it.carried }

func (it *Item) OnCreated() {
	it.respawn()
	it.carried = false
	it.touching = false
	it.Wiggle = it.wiggleDef
	if w := it.World(); w != nil && w.Rand() != nil {
		it.phase = float64(w.Rand().Intn(100)) / 100
	}
	if c, ok := it.behavior.(itemCreator); ok {
		c.created(it)
	}
	if src := it.entity.String("visible_if", ""); src != "" && it.visible == nil {
		cond, err := script.Compile(src)
		if err != nil && it.World() != nil {
			it.World().Logger().Warn("bad visible_if", "entity", it.Name, "err", err)
		}
		it.visible = cond
	}
}

// Enabled reports whether the item currently takes part in the level.
func (it *Item) Enabled() bool {
	if g, ok := it.behavior.(itemGate); ok && !g.enabled(it) {
		return false
	}
	if it.visible == nil {
		return true
	}
	w := it.World()
	if w == nil {
		return false
	}
	ok, err := it.visible.Eval(w.Flag)
	if err != nil {
		w.Logger().Debug("visible_if failed", "entity", it.Name, "err", err)
		return false
	}
	return ok
}

func (it *Item) Collider() geom.Rect {
	return it.DefaultCollider()
}

func (it *Item) touchingPlayer() bool {
	p := playerOf(it.World())
	return p != nil && scene.Colliding(it, p)
}

func (it *Item) OnUpdated(dt float64) {
	w := it.World()
	if w == nil || !it.Enabled() {
		return
	}
	it.carried = !it.TopLevel()
	it.touching = false

	if it.carried {
		if p := playerOf(w); p != nil && !p.IsSelected(it) {
			if a, ok := it.behavior.(itemActive); ok {
				a.inactive(it, dt)
			}
			return
		}
	}
	if !it.onScreen() {
		return
	}

	it.phase += dt
	if it.phase > 1 {
		it.phase = 0
	}
	it.anim.Update(dt)

	if !it.carried && it.touchingPlayer() {
		it.touching = true
		if it.Auto {
			it.collect()
			return
		}
		if !w.Flag(flagKnowsHowToCollect) {
			w.AddDialog(dialog.Entry{Message: "Press SPACE to collect items", Duration: 3})
			w.SetFlag(flagKnowsHowToCollect, true)
		}
	}

	if it.carried {
		if a, ok := it.behavior.(itemActive); ok {
			a.active(it, dt)
		}
	}
}

func (it *Item) OnAction(a scene.Action) {
	if a != scene.ActionEnter || it.carried || !it.TopLevel() || !it.Enabled() {
		return
	}
	if !it.touchingPlayer() {
		return
	}
	w := it.World()
	if p := playerOf(w); p != nil && p.StorageFull() {
		w.AddDialog(dialog.Entry{Message: "Can't store any more items.\nDrop the current item by pressing arrow down.", Duration: 2})
		return
	}
	w.SetFlag(flagKnowsHowToCollect, true)
	it.collect()
}

func (it *Item) collect() {
	if it.carried {
		return
	}
	it.behavior.collect(it)
}

// carry hands the item to the player.
func (it *Item) carry() {
	p := playerOf(it.World())
	if p == nil {
		return
	}
	if !it.Auto {
		it.Wiggle = false
	}
	if t := it.Tree(); t != nil && t.Reparent(it, p) {
		it.carried = true
	}
}

// remove takes the item out of the level for good.
func (it *Item) remove() {
	if t := it.Tree(); t != nil {
		t.Destroy(it)
	}
}

// OnReparent snaps a dropped item to the grid.
func (it *Item) OnReparent() {
	if !it.TopLevel() {
		return
	}
	it.Position = geom.SnapToGrid(it.Position, common.SpriteSize)
	it.carried = false
	if !it.Auto {
		it.Wiggle = true
	}
}

func (it *Item) Draw(r gfx.Renderer) {
	w := it.World()
	if w == nil || !it.Enabled() {
		return
	}
	if it.carried {
		if p := playerOf(w); p != nil && !p.IsSelected(it) {
			if d, ok := it.behavior.(itemDrawer); ok {
				d.draw(it, r)
			}
			return
		}
	}
	if !it.onScreen() {
		return
	}

	at := it.toScreen(it.Position)
	if it.Wiggle {
		at.Y -= wiggleAmplitude * math.Sin(2*math.Pi*it.phase)
	}
	r.DrawSprite(it.anim.Frame(), at, gfx.Options{})

	if it.touching && !it.Auto && it.Hint != "" {
		size := r.TextSize(it.Hint, 1)
		hint := geom.V(at.X+common.SpriteSize*0.5-size.X*0.5, at.Y-hintRise-size.Y*0.5)
		r.DrawText(it.Hint, hint, 1, gfx.White)
	}
	if d, ok := it.behavior.(itemDrawer); ok {
		d.draw(it, r)
	}
	if it.debug() {
		box := it.Collider()
		box.Pos = it.toScreen(box.Pos)
		r.DrawRect(box, gfx.White, false)
	}
}
