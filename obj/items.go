package obj

import (
	"github.com/milk9111/truecolor/audio"
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/scene"
)

// autoItem configures an item that triggers on touch and never wiggles.
func autoItem(it *Item) *Item {
	it.Auto = true
	it.Wiggle = false
	it.wiggleDef = false
	return it
}

// carryBehavior hands the item to the player. Flowers and other quest
// items use it unchanged.
type carryBehavior struct{}

func (carryBehavior) collect(it *Item) { it.carry() }

func NewFlower(e levels.Entity) *Item {
	return newItem(e, spriteFlower, "Unknown Flower", carryBehavior{})
}

type coinBehavior struct{}

func (coinBehavior) created(it *Item) {
	it.anim = gfx.NewAnimator()
	it.anim.Add("idle", gfx.NewAnimation(it.Sprite, 10, true,
		gfx.Cell{}, gfx.Cell{Col: 1}, gfx.Cell{Col: 2}, gfx.Cell{Col: 3}, gfx.Cell{Col: 4}))
	if w := it.World(); w != nil && w.Rand() != nil {
		it.anim.Update(float64(w.Rand().Intn(100)) / 100)
	}
}

func (coinBehavior) collect(it *Item) {
	w := it.World()
	p := playerOf(w)
	if p == nil {
		return
	}
	it.remove()
	p.AddMoney(1)
	w.Sounds().Play(audio.CoinUp)
}

func NewCoin(e levels.Entity) *Item {
	return autoItem(newItem(e, spriteCoin, "Coin", coinBehavior{}))
}

type purseBehavior struct {
	slots int
}

func (b purseBehavior) collect(it *Item) {
	w := it.World()
	p := playerOf(w)
	if p == nil {
		return
	}
	it.remove()
	p.ExpandStorage(b.slots)
	w.AddDialog(dialog.Entry{Message: "Now you can store stuff in your tiny purse", Duration: 2})
}

func NewPurse(e levels.Entity) *Item {
	return newItem(e, spritePurse, "Tiny Purse", purseBehavior{slots: e.Int("slots", 2)})
}

// portalBehavior loads the target level once the portal is enabled.
type portalBehavior struct {
	target string
}

func (b portalBehavior) created(it *Item) {
	it.anim = gfx.NewAnimator()
	it.anim.Add("spin", gfx.NewAnimation(it.Sprite, 6, true, gfx.Cell{}, gfx.Cell{Col: 1}, gfx.Cell{Col: 2}))
	if w := it.World(); w != nil && it.entity.Bool("enabled", false) {
		w.EnablePortal()
	}
}

func (portalBehavior) enabled(it *Item) bool {
	w := it.World()
	return w != nil && w.PortalEnabled()
}

func (b portalBehavior) collect(it *Item) {
	if w := it.World(); w != nil && w.PortalEnabled() && b.target != "" {
		w.RequestLevel(b.target)
	}
}

func NewPortal(e levels.Entity) *Item {
	it := autoItem(newItem(e, spritePortal, "Portal", portalBehavior{target: e.String("level", "")}))
	it.kind = scene.KindTrigger
	return it
}

// checkpointBehavior moves the player's respawn point here, once.
type checkpointBehavior struct {
	reached bool
}

func (b *checkpointBehavior) created(it *Item) {
	b.reached = false
	it.Position.Y += 10
	it.anim = gfx.NewAnimator()
	it.anim.Add("idle", gfx.NewAnimation(it.Sprite, 1, true))
	it.anim.Add("collected", gfx.NewAnimation(it.Sprite, 1, true, gfx.Cell{Col: 1}))
}

func (b *checkpointBehavior) collect(it *Item) {
	if b.reached {
		return
	}
	w := it.World()
	p := playerOf(w)
	if p == nil {
		return
	}
	b.reached = true
	w.Sounds().Play(audio.Checkpoint)
	p.SetCheckpoint(it.Position)
	it.anim.Play("collected")
}

func NewCheckpoint(e levels.Entity) *Item {
	it := autoItem(newItem(e, spriteCheckpoint, "Check Point", &checkpointBehavior{}))
	it.kind = scene.KindTrigger
	return it
}

// gemBehavior ends the adventure when the gem is picked up.
type gemBehavior struct{}

func (gemBehavior) collect(it *Item) {
	it.carry()
	if !it.carried {
		return
	}
	w := it.World()
	w.AddDialog(dialog.Entry{Message: "Sorry, this is all I got for now XD", Duration: 1, Fullscreen: true, Persistent: true, ID: 10})
	w.AddDialog(dialog.Entry{Message: "Thanks for playing, though!", Duration: 1, Fullscreen: true, Persistent: true, ID: 11})
}

// NewGem builds the prize. It stays hidden until the showGem flag is set,
// unless the level supplies its own visible_if condition.
func NewGem(e levels.Entity) *Item {
	if !e.Has("visible_if") {
		props := make(map[string]interface{}, len(e.Props)+1)
		for k, v := range e.Props {
			props[k] = v
		}
		props["visible_if"] = `flag("` + flagShowGem + `")`
		e.Props = props
	}
	return newItem(e, spriteGem, "Gem", gemBehavior{})
}
