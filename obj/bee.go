package obj

import (
	"image/color"
	"math"

	bt "github.com/joeycumines/go-behaviortree"
	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/scene"
	"golang.org/x/image/colornames"
)

const (
	beeWiggle = 10.0
	beeShrink = 10.0
)

var beeMadTint color.Color = colornames.Cyan

// Bee flies back and forth between its spawn point and the travel cell,
// stinging the player until it is sprayed.
type Bee struct {
	npcCore

	from      geom.Vec
	to        geom.Vec
	delta     float64
	direction int
	harmless  bool

	dt    float64
	brain bt.Node
}

func NewBee(e levels.Entity) *Bee {
	b := &Bee{npcCore: newNPCCore(e, spriteBee)}
	b.brain = b.newBrain()
	return b
}

func (b *Bee) Kind() scene.Kind { return scene.KindEnemy }

// Harmless reports whether the bee has calmed down.
func (b *Bee) Harmless() bool { return b.harmless }

// Direction is 1 while the bee flies right and -1 while it flies left.
func (b *Bee) Direction() int { return b.direction }

// newBrain builds the per-frame tree: patrol, then sting when mad and
// touching the player.
func (b *Bee) newBrain() bt.Node {
	return bt.New(
		bt.Sequence,
		bt.New(b.patrol),
		bt.New(
			bt.Selector,
			bt.New(b.isHarmless),
			bt.New(
				bt.Sequence,
				bt.New(b.touching),
				bt.New(b.sting),
			),
		),
	)
}

func (b *Bee) OnCreated() {
	b.create()
	b.anim.Add("idle", gfx.NewAnimation(b.Sprite, 4.9, true,
		gfx.Cell{}, gfx.Cell{Col: 1}, gfx.Cell{}, gfx.Cell{Col: 1}))
	if w := b.World(); w != nil && w.Rand() != nil {
		b.anim.Update(0.5 + float64(w.Rand().Intn(10))/10)
	}
	b.opts.Tint = beeMadTint

	b.Position = b.entity.Position()
	b.from = b.Position
	b.to = b.entity.Point("travel", geom.Zero).Mult(common.SpriteSize)
	b.harmless = !b.entity.Bool("is_mad", false)
	b.delta = 0
	b.direction = -1
	if b.to.X > b.from.X {
		b.direction = 1
	}
}

// OnDamage calms the bee down for good.
func (b *Bee) OnDamage() {
	b.harmless = true
	b.opts.Tint = gfx.White
}

func (b *Bee) OnUpdated(dt float64) {
	if !b.onScreen() {
		return
	}
	b.anim.Update(dt)
	b.dt = dt
	if _, err := b.brain.Tick(); err != nil {
		if w := b.World(); w != nil {
			w.Logger().Debug("bee tick failed", "err", err)
		}
	}
}

func (b *Bee) patrol([]bt.Node) (bt.Status, error) {
	b.delta += b.dt
	b.Position = b.from.Add(b.to.Sub(b.from).Mult(b.delta))
	if b.delta > 1 {
		b.delta = 0
		b.from, b.to = b.to, b.from
		b.direction = -b.direction
	}
	b.opts.FlipX = b.direction < 0
	if b.direction < 0 {
		b.Position.X += common.SpriteSize
	}
	b.Position.Y += math.Sin(b.delta*2*math.Pi) * beeWiggle
	return bt.Success, nil
}

func (b *Bee) isHarmless([]bt.Node) (bt.Status, error) {
	if b.harmless {
		return bt.Success, nil
	}
	return bt.Failure, nil
}

func (b *Bee) touching([]bt.Node) (bt.Status, error) {
	if b.touchingPlayer() {
		return bt.Success, nil
	}
	return bt.Failure, nil
}

func (b *Bee) sting([]bt.Node) (bt.Status, error) {
	p := playerOf(b.World())
	if p == nil {
		return bt.Failure, nil
	}
	p.TakeDamage()
	return bt.Success, nil
}

// Collider is slightly smaller than the sprite and follows the flip.
func (b *Bee) Collider() geom.Rect {
	box := geom.R(b.Position.X, b.Position.Y, common.SpriteSize, common.SpriteSize)
	if b.direction < 0 {
		box.Pos.X -= common.SpriteSize
	}
	box.Size = box.Size.Sub(geom.V(beeShrink, beeShrink))
	box.Pos = box.Pos.Add(geom.V(beeShrink*0.5, beeShrink*0.5))
	return box
}

func (b *Bee) Draw(r gfx.Renderer) {
	if !b.onScreen() {
		return
	}
	at := b.Position
	if b.direction < 0 {
		at.X -= common.SpriteSize
	}
	r.DrawSprite(b.anim.Frame(), b.toScreen(at), b.opts)
	if b.debug() {
		box := b.Collider()
		box.Pos = b.toScreen(box.Pos)
		r.DrawRect(box, gfx.Damage, false)
	}
}
