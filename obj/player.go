package obj

import (
	"github.com/milk9111/truecolor/audio"
	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/config"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/input"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/physics"
	"github.com/milk9111/truecolor/scene"
)

const (
	hitboxWidth = 0.6
	groundReach = 2.0
	jumpSoften  = 0.98
)

// Player is the controllable hero. Carried items are its children.
type Player struct {
	entityNode

	tune    config.Player
	stepper *physics.Stepper
	body    physics.Body
	contact physics.Contact
	anim    *gfx.Animator

	lives        int
	money        int
	storage      int
	selected     int
	checkpoint   geom.Vec
	invulnerable float64
	jumpTime     float64
	moveX        float64
	grounded     bool
	facingRight  bool
	canMove      bool
	dead         bool
}

// NewPlayer builds the player for a level entity.
func NewPlayer(e levels.Entity, tune config.Player, stepper *physics.Stepper) *Player {
	if stepper == nil {
		stepper = physics.DefaultStepper()
	}
	p := &Player{
		entityNode: newEntityNode(e, spritePlayer),
		tune:       tune,
		stepper:    stepper,
	}
	p.Name = "player"
	w := common.SpriteSize * hitboxWidth
	p.body.Size = geom.V(w, common.SpriteSize)
	p.body.Offset = geom.V((common.SpriteSize-w)*0.5, 0)
	return p
}

func (p *Player) Kind() scene.Kind { return scene.KindPlayer }

func (p *Player) OnCreated() {
	p.respawn()
	p.body.Position = p.Position
	p.body.Velocity = geom.Zero
	p.body.Acceleration = geom.Zero
	p.checkpoint = p.Position
	p.lives = p.tune.Lives
	p.storage = p.tune.Storage
	p.money = 0
	p.selected = -1
	p.invulnerable = 0
	p.jumpTime = 0
	p.moveX = 0
	p.facingRight = true
	p.canMove = true
	p.dead = false

	p.anim = gfx.NewAnimator()
	p.anim.Add("idle", gfx.NewAnimation(p.Sprite, 4, true, gfx.Cell{}, gfx.Cell{Col: 1}))
	p.anim.Add("walk", gfx.NewAnimation(p.Sprite, 30, true,
		gfx.Cell{}, gfx.Cell{Col: 3}, gfx.Cell{Col: 3}, gfx.Cell{Col: 3},
		gfx.Cell{}, gfx.Cell{Col: 1}, gfx.Cell{Col: 2}, gfx.Cell{Col: 2}, gfx.Cell{Col: 1}))
	p.anim.Add("jump", gfx.NewAnimation(p.Sprite, 4, false, gfx.Cell{Col: 4}))
	p.anim.Add("fall", gfx.NewAnimation(p.Sprite, 4, false, gfx.Cell{Col: 5}))
	p.anim.Add("dead", gfx.NewAnimation(p.Sprite, 4, false, gfx.Cell{Col: 6}))

	if c := p.cam(); c != nil {
		screen := c.ScreenSize()
		c.SetOffset(geom.V(screen.X*0.5, screen.Y*0.66-20))
		c.SetFocus(p.Position)
	}
}

func (p *Player) Lives() int { return p.lives }
func (p *Player) Money() int { return p.money }
func (p *Player) Storage() int { return p.storage }
func (p *Player) Selected() int { return p.selected }
func (p *Player) Checkpoint() geom.Vec { return p.checkpoint }
func (p *Player) Dead() bool { return p.dead }
func (p *Player) Grounded() bool { return p.grounded }
func (p *Player) Invulnerable() bool { return p.invulnerable > 0 }
func (p *Player) Velocity() geom.Vec { return p.body.Velocity }
func (p *Player) Contact() physics.Contact { return p.contact }

// Facing is a unit vector pointing where the player looks.
func (p *Player) Facing() geom.Vec {
	if p.facingRight {
		return geom.V(1, 0)
	}
	return geom.V(-1, 0)
}

// SetVelocity overrides the body velocity.
func (p *Player) SetVelocity(v geom.Vec) {
	p.body.Velocity = v
}

// StorageFull reports whether another item can be carried.
func (p *Player) StorageFull() bool {
	return p.ChildCount() >= p.storage
}

// IsSelected reports whether n is the carried item in the selected slot.
func (p *Player) IsSelected(n scene.Node) bool {
	if n == nil || p.selected < 0 {
		return false
	}
	return p.IndexOf(n) == p.selected
}

// SelectedItem returns the carried item in the selected slot, or nil.
func (p *Player) SelectedItem() scene.Node {
	if p.selected < 0 {
		return nil
	}
	return p.ChildAt(p.selected)
}

// ExpandStorage adds slots. Growth that would exceed the cap is refused.
func (p *Player) ExpandStorage(n int) {
	if p.storage+n <= p.tune.MaxStorage {
		p.storage += n
	}
}

// AddMoney adds coins. Reaching the coins-per-life threshold converts the
// purse into an extra life.
func (p *Player) AddMoney(n int) {
	if p.money+n >= p.tune.CoinsPerLife {
		p.money = 0
		p.AddLife()
		return
	}
	p.money += n
}

func (p *Player) AddLife() {
	if p.lives+1 <= p.tune.MaxLives {
		p.lives++
	}
}

func (p *Player) SetCheckpoint(pos geom.Vec) {
	p.checkpoint = pos
}

// TakeDamage costs all coins when there are any, otherwise a life.
func (p *Player) TakeDamage() {
	if p.dead || p.invulnerable > 0 {
		return
	}
	if p.money > 0 {
		p.money = 0
		p.invulnerable = p.tune.InvulnerableSeconds
		p.play(audio.Damage)
		p.play(audio.CoinDown)
		return
	}
	p.LoseLife()
}

// LoseLife sends the player back to the checkpoint, or ends the game when
// no lives remain.
func (p *Player) LoseLife() {
	if p.dead {
		return
	}
	p.lives--
	if p.lives <= 0 {
		p.InstantDeath()
		return
	}
	p.invulnerable = p.tune.InvulnerableSeconds
	p.Position = p.checkpoint
	p.body.Position = p.checkpoint
	p.body.Velocity = geom.Zero
	p.body.Acceleration = geom.Zero
	p.canMove = false
	p.play(audio.Damage)
}

// InstantDeath ends the game.
func (p *Player) InstantDeath() {
	if p.dead {
		return
	}
	p.lives = 0
	p.dead = true
	p.canMove = false
	p.anim.Play("dead")
	if w := p.World(); w != nil {
		w.GameOver()
	}
}

func (p *Player) OnAction(a scene.Action) {
	if !p.canMove {
		return
	}
	switch a {
	case scene.ActionUp:
		if p.grounded {
			p.jumpTime = 0
			p.body.Velocity.Y = -p.tune.JumpSpeed
			p.grounded = false
			p.play(audio.Jump)
		} else if p.jumpTime > 0 {
			p.body.Acceleration.Y *= jumpSoften
		}
	case scene.ActionLeft:
		p.facingRight = false
		if !p.contact.LockLeft {
			p.moveX = -p.tune.Speed
		}
	case scene.ActionRight:
		p.facingRight = true
		if !p.contact.LockRight {
			p.moveX = p.tune.Speed
		}
	case scene.ActionDown:
		p.drop()
	}
}

// drop puts the selected item back into the world at the player's feet.
func (p *Player) drop() {
	item := p.SelectedItem()
	if item == nil {
		return
	}
	item.Core().Position = p.Position
	if t := p.Tree(); t != nil && t.MoveChildToRoot(p, item) {
		p.selected = -1
	}
}

// OnChildAdded selects the item that was just picked up.
func (p *Player) OnChildAdded(child scene.Node) {
	p.selected = p.ChildCount() - 1
}

func (p *Player) OnPhysics(dt float64) {
	if p.dead {
		return
	}
	w := p.World()
	if w == nil {
		return
	}
	if c := w.Camera(); c != nil && c.IsOffLimits(p.Position) {
		p.LoseLife()
		return
	}

	cols := w.OnScreenColliders()
	p.body.Position = p.Position
	p.body.Velocity.X = p.moveX
	if p.body.Velocity.Y < 0 {
		p.jumpTime += dt
	}
	p.contact = p.stepper.Step(&p.body, cols, dt)
	p.grounded = p.contact.Grounded || (p.body.Velocity.Y >= 0 && physics.Grounded(&p.body, cols, groundReach))
	p.Position = p.body.Position
}

func (p *Player) OnUpdated(dt float64) {
	w := p.World()
	if w == nil {
		return
	}

	p.invulnerable -= dt
	if p.invulnerable < 0 {
		p.invulnerable = 0
	}
	persistent := w.PersistentDialogOpen()
	p.canMove = p.lives > 0 && !persistent
	if persistent {
		p.anim.Play("idle")
	}
	p.selectSlot(w.Input())

	if c := w.Camera(); c != nil {
		c.SetFocus(p.Position)
	}

	if p.canMove {
		p.animate(w)
	}
	p.moveX = 0
	p.anim.Update(dt)

	for _, c := range p.Children() {
		c.Core().Position = p.Position
		scene.Update(c, dt)
	}
}

func (p *Player) animate(w scene.World) {
	sounds := w.Sounds()
	if p.grounded {
		if p.moveX != 0 {
			p.anim.Play("walk")
			sounds.Loop(audio.Walk)
		} else {
			p.anim.Play("idle")
			sounds.SetPlayed(audio.Walk, false)
		}
		return
	}
	switch {
	case p.body.Velocity.Y < 0:
		p.anim.Play("jump")
	case p.body.Velocity.Y > 0:
		p.anim.Play("fall")
	}
}

func (p *Player) selectSlot(in input.Source) {
	if in == nil {
		return
	}
	for i := 0; i < p.storage; i++ {
		k, ok := input.Slot(i)
		if ok && in.Pressed(k) {
			p.selected = i
			return
		}
	}
}

func (p *Player) play(name string) {
	if w := p.World(); w != nil {
		w.Sounds().Play(name)
	}
}

// Collider is the hitbox, narrower than the sprite and centered on it.
func (p *Player) Collider() geom.Rect {
	b := p.body
	b.Position = p.Position
	return b.Collider()
}

func (p *Player) Draw(r gfx.Renderer) {
	opts := gfx.Options{FlipX: !p.facingRight}
	if p.invulnerable > 0 {
		opts.Tint = gfx.Damage
	}
	r.DrawSprite(p.anim.Frame(), p.toScreen(p.Position), opts)

	if p.debug() {
		box := p.Collider()
		box.Pos = p.toScreen(box.Pos)
		r.DrawRect(box, gfx.Debug, false)
	}

	if item := p.SelectedItem(); item != nil {
		scene.Draw(item, r)
	}
}
