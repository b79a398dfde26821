package obj

import (
	"math"

	"github.com/milk9111/truecolor/audio"
	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/input"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/scene"
)

const (
	flagKnowsHowToUseBugSpray = "KnowsHowToUseBugSpray"

	particleCount    = 80
	emissionRate     = 40
	emissionPerSetup = 8
	emissionInterval = 0.05
	sprayCone        = 45.0
	fadeAfter        = 0.6
)

// Damageable nodes react to bug spray.
type Damageable interface {
	scene.Node
	OnDamage()
}

type particle struct {
	pos      geom.Vec
	vel      geom.Vec
	lifespan float64
}

func (p *particle) update(dt float64) {
	p.pos = p.pos.Add(p.vel.Mult(dt))
	p.lifespan -= dt
}

// sprayBehavior emits a cone of particles while the interact key is held.
// Particles pacify whatever Damageable node they touch.
type sprayBehavior struct {
	particles []particle
	emitted   int
	sinceLast float64
}

func (s *sprayBehavior) created(it *Item) {
	s.particles = s.particles[:0]
	s.emitted = 0
	s.sinceLast = 0
}

func (s *sprayBehavior) collect(it *Item) {
	it.carry()
	if !it.carried {
		return
	}
	w := it.World()
	if !w.Flag(flagKnowsHowToUseBugSpray) {
		w.AddDialog(dialog.Entry{Message: "You can use the " + it.Hint + " by pressing X", Duration: 2, ID: 10})
		w.SetFlag(flagKnowsHowToUseBugSpray, true)
	}
	s.particles = make([]particle, particleCount)
	s.emitted = 0
}

func (s *sprayBehavior) active(it *Item, dt float64) {
	alive := s.step(it, dt)
	w := it.World()
	if w.IsGameOver() {
		return
	}
	holding := w.Input() != nil && w.Input().Held(input.Interact)
	if holding {
		s.sinceLast += dt
		w.Sounds().Loop(audio.Spray)
	}
	if alive <= emissionRate && holding && s.sinceLast >= emissionInterval {
		s.emitted -= alive
		if s.emitted < 0 {
			s.emitted = 0
		}
		s.emit(it)
	}
}

func (s *sprayBehavior) inactive(it *Item, dt float64) {
	s.step(it, dt)
}

func (s *sprayBehavior) emit(it *Item) {
	w := it.World()
	p := playerOf(w)
	if p == nil {
		return
	}
	rng := w.Rand()
	setup := 0
	for i := range s.particles {
		pt := &s.particles[i]
		if pt.lifespan > 0 {
			continue
		}
		s.emitted++
		if s.emitted > emissionRate {
			break
		}
		setup++
		if setup > emissionPerSetup {
			break
		}
		s.sinceLast = 0

		angle := (float64(rng.Intn(int(sprayCone))) - sprayCone*0.5) * math.Pi / 180
		speed := float64(rng.Intn(100) + 50)
		pt.pos = it.Position
		pt.vel = geom.Rotate(p.Facing(), angle).Mult(speed)
		pt.lifespan = float64(rng.Intn(100))/100*2 + 0.1
	}
}

// step advances live particles and applies them to on-screen targets. It
// returns how many particles are still alive.
func (s *sprayBehavior) step(it *Item, dt float64) int {
	targets := sprayTargets(it)
	alive := 0
	for i := range s.particles {
		pt := &s.particles[i]
		if pt.lifespan <= 0 {
			continue
		}
		pt.update(dt)
		alive++

		box := geom.Rect{Pos: pt.pos, Size: geom.V(common.SpriteSize*0.5, common.SpriteSize*0.5)}
		for _, t := range targets {
			if geom.Overlaps(scene.ColliderOf(t), box) {
				t.OnDamage()
			}
		}
	}
	return alive
}

func sprayTargets(it *Item) []Damageable {
	t := it.Tree()
	if t == nil {
		return nil
	}
	c := it.cam()
	var out []Damageable
	t.Walk(func(n scene.Node) bool {
		if d, ok := n.(Damageable); ok && (c == nil || c.IsOnScreen(n.Core().Position)) {
			out = append(out, d)
		}
		return true
	})
	return out
}

func (s *sprayBehavior) draw(it *Item, r gfx.Renderer) {
	for _, pt := range s.particles {
		if pt.lifespan <= 0 {
			continue
		}
		frame := spriteSpray
		if pt.lifespan <= fadeAfter {
			frame.Y += frame.H
		}
		r.DrawSprite(frame, it.toScreen(pt.pos), gfx.Options{})
	}
}

// Particles returns how many spray particles are alive.
func (it *Item) Particles() int {
	s, ok := it.behavior.(*sprayBehavior)
	if !ok {
		return 0
	}
	n := 0
	for _, pt := range s.particles {
		if pt.lifespan > 0 {
			n++
		}
	}
	return n
}

func NewBugSpray(e levels.Entity) *Item {
	return newItem(e, spriteBugSpray, "Bug Spray", &sprayBehavior{})
}
