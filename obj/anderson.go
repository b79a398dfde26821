package obj

import (
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/scene"
)

// andersonState is one step of Anderson's flower quest.
type andersonState interface {
	Name() string
	OnScreen(a *Anderson)
	ChatEnded(a *Anderson)
}

var (
	andersonIdle    andersonState = &idleChat{}
	andersonFlower  andersonState = &flowerChat{}
	andersonTurning andersonState = &turningChat{}
	andersonVillain andersonState = &villainChat{}
)

const (
	villainRiseDelay = 1.0
	villainRiseSpeed = 200.0
)

type idleChat struct{}

func (idleChat) Name() string { return "idle" }
func (idleChat) OnScreen(a *Anderson) {}
func (idleChat) ChatEnded(a *Anderson) {}

type flowerChat struct{}

func (flowerChat) Name() string { return "flower" }
func (flowerChat) OnScreen(a *Anderson) {
	a.chat(
		"ANDERSON: Hello, I'm Anderson. I like cookies",
		"ANDERSON: Oh, you have a blue flower, can I smell it?",
		"YOU: Actually, it's purple",
		"ANDERSON: Bruh... Anyway, can I smell it?",
		"YOU: Sure, go ahead",
	)
}
func (flowerChat) ChatEnded(a *Anderson) { a.state = andersonTurning }

type turningChat struct{}

func (turningChat) Name() string { return "turning" }
func (turningChat) OnScreen(a *Anderson) {
	a.chat(
		"ANDERSON: I Think the flower is making me feel weird",
		"ANDERSON: I'm turning into a villain",
	)
}
func (turningChat) ChatEnded(a *Anderson) {
	if w := a.World(); w != nil {
		w.AddDialog(dialog.Entry{Message: "ACT 1: The villain", Duration: 4, Fullscreen: true})
	}
	a.anim.Play("villain")
	a.villain = true
	a.state = andersonVillain
}

type villainChat struct{}

func (villainChat) Name() string { return "villain" }
func (villainChat) OnScreen(a *Anderson) {
	a.chat("ANDERSON: I'm a villain now, I will destroy the world")
	if w := a.World(); w != nil {
		w.EnablePortal()
	}
}
func (villainChat) ChatEnded(a *Anderson) { a.state = andersonIdle }

// Anderson smells the flower the player brings and turns into the villain,
// which opens the level portal.
type Anderson struct {
	npcCore
	state   andersonState
	villain bool
	risen   float64
}

func NewAnderson(e levels.Entity) *Anderson {
	return &Anderson{npcCore: newNPCCore(e, spriteAnderson)}
}

// State names the current quest step.
func (a *Anderson) State() string { return a.state.Name() }

func (a *Anderson) Villain() bool { return a.villain }

func (a *Anderson) OnCreated() {
	a.create()
	a.anim.Add("idle", gfx.NewAnimation(a.Sprite, 2, true, gfx.Cell{}, gfx.Cell{Col: 1}))
	a.anim.Add("villain", gfx.NewAnimation(a.Sprite, 1, true, gfx.Cell{Col: 2}))
	a.state = andersonIdle
	a.villain = false
	a.risen = 0
}

func (a *Anderson) OnAction(act scene.Action) {
	if !a.interacting(act) || a.villain {
		return
	}
	p := playerOf(a.World())
	if p == nil || p.Tree().ChildOfKind(p, scene.KindItem, "flower") == nil {
		return
	}
	a.state = andersonFlower
}

func (a *Anderson) OnUpdated(dt float64) {
	if !a.onScreen() {
		return
	}
	if a.chatEnded() {
		a.state.ChatEnded(a)
	}
	a.anim.Update(dt)
	a.state.OnScreen(a)

	if a.villain && a.state == andersonIdle {
		a.risen += dt
		if a.risen > villainRiseDelay {
			a.Position.Y -= villainRiseSpeed * dt
		}
	}
}
