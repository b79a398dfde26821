package obj

import (
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/scene"
)

type erikChat int

const (
	erikNone erikChat = iota
	erikHello
	erikThanks
)

// Erik asks for his bees to be calmed and opens the portal once they are.
type Erik struct {
	npcCore
	current     erikChat
	clearedBees bool
	toldSecret  bool
}

func NewErik(e levels.Entity) *Erik {
	return &Erik{npcCore: newNPCCore(e, spriteErik)}
}

// ToldSecret reports whether the portal has been opened.
func (e *Erik) ToldSecret() bool { return e.toldSecret }

func (e *Erik) OnCreated() {
	e.create()
	e.anim.Add("idle", gfx.NewAnimation(e.Sprite, 2, true, gfx.Cell{}, gfx.Cell{Col: 1}))
	e.current = erikNone
	e.clearedBees = false
	e.toldSecret = false
}

func (e *Erik) OnAction(a scene.Action) {
	if !e.interacting(a) {
		return
	}
	if e.clearedBees {
		e.current = erikThanks
		return
	}
	e.current = erikHello
}

func (e *Erik) OnUpdated(dt float64) {
	if !e.onScreen() {
		return
	}
	if e.chatEnded() {
		if e.clearedBees && !e.toldSecret {
			if w := e.World(); w != nil {
				w.EnablePortal()
			}
			e.toldSecret = true
		}
		e.current = erikNone
	}
	e.anim.Update(dt)
	e.checkBees()

	switch e.current {
	case erikHello:
		e.chat(
			"ERIK: Hello, Anderson got my bees angry",
			"ERIK: Please help me to calm them down",
			"ERIK: I'll tell you a secret if you do it",
			"YOU: Sure, I'll help you",
		)
	case erikThanks:
		if e.toldSecret {
			e.chat("ERIK: Go save the world, hero!")
			return
		}
		e.chat(
			"ERIK: Thanks for helping me with the bees",
			"ERIK: The secret is that... I'm a bee too",
			"ERIK: Lol, just kidding, I'm a human",
			"ERIK: The secret is that...",
			"ERIK: I can open portals, like in rick and morty",
			"ERIK: I'll open one for you to the city",
			"ERIK: In the city you might find the hex guardian",
			"ERIK: He may provide you with the infinity gem that\nyou need to bring balance to the world",
		)
	}
}

// checkBees counts the bees on screen. Only those matter, so a mad bee far
// away does not block the quest.
func (e *Erik) checkBees() {
	if e.toldSecret {
		return
	}
	e.clearedBees = false
	t := e.Tree()
	if t == nil {
		return
	}
	c := e.cam()
	for _, n := range t.ChildrenOfKind(nil, scene.KindEnemy) {
		bee, ok := n.(*Bee)
		if !ok || (c != nil && !c.IsOnScreen(bee.Position)) {
			continue
		}
		if !bee.Harmless() {
			return
		}
	}
	e.clearedBees = true
}
