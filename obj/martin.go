package obj

import (
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/scene"
)

const (
	flagShowGem   = "showGem"
	shellGameName = "ShellGame"
)

// Martin guards the gem behind a round of the shell game.
type Martin struct {
	npcCore
	startedGame bool
	greeted     bool
	retrying    bool
	won         bool
}

func NewMartin(e levels.Entity) *Martin {
	return &Martin{npcCore: newNPCCore(e, spriteMartin)}
}

// Won reports whether the player beat the shell game.
func (m *Martin) Won() bool { return m.won }

func (m *Martin) OnCreated() {
	m.create()
	m.anim.Add("idle", gfx.NewAnimation(m.Sprite, 2, true, gfx.Cell{}, gfx.Cell{Col: 1}))
	m.startedGame = false
	m.greeted = false
	m.retrying = false
	m.won = false
}

// OnAllCreated hides the gem until the game is won.
func (m *Martin) OnAllCreated() {
	if w := m.World(); w != nil {
		w.SetFlag(flagShowGem, false)
	}
}

func (m *Martin) OnAction(a scene.Action) {
	if !m.interacting(a) {
		return
	}
	switch {
	case m.won:
		m.chat("MARTIN: Thinking...")
	case !m.greeted:
		m.greeted = true
		m.chat(
			"MARTIN: Thinking... 1/2 (with eyes closed)",
			"MARTIN: Thinking... 2/2 (with eyes closed)",
			"MARTIN: Hello, I'm Martin, the Hex Guardian",
			"MARTIN: I'm here to protect the infinity gem",
			"MARTIN: I know what you are thinking...",
			"MARTIN: And yes...",
			"MARTIN: My armor is fully made of gold",
			"YOU: I wasn't thinking that",
			"MARTIN: I know, I'm just messing with you",
			"YOU: Plus, it looks like plastic",
			"MARTIN: We are in the ancient times, we don't have plastic yet",
			"MARTIN: Anyway, you can't have the gem",
			"MARTIN: You need to prove yourself first",
			"MARTIN: By playing a shell game... with me",
			"MARTIN: If you guess where the gem is, you can have it",
			"YOU: That sounds fair",
		)
	case !m.retrying:
		m.retrying = true
		m.startedGame = false
		m.chat("MARTIN: Fine, I can give you another chance")
	}
}

func (m *Martin) OnUpdated(dt float64) {
	if !m.onScreen() {
		return
	}
	if m.chatEnded() {
		m.retrying = false
		if !m.startedGame {
			m.startedGame = true
			if w := m.World(); w != nil {
				w.StartMiniGame(shellGameName)
			}
		}
	}
	m.anim.Update(dt)
}

func (m *Martin) OnMiniGameOver(name string, won bool) {
	if name != shellGameName {
		return
	}
	m.won = won
	if !won {
		m.chat("MARTIN: You lost the game. I'll keep the gem")
		return
	}
	if w := m.World(); w != nil {
		w.SetFlag(flagShowGem, true)
	}
	m.chat(
		"MARTIN: You won the game, here is the gem",
		"MARTIN: Use it wisely",
	)
}
