package obj

import (
	"github.com/milk9111/truecolor/config"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/physics"
	"github.com/milk9111/truecolor/scene"
)

// Register adds every entity type the levels may name, plus the mini-games
// NPCs can start.
func Register(reg *scene.Registry, tune config.Player, stepper *physics.Stepper) {
	reg.Register("player", func(e levels.Entity) scene.Node { return NewPlayer(e, tune, stepper) })
	reg.Register("coin", func(e levels.Entity) scene.Node { return NewCoin(e) })
	reg.Register("purse", func(e levels.Entity) scene.Node { return NewPurse(e) })
	reg.Register("bug_spray", func(e levels.Entity) scene.Node { return NewBugSpray(e) })
	reg.Register("flower", func(e levels.Entity) scene.Node { return NewFlower(e) })
	reg.Register("portal", func(e levels.Entity) scene.Node { return NewPortal(e) })
	reg.Register("checkpoint", func(e levels.Entity) scene.Node { return NewCheckpoint(e) })
	reg.Register("gem", func(e levels.Entity) scene.Node { return NewGem(e) })
	reg.Register("anderson", func(e levels.Entity) scene.Node { return NewAnderson(e) })
	reg.Register("bee", func(e levels.Entity) scene.Node { return NewBee(e) })
	reg.Register("erik", func(e levels.Entity) scene.Node { return NewErik(e) })
	reg.Register("martin", func(e levels.Entity) scene.Node { return NewMartin(e) })

	reg.RegisterMiniGame(shellGameName, NewShellGame)
}
