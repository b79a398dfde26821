package game

import (
	"github.com/milk9111/truecolor/audio"
	"github.com/milk9111/truecolor/input"
	"github.com/milk9111/truecolor/obj"
	"github.com/milk9111/truecolor/scene"
)

// OpenMenu shows the title menu. Continue is offered when a level is
// loaded.
func (g *Game) OpenMenu() {
	g.inMenu = true
	g.paused = false
	g.menu.CanContinue = g.level != nil
	if g.menu.CanContinue && !g.over {
		g.menu.Select(obj.MenuContinue)
	} else {
		g.menu.Select(obj.MenuNewGame)
	}
}

// InMenu reports whether the title menu is showing.
func (g *Game) InMenu() bool { return g.inMenu }

// Menu returns the title menu node.
func (g *Game) Menu() *obj.Menu { return g.menu }

func (g *Game) menuInput(in input.Source) {
	switch {
	case in.Pressed(input.Up):
		g.menu.OnAction(scene.ActionUp)
		g.sounds.Play(audio.Select)
	case in.Pressed(input.Down):
		g.menu.OnAction(scene.ActionDown)
		g.sounds.Play(audio.Select)
	case in.Pressed(input.Enter):
		g.chooseMenu(g.menu.Selected())
	}
}

func (g *Game) chooseMenu(choice string) {
	switch choice {
	case obj.MenuContinue:
		g.inMenu = false
	case obj.MenuNewGame:
		if err := g.Restart(); err != nil {
			g.logger.Error("new game failed", "err", err)
			return
		}
		g.inMenu = false
	case obj.MenuExit:
		g.Quit()
	}
}
