package game

import "github.com/milk9111/truecolor/scene"

// StartMiniGame builds the named mini-game and hands it the frame until it
// finishes. Only one mini-game runs at a time.
func (g *Game) StartMiniGame(name string) bool {
	if g.miniGame != nil {
		g.logger.Warn("mini-game already running", "running", g.miniGameName, "requested", name)
		return false
	}
	m, ok := g.registry.CreateMiniGame(name)
	if !ok {
		g.logger.Warn("unknown mini-game", "name", name)
		return false
	}
	if g.tree.Attach(m) == 0 {
		return false
	}
	g.miniGame = m
	g.miniGameName = name
	scene.Create(m)
	g.logger.Debug("mini-game started", "name", name)
	return true
}

func (g *Game) MiniGameActive() bool { return g.miniGame != nil }

// MiniGame returns the running mini-game, or nil.
func (g *Game) MiniGame() scene.MiniGameNode { return g.miniGame }

func (g *Game) updateMiniGame(dt float64) {
	if !g.miniGame.IsOver() {
		scene.Update(g.miniGame, dt)
	}
	if !g.miniGame.IsOver() {
		return
	}

	name, won := g.miniGameName, g.miniGame.IsWon()
	// Closed before notifying so an observer may start the next mini-game.
	g.closeMiniGame()
	g.logger.Debug("mini-game over", "name", name, "won", won)
	for _, n := range g.tree.Children(nil) {
		if o, ok := n.(scene.MiniGameObserver); ok {
			o.OnMiniGameOver(name, won)
		}
	}
}

func (g *Game) closeMiniGame() {
	if g.miniGame == nil {
		return
	}
	g.tree.Destroy(g.miniGame)
	g.miniGame = nil
	g.miniGameName = ""
}
