package game

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/milk9111/truecolor/audio"
	"github.com/milk9111/truecolor/camera"
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/input"
	"github.com/milk9111/truecolor/scene"
)

var _ scene.World = (*Game)(nil)

func (g *Game) Camera() *camera.Camera { return g.cam }
func (g *Game) Input() input.Source { return g.in }
func (g *Game) Sounds() *audio.Bank { return g.sounds }
func (g *Game) Logger() *log.Logger { return g.logger }
func (g *Game) Rand() *rand.Rand { return g.rng }
func (g *Game) Debug() bool { return g.debug }

// SetDebug turns the collider overlay on or off.
func (g *Game) SetDebug(v bool) { g.debug = v }

func (g *Game) AddDialog(e dialog.Entry) bool { return g.dialogs.Add(e) }
func (g *Game) Dialogs() *dialog.Queue { return &g.dialogs }

// PersistentDialogOpen only looks at the head of the queue, so a chat is
// considered over while a timed message is showing.
func (g *Game) PersistentDialogOpen() bool { return g.dialogs.PersistentOpen() }

func (g *Game) Flag(name string) bool { return g.flags[name] }

func (g *Game) SetFlag(name string, v bool) {
	if g.flags == nil {
		g.flags = make(map[string]bool)
	}
	g.flags[name] = v
}

func (g *Game) OnScreenColliders() []geom.Rect { return g.onScreen }

// StaticColliders returns every level collider, on screen or not.
func (g *Game) StaticColliders() []geom.Rect { return g.static }

func (g *Game) Player() scene.Node { return g.tree.Get(g.player) }

func (g *Game) EnablePortal() { g.portal = true }
func (g *Game) PortalEnabled() bool { return g.portal }

func (g *Game) RequestLevel(name string) {
	if name == "" {
		return
	}
	g.pending = name
}

// GameOver latches the game-over state. Later calls are ignored.
func (g *Game) GameOver() {
	if g.over {
		return
	}
	g.over = true
	g.logger.Info("game over", "level", g.levelName)
}

func (g *Game) IsGameOver() bool { return g.over }
