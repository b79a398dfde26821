package platform

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/truecolor/game"
)

// Host adapts a session to ebiten.Game.
type Host struct {
	game     *game.Game
	renderer *Renderer
	poller   *Poller
	pause    *PauseMenu
	logger   *log.Logger
	timer    frameTimer
	width    int
	height   int
}

// frameTimer measures wall-clock time between updates. The first call has
// nothing to measure against and reports first.
type frameTimer struct {
	now   func() time.Time
	last  time.Time
	first float64
}

func (t *frameTimer) elapsed() float64 {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		return t.first
	}
	d := now.Sub(t.last).Seconds()
	t.last = now
	return d
}

var _ ebiten.Game = (*Host)(nil)

// NewHost wires g to the renderer and the local input devices.
func NewHost(g *game.Game, r *Renderer, logger *log.Logger) *Host {
	w, h := g.Config().Window.Width, g.Config().Window.Height
	host := &Host{
		game:     g,
		renderer: r,
		poller:   NewPoller(),
		logger:   logger,
		timer:    frameTimer{now: time.Now, first: 1 / float64(ebiten.TPS())},
		width:    w,
		height:   h,
	}
	host.pause = NewPauseMenu(g, w, h)
	g.SetInput(host.poller.State())
	return host
}

func (h *Host) Update() error {
	h.poller.Poll()
	if h.game.Paused() {
		if err := h.pause.Update(); err != nil {
			h.logger.Error("restart failed", "err", err)
		}
	}
	h.game.Frame(h.timer.elapsed())
	if h.game.Done() {
		return ebiten.Termination
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.renderer.Begin(screen)
	h.game.Draw(h.renderer)
	if h.game.Paused() {
		h.pause.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}
