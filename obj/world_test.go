package obj

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/milk9111/truecolor/audio"
	"github.com/milk9111/truecolor/camera"
	"github.com/milk9111/truecolor/config"
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/input"
	"github.com/milk9111/truecolor/levels"
	"github.com/milk9111/truecolor/physics"
	"github.com/milk9111/truecolor/scene"
)

type fakeClip struct {
	plays   int
	playing bool
}

func (c *fakeClip) Play() {
	c.plays++
	c.playing = true
}

func (c *fakeClip) Stop() { c.playing = false }
func (c *fakeClip) Rewind() {}
func (c *fakeClip) IsPlaying() bool { return c.playing }

type fakeBackend struct {
	clips map[string]*fakeClip
}

func (b *fakeBackend) Load(name string) (audio.Clip, error) {
	c := &fakeClip{}
	b.clips[name] = c
	return c, nil
}

func (b *fakeBackend) plays(name string) int {
	if c, ok := b.clips[name]; ok {
		return c.plays
	}
	return 0
}

// fakeWorld is a minimal session for driving nodes by hand.
type fakeWorld struct {
	tree      *scene.Tree
	cam       *camera.Camera
	in        *input.State
	backend   *fakeBackend
	sounds    *audio.Bank
	logger    *log.Logger
	rng       *rand.Rand
	dialogs   dialog.Queue
	flags     map[string]bool
	player    scene.Node
	colliders []geom.Rect
	portal    bool
	level     string
	overs     int
	started   []string
	debug     bool
}

func newFakeWorld() *fakeWorld {
	w := &fakeWorld{
		cam:     camera.New(640, 360),
		in:      &input.State{},
		backend: &fakeBackend{clips: map[string]*fakeClip{}},
		logger:  log.New(io.Discard),
		rng:     rand.New(rand.NewSource(1)),
		flags:   map[string]bool{},
	}
	w.cam.SetWorldSize(1280, 480)
	w.sounds = audio.NewBank(w.backend, w.logger)
	w.tree = scene.NewTree(w)
	return w
}

func (w *fakeWorld) Camera() *camera.Camera { return w.cam }
func (w *fakeWorld) Input() input.Source { return w.in }
func (w *fakeWorld) Sounds() *audio.Bank { return w.sounds }
func (w *fakeWorld) Logger() *log.Logger { return w.logger }
func (w *fakeWorld) Rand() *rand.Rand { return w.rng }
func (w *fakeWorld) Debug() bool { return w.debug }
func (w *fakeWorld) AddDialog(e dialog.Entry) bool { return w.dialogs.Add(e) }
func (w *fakeWorld) Dialogs() *dialog.Queue { return &w.dialogs }
func (w *fakeWorld) PersistentDialogOpen() bool { return w.dialogs.PersistentOpen() }
func (w *fakeWorld) Flag(name string) bool { return w.flags[name] }
func (w *fakeWorld) SetFlag(name string, v bool) { w.flags[name] = v }
func (w *fakeWorld) OnScreenColliders() []geom.Rect { return w.colliders }
func (w *fakeWorld) Player() scene.Node { return w.player }
func (w *fakeWorld) MiniGameActive() bool { return false }
func (w *fakeWorld) EnablePortal() { w.portal = true }
func (w *fakeWorld) PortalEnabled() bool { return w.portal }
func (w *fakeWorld) RequestLevel(name string) { w.level = name }
func (w *fakeWorld) GameOver() { w.overs++ }
func (w *fakeWorld) IsGameOver() bool { return w.overs > 0 }

func (w *fakeWorld) StartMiniGame(name string) bool {
	w.started = append(w.started, name)
	return true
}

// spawn links n at the root and runs its create hook.
func (w *fakeWorld) spawn(n scene.Node) scene.Node {
	w.tree.Add(nil, n)
	scene.Create(n)
	return n
}

func (w *fakeWorld) spawnPlayer(x, y float64) *Player {
	p := NewPlayer(entity("player", x, y), config.Default().Player, physics.DefaultStepper())
	w.player = p
	w.spawn(p)
	return p
}

// dismissAll closes every persistent dialog in the queue.
func (w *fakeWorld) dismissAll() int {
	n := 0
	for w.dialogs.Dismiss() {
		n++
	}
	return n
}

func entity(kind string, x, y float64, props ...interface{}) levels.Entity {
	e := levels.Entity{Type: kind, X: x, Y: y, Props: map[string]interface{}{}}
	for i := 0; i+1 < len(props); i += 2 {
		e.Props[props[i].(string)] = props[i+1]
	}
	return e
}

func messages(q *dialog.Queue) []string {
	var out []string
	for {
		e, ok := q.Head()
		if !ok {
			return out
		}
		out = append(out, e.Message)
		if e.Persistent {
			q.Dismiss()
		} else {
			q.Tick(e.Duration)
		}
	}
}

func tick(n scene.Node, dt float64, frames int) {
	for i := 0; i < frames; i++ {
		scene.Update(n, dt)
	}
}
