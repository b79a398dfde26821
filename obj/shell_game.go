package obj

import (
	"fmt"

	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/input"
	"github.com/milk9111/truecolor/scene"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	flagTaughtShellGame = "DidTeachHowToPlayShellGame"

	shellCount    = 3
	shellPadding  = 20.0
	shellSpeed    = 100.0
	shellReveal   = 4.0
	shellRaise    = 40.0
	scrambleTime  = 4.0
	prizeName     = "gem"
	shellNameBase = "shell_"
)

// prize marks the shell hiding the gem.
type prize struct {
	scene.Base
}

func (*prize) Kind() scene.Kind { return scene.KindItem }

// Shell is one cup of the shell game. It lives in screen space.
type Shell struct {
	scene.Base
	reveal float64
	from   geom.Vec
	to     geom.Vec
	tween  *gween.Tween
}

func newShell(i int, at geom.Vec) *Shell {
	s := &Shell{}
	s.Name = fmt.Sprintf("%s%d", shellNameBase, i+1)
	s.Position = at
	s.Sprite = spriteShell
	s.to = at
	return s
}

func (*Shell) Kind() scene.Kind { return scene.KindPiece }

// Moving reports whether a swap is still in flight.
func (s *Shell) Moving() bool { return s.tween != nil }

// HasPrize reports whether the gem is under this shell.
func (s *Shell) HasPrize() bool {
	t := s.Tree()
	return t != nil && t.ChildOfKind(s, scene.KindItem, prizeName) != nil
}

// display lifts the shell for a few seconds so the gem can be seen.
func (s *Shell) display() {
	s.reveal = shellReveal
}

// moveTo slides the shell to p at constant speed. Shells that are on
// display stay where they are.
func (s *Shell) moveTo(p geom.Vec) {
	if s.reveal > 0 || p == s.Position {
		return
	}
	s.from = s.Position
	s.to = p
	dur := p.Sub(s.Position).Length() / shellSpeed
	s.tween = gween.New(0, 1, float32(dur), ease.InOutQuad)
}

func (s *Shell) OnUpdated(dt float64) {
	s.reveal -= dt
	if s.reveal < 0 {
		s.reveal = 0
	}
	if s.tween != nil {
		t, done := s.tween.Update(float32(dt))
		s.Position = s.from.Add(s.to.Sub(s.from).Mult(float64(t)))
		if done {
			s.Position = s.to
			s.tween = nil
		}
	}
	for _, c := range s.Children() {
		c.Core().Position = s.Position
	}
}

func (s *Shell) Draw(r gfx.Renderer) {
	if s.HasPrize() {
		r.DrawSprite(spriteGem, s.Position, gfx.Options{})
	}
	at := s.Position
	at.Y -= shellRaise * s.reveal
	r.DrawSprite(s.Sprite, at, gfx.Options{})
}

// ShellGame hides the gem under one of three shells, shuffles them and
// lets the player pick one with the slot keys.
type ShellGame struct {
	scene.MiniGame
	moveTime float64
}

func NewShellGame() scene.MiniGameNode {
	g := &ShellGame{}
	g.Name = shellGameName
	return g
}

func (g *ShellGame) OnCreated() {
	w := g.World()
	t := g.Tree()
	if w == nil || t == nil {
		return
	}
	g.moveTime = 0
	t.ClearChildren(g)
	w.AddDialog(dialog.Entry{Message: "Pick the right shell by pressing 1,2 or 3", Duration: 2})

	screen := geom.V(common.ScreenWidth, common.ScreenHeight)
	if c := w.Camera(); c != nil {
		screen = c.ScreenSize()
	}
	under := w.Rand().Intn(shellCount)
	total := shellCount*common.SpriteSize + (shellCount-1)*shellPadding
	y := screen.Y*0.5 - common.SpriteSize*0.5
	for i := 0; i < shellCount; i++ {
		x := screen.X*0.5 - total*0.5 + float64(i)*(common.SpriteSize+shellPadding)
		s := newShell(i, geom.V(x, y))
		t.Add(g, s)
		if i == under {
			gem := &prize{}
			gem.Name = prizeName
			t.Add(s, gem)
		}
		s.display()
	}
}

// Shell returns the i-th shell, counting from 1.
func (g *ShellGame) Shell(i int) *Shell {
	s, _ := scene.ChildAs[*Shell](g.Tree(), g, fmt.Sprintf("%s%d", shellNameBase, i))
	return s
}

func (g *ShellGame) shells() []*Shell {
	out := make([]*Shell, 0, shellCount)
	for i := 1; i <= shellCount; i++ {
		s := g.Shell(i)
		if s == nil {
			return nil
		}
		out = append(out, s)
	}
	return out
}

func (g *ShellGame) OnUpdated(dt float64) {
	w := g.World()
	if w == nil || g.IsOver() {
		return
	}
	g.UpdateChildren(dt)

	switch {
	case g.revealing():
	case g.moveTime < scrambleTime:
		g.moveTime += dt
		g.scramble()
	case !w.Flag(flagTaughtShellGame):
		w.AddDialog(dialog.Entry{Message: "Press 1, 2 or 3 to select a shell", Duration: 3})
		w.SetFlag(flagTaughtShellGame, true)
	default:
		g.pick(w.Input())
	}
}

// revealing reports whether any shell is still lifted.
func (g *ShellGame) revealing() bool {
	for _, s := range g.shells() {
		if s.reveal > 0 {
			return true
		}
	}
	return false
}

func (g *ShellGame) pick(in input.Source) {
	if in == nil {
		return
	}
	shells := g.shells()
	for i, s := range shells {
		k, ok := input.Slot(i)
		if ok && in.Pressed(k) {
			g.Finish(s.HasPrize())
			return
		}
	}
}

// scramble swaps every shell with its neighbour in a random order. Only
// idle shells move, so one call usually starts a single swap.
func (g *ShellGame) scramble() {
	shells := g.shells()
	if len(shells) != shellCount {
		return
	}
	for _, s := range shells {
		if s.Moving() {
			return
		}
	}
	g.World().Rand().Shuffle(len(shells), func(i, j int) {
		shells[i], shells[j] = shells[j], shells[i]
	})
	for i, s := range shells {
		swap(s, shells[(i+1)%len(shells)])
	}
}

func swap(a, b *Shell) {
	if a.Position == b.Position || a.Moving() || b.Moving() {
		return
	}
	pa, pb := a.Position, b.Position
	a.moveTo(pb)
	b.moveTo(pa)
}

func (g *ShellGame) Draw(r gfx.Renderer) {
	g.DrawChildren(r)
}
