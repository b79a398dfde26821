package obj

import (
	"image/color"

	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/scene"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
)

// Menu entries.
const (
	MenuContinue = "Continue"
	MenuNewGame  = "New Game"
	MenuExit     = "Exit"
)

const menuScale = 1.75

var menuSelected color.Color = colornames.Yellow

// Menu is the title and pause menu. Continue is only offered while a
// session can be resumed.
type Menu struct {
	scene.Base
	CanContinue bool

	selected string
	pulse    *gween.Tween
	scale    float64
}

func NewMenu() *Menu {
	m := &Menu{selected: MenuNewGame, scale: pulseTo}
	m.Name = "menu"
	return m
}

func (*Menu) Kind() scene.Kind { return scene.KindMenu }

// Selected returns the highlighted entry.
func (m *Menu) Selected() string { return m.selected }

// Select highlights name when it is currently offered.
func (m *Menu) Select(name string) {
	for _, o := range m.Options() {
		if o == name {
			m.selected = name
			m.restartPulse()
			return
		}
	}
}

func (m *Menu) canContinue() bool {
	if !m.CanContinue {
		return false
	}
	w := m.World()
	return w == nil || !w.IsGameOver()
}

// Options lists the entries in display order.
func (m *Menu) Options() []string {
	if m.canContinue() {
		return []string{MenuContinue, MenuNewGame, MenuExit}
	}
	return []string{MenuNewGame, MenuExit}
}

func (m *Menu) OnAction(a scene.Action) {
	switch a {
	case scene.ActionUp:
		m.move(-1)
	case scene.ActionDown:
		m.move(1)
	}
}

func (m *Menu) move(step int) {
	opts := m.Options()
	idx := -1
	for i, o := range opts {
		if o == m.selected {
			idx = i
		}
	}
	if idx < 0 {
		m.selected = opts[0]
	} else {
		m.selected = opts[(idx+step+len(opts))%len(opts)]
	}
	m.restartPulse()
}

func (m *Menu) restartPulse() {
	m.pulse = gween.New(pulseFrom, pulseTo, pulseTime, ease.Linear)
	m.scale = pulseFrom
}

func (m *Menu) OnUpdated(dt float64) {
	if m.pulse == nil {
		return
	}
	v, done := m.pulse.Update(float32(dt))
	m.scale = float64(v)
	if done {
		m.pulse = nil
	}
}

func (m *Menu) Draw(r gfx.Renderer) {
	opts := m.Options()
	screen := r.ScreenSize()
	top := float64(len(opts)) * r.TextSize("A", menuScale).Y
	for i, o := range opts {
		scale, c := menuScale*0.6, gfx.White
		if o == m.selected {
			scale, c = menuScale*m.scale, menuSelected
		}
		line := r.TextSize(o, menuScale).Y
		size := r.TextSize(o, scale)
		at := geom.V(screen.X*0.5-size.X*0.5, screen.Y*0.5-size.Y*0.5+float64(i)*line-top*0.5)
		r.DrawText(o, at, scale, c)
	}
}
