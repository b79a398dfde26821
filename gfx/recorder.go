package gfx

import (
	"image/color"

	"github.com/milk9111/truecolor/geom"
)

// Call is one recorded draw.
type Call struct {
	Op     string
	Sprite Sprite
	Rect   geom.Rect
	Text   string
	At     geom.Vec
	Color  color.Color
}

// Recorder is a Renderer that keeps every call. Used by tests and by the
// headless levels command.
type Recorder struct {
	Screen geom.Vec
	Calls  []Call
}

// NewRecorder returns a recorder with the given screen size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Screen: geom.V(w, h)}
}

func (r *Recorder) DrawSprite(s Sprite, at geom.Vec, opts Options) {
	r.Calls = append(r.Calls, Call{Op: "sprite", Sprite: s, At: at, Color: opts.Tint})
}

func (r *Recorder) DrawRect(rc geom.Rect, c color.Color, filled bool) {
	op := "stroke"
	if filled {
		op = "fill"
	}
	r.Calls = append(r.Calls, Call{Op: op, Rect: rc, Color: c})
}

func (r *Recorder) DrawText(msg string, at geom.Vec, _ float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "text", Text: msg, At: at, Color: c})
}

// TextSize assumes a 7x13 monospace face.
func (r *Recorder) TextSize(msg string, scale float64) geom.Vec {
	if scale <= 0 {
		scale = 1
	}
	return geom.V(float64(len(msg))*7*scale, 13*scale)
}

func (r *Recorder) ScreenSize() geom.Vec {
	return r.Screen
}

// Texts returns every string drawn so far, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
