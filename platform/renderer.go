// Package platform binds the simulation to ebiten: drawing, keyboard and
// gamepad polling, sound playback and the pause overlay.
package platform

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
)

const lineHeight = 13

var _ gfx.Renderer = (*Renderer)(nil)

// Renderer draws onto the current ebiten frame. Call Begin with the screen
// image before drawing.
type Renderer struct {
	screen *ebiten.Image
	sheet  *ebiten.Image
	size   geom.Vec
	face   ebtext.Face
}

// NewRenderer wraps the sprite sheet. A nil sheet draws magenta boxes in
// place of sprites.
func NewRenderer(sheet image.Image, w, h int) *Renderer {
	r := &Renderer{
		size: geom.V(float64(w), float64(h)),
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}
	if sheet != nil {
		r.sheet = ebiten.NewImageFromImage(sheet)
	}
	return r
}

// Begin sets the image the next draws go to.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) ScreenSize() geom.Vec {
	return r.size
}

func (r *Renderer) DrawSprite(s gfx.Sprite, at geom.Vec, opts gfx.Options) {
	if r.screen == nil || !s.Valid() {
		return
	}
	scale := opts.Scale
	if scale == geom.Zero {
		scale = geom.V(1, 1)
	}
	if r.sheet == nil {
		vector.FillRect(r.screen, float32(at.X), float32(at.Y), float32(float64(s.W)*scale.X), float32(float64(s.H)*scale.Y), color.NRGBA{R: 0xff, B: 0xff, A: 0xff}, false)
		return
	}

	sub, ok := r.sheet.SubImage(image.Rect(s.X, s.Y, s.X+s.W, s.Y+s.H)).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if opts.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(s.W), 0)
	}
	op.GeoM.Scale(scale.X, scale.Y)
	op.GeoM.Translate(at.X, at.Y)
	if opts.Tint != nil {
		op.ColorScale.ScaleWithColor(opts.Tint)
	}
	r.screen.DrawImage(sub, op)
}

func (r *Renderer) DrawRect(rc geom.Rect, c color.Color, filled bool) {
	if r.screen == nil {
		return
	}
	x, y := float32(rc.Pos.X), float32(rc.Pos.Y)
	w, h := float32(rc.Size.X), float32(rc.Size.Y)
	if filled {
		vector.FillRect(r.screen, x, y, w, h, c, false)
		return
	}
	vector.StrokeRect(r.screen, x, y, w, h, 1, c, false)
}

func (r *Renderer) DrawText(msg string, at geom.Vec, scale float64, c color.Color) {
	if r.screen == nil || msg == "" {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebtext.DrawOptions{}
	op.LineSpacing = lineHeight
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(r.screen, msg, r.face, op)
}

func (r *Renderer) TextSize(msg string, scale float64) geom.Vec {
	if scale <= 0 {
		scale = 1
	}
	w, h := ebtext.Measure(msg, r.face, lineHeight)
	return geom.V(w*scale, h*scale)
}
