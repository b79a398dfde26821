// Package gfx declares the drawing surface the simulation renders through.
// The ebiten implementation lives in the platform package.
package gfx

import (
	"image/color"

	"github.com/milk9111/truecolor/geom"
	"golang.org/x/image/colornames"
)

// Sprite is a region of the sprite sheet, in pixels.
type Sprite struct {
	X, Y, W, H int
}

// Valid reports whether the sprite refers to a non-empty region.
func (s Sprite) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Options tweak a sprite draw. The zero value draws unscaled and untinted.
type Options struct {
	Scale geom.Vec
	Tint  color.Color
	FlipX bool
}

// Renderer draws in screen space. Calls never fail; implementations drop
// what they cannot draw.
type Renderer interface {
	DrawSprite(s Sprite, at geom.Vec, opts Options)
	DrawRect(r geom.Rect, c color.Color, filled bool)
	DrawText(msg string, at geom.Vec, scale float64, c color.Color)
	TextSize(msg string, scale float64) geom.Vec
	ScreenSize() geom.Vec
}

var (
	White   color.Color = colornames.White
	Black   color.Color = colornames.Black
	Damage  color.Color = colornames.Red
	Shade   color.Color = color.NRGBA{A: 160}
	Debug   color.Color = colornames.Lime
	Ceiling color.Color = colornames.Yellow
	Wall    color.Color = colornames.Orangered
	Left    color.Color = colornames.Deepskyblue
)
