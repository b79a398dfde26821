// Package camera maps between world and screen space for a viewport that
// follows a focus point and stays inside the level bounds.
package camera

import (
	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/geom"
)

const (
	// DefaultPadding is the margin added around the viewport by IsOnScreen.
	DefaultPadding = 40

	probeSize = 16
)

// Camera holds the viewport state. The zero value is not usable; call New.
type Camera struct {
	world  geom.Vec
	screen geom.Vec
	focus  geom.Vec
	offset geom.Vec
	zoom   float64
}

// New creates a camera for the given logical screen size.
func New(screenW, screenH float64) *Camera {
	return &Camera{
		screen: geom.V(screenW, screenH),
		world:  geom.V(screenW, screenH),
		zoom:   1,
	}
}

// SetWorldSize updates the level bounds used for clamping.
func (c *Camera) SetWorldSize(w, h float64) {
	if c == nil {
		return
	}
	c.world = geom.V(w, h)
}

// WorldSize returns the level bounds.
func (c *Camera) WorldSize() geom.Vec {
	if c == nil {
		return geom.Zero
	}
	return c.world
}

// ScreenSize returns the logical screen size.
func (c *Camera) ScreenSize() geom.Vec {
	if c == nil {
		return geom.Zero
	}
	return c.screen
}

// SetFocus sets the raw focus position, usually the player's position.
func (c *Camera) SetFocus(p geom.Vec) {
	if c == nil {
		return
	}
	c.focus = p
}

// Focus returns the raw focus position.
func (c *Camera) Focus() geom.Vec {
	if c == nil {
		return geom.Zero
	}
	return c.focus
}

// SetOffset sets the screen-space anchor at which the focus is drawn.
func (c *Camera) SetOffset(o geom.Vec) {
	if c == nil {
		return
	}
	c.offset = o
}

// Offset returns the screen-space anchor.
func (c *Camera) Offset() geom.Vec {
	if c == nil {
		return geom.Zero
	}
	return c.offset
}

// SetZoom updates the zoom factor. Non-positive values are ignored.
func (c *Camera) SetZoom(z float64) {
	if c == nil || z <= 0 {
		return
	}
	c.zoom = z
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 {
	if c == nil {
		return 1
	}
	return c.zoom
}

// Position returns the clamped viewport position used by WorldToScreen.
func (c *Camera) Position() geom.Vec {
	if c == nil {
		return geom.Zero
	}
	p := c.focus.Sub(c.offset)
	p.X = common.Clamp(p.X, 0, c.world.X-c.screen.X)
	p.Y = common.Clamp(p.Y, 0, c.world.Y-c.screen.Y)
	return p.Add(c.screen.Mult(0.5))
}

// WorldToScreen converts a world position to a screen position.
func (c *Camera) WorldToScreen(p geom.Vec) geom.Vec {
	if c == nil {
		return p
	}
	return p.Sub(c.Position()).Mult(c.zoom).Add(c.offset)
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(p geom.Vec) geom.Vec {
	if c == nil {
		return p
	}
	return p.Sub(c.offset).Mult(1 / c.zoom).Add(c.Position())
}

// ViewRect returns the world-space rectangle currently visible.
func (c *Camera) ViewRect() geom.Rect {
	if c == nil {
		return geom.Rect{}
	}
	return geom.Rect{
		Pos:  c.ScreenToWorld(geom.Zero),
		Size: c.screen.Mult(1 / c.zoom),
	}
}

// IsOnScreen reports whether p is inside the viewport padded by
// DefaultPadding.
func (c *Camera) IsOnScreen(p geom.Vec) bool {
	return c.IsOnScreenPadded(p, DefaultPadding)
}

// IsOnScreenPadded reports whether a small probe at p touches the viewport
// grown by pad on every side.
func (c *Camera) IsOnScreenPadded(p geom.Vec, pad float64) bool {
	if c == nil {
		return false
	}
	view := c.ViewRect().Inflate(pad)
	return geom.Overlaps(view, geom.Rect{Pos: p, Size: geom.V(probeSize, probeSize)})
}

// IsRectOnScreen reports whether any part of r is inside the padded viewport.
func (c *Camera) IsRectOnScreen(r geom.Rect, pad float64) bool {
	if c == nil {
		return false
	}
	return geom.Overlaps(c.ViewRect().Inflate(pad), r)
}

// IsOffLimits reports whether p has fallen below the bottom of the world.
func (c *Camera) IsOffLimits(p geom.Vec) bool {
	if c == nil {
		return false
	}
	return p.Y > c.world.Y
}
