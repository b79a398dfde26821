package game

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/truecolor/camera"
	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/scene"
	"golang.org/x/image/colornames"
)

const (
	gameOverText    = "Game Over"
	gameOverHint    = "Press ESC to restart"
	gameOverScale   = 2
	gameOverSpacing = 20
)

var defaultBackground color.Color = colornames.Black

// Draw renders the frame in the same order the update visits it, so later
// layers cover earlier ones.
func (g *Game) Draw(r gfx.Renderer) {
	if r == nil {
		return
	}
	screen := r.ScreenSize()

	if g.inMenu {
		r.DrawRect(geom.Rect{Size: screen}, gfx.Black, true)
		scene.Draw(g.menu, r)
		return
	}
	if g.dialogs.FullscreenOpen() {
		g.dialogs.Draw(r)
		return
	}

	r.DrawRect(geom.Rect{Size: screen}, g.background(), true)

	if g.miniGame != nil {
		scene.Draw(g.miniGame, r)
		g.dialogs.Draw(r)
		return
	}

	g.drawTiles(r)

	p := g.Player()
	for _, n := range g.tree.Children(nil) {
		if n == p || n.Kind() == scene.KindHUD {
			continue
		}
		scene.Draw(n, r)
	}
	if p != nil {
		scene.Draw(p, r)
	}
	for _, n := range g.tree.ChildrenOfKind(nil, scene.KindHUD) {
		scene.Draw(n, r)
	}

	g.dialogs.Draw(r)

	if g.over {
		g.drawGameOver(r, screen)
	}
	if g.debug {
		g.drawDebug(r)
	}
}

func (g *Game) drawTiles(r gfx.Renderer) {
	if g.level == nil {
		return
	}
	for _, t := range g.level.Tiles {
		pos := geom.V(float64(t.X), float64(t.Y))
		box := geom.Rect{Pos: pos, Size: geom.V(float64(t.Sprite.W), float64(t.Sprite.H))}
		if !g.cam.IsRectOnScreen(box, camera.DefaultPadding) {
			continue
		}
		r.DrawSprite(t.Sprite, g.cam.WorldToScreen(pos), gfx.Options{})
	}
}

func (g *Game) drawGameOver(r gfx.Renderer, screen geom.Vec) {
	size := r.TextSize(gameOverText, gameOverScale)
	at := geom.V(screen.X*0.5-size.X*0.5, screen.Y*0.5-size.Y*0.5)
	r.DrawText(gameOverText, at, gameOverScale, gfx.White)

	hint := r.TextSize(gameOverHint, 1)
	r.DrawText(gameOverHint, geom.V(screen.X*0.5-hint.X*0.5, at.Y+size.Y+gameOverSpacing), 1, gfx.White)
}

// drawDebug outlines the colliders the physics pass sees this frame.
func (g *Game) drawDebug(r gfx.Renderer) {
	for _, c := range g.onScreen {
		r.DrawRect(geom.Rect{Pos: g.cam.WorldToScreen(c.Pos), Size: c.Size}, gfx.Debug, false)
	}
	at := geom.V(common.SpriteSize*0.25, common.SpriteSize*0.25)
	r.DrawText(g.levelName, at, 1, gfx.Debug)
}

func (g *Game) background() color.Color {
	if g.level == nil {
		return defaultBackground
	}
	if c, ok := parseColor(g.level.Background); ok {
		return c
	}
	return defaultBackground
}

// parseColor accepts an SVG color name or a #rrggbb hex triplet.
func parseColor(s string) (color.Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return nil, false
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return nil, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
