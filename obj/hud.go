package obj

import (
	"image/color"
	"strconv"

	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/scene"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	hudMargin     = 10.0
	hudIcon       = 16.0
	hudLifeFactor = 1.15
	hudCoinText   = 1.5
	pulseFrom     = 0.6
	pulseTo       = 1.0
	pulseTime     = 0.2
)

var (
	slotIdle color.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 100}
	slotOn   color.Color = gfx.White
)

// HUD draws coins, lives and the storage bar for the player.
type HUD struct {
	scene.Base
	coins int
	pulse *gween.Tween
	scale float64
}

func NewHUD() *HUD {
	h := &HUD{}
	h.Name = "UI"
	return h
}

func (*HUD) Kind() scene.Kind { return scene.KindHUD }

func (h *HUD) OnCreated() {
	h.coins = 0
	h.pulse = nil
	h.scale = pulseTo
}

// CoinScale is the current size of the coin icon.
func (h *HUD) CoinScale() float64 { return h.scale }

func (h *HUD) OnUpdated(dt float64) {
	p := playerOf(h.World())
	if p == nil {
		return
	}
	if p.Money() != h.coins {
		h.coins = p.Money()
		h.pulse = gween.New(pulseFrom, pulseTo, pulseTime, ease.Linear)
	}
	if h.pulse == nil {
		return
	}
	v, done := h.pulse.Update(float32(dt))
	h.scale = float64(v)
	if done {
		h.pulse = nil
		h.scale = pulseTo
	}
}

func (h *HUD) Draw(r gfx.Renderer) {
	p := playerOf(h.World())
	if p == nil {
		return
	}
	screen := r.ScreenSize()
	h.drawCoins(r, screen, p.Money())
	h.drawLives(r, screen, p.Lives())
	h.drawStorage(r, screen, p)
}

func (h *HUD) drawCoins(r gfx.Renderer, screen geom.Vec, coins int) {
	at := geom.V(hudMargin, screen.Y-hudIcon-hudMargin)
	at = at.Add(geom.V(hudIcon, hudIcon).Mult(0.5 * (1 - h.scale)))
	r.DrawSprite(iconCoin, at, gfx.Options{Scale: geom.V(h.scale, h.scale)})

	text := strconv.Itoa(coins)
	size := r.TextSize(text, hudCoinText)
	r.DrawText(text, geom.V(36, screen.Y-12-size.Y), hudCoinText, gfx.White)
}

func (h *HUD) drawLives(r gfx.Renderer, screen geom.Vec, lives int) {
	at := geom.V(screen.X-hudMargin, screen.Y-hudIcon-hudMargin)
	for i := 0; i < lives; i++ {
		at.X -= hudIcon * hudLifeFactor
		r.DrawSprite(iconHeart, at, gfx.Options{})
	}
}

// drawStorage lays the slots out centered along the bottom edge. A single
// slot is implied and not drawn.
func (h *HUD) drawStorage(r gfx.Renderer, screen geom.Vec, p *Player) {
	storage := p.Storage()
	if storage <= 1 {
		return
	}
	children := p.Children()
	at := geom.V(screen.X*0.5-float64(storage)*common.SpriteSize*0.5, screen.Y-common.SpriteSize-hudMargin)
	for i := 0; i < storage; i++ {
		selected := p.Selected() == i
		slot := iconSlot
		if selected {
			slot.X += slot.W
		}
		r.DrawSprite(slot, at, gfx.Options{})

		if i < len(children) {
			if thumb := children[i].Core().Thumbnail; thumb != nil {
				r.DrawSprite(*thumb, at, gfx.Options{})
			}
		} else {
			scale, c := 0.8, slotIdle
			if selected {
				scale, c = 1.2, slotOn
			}
			label := strconv.Itoa(i + 1)
			half := r.TextSize(label, scale).Mult(0.5)
			center := at.Add(geom.V(common.SpriteSize*0.5, common.SpriteSize*0.5))
			r.DrawText(label, center.Sub(half), scale, c)
		}
		at.X += common.SpriteSize
	}
}
