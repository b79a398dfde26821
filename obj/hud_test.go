package obj

import (
	"testing"

	"github.com/milk9111/truecolor/config"
	"github.com/milk9111/truecolor/gfx"
	"github.com/milk9111/truecolor/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spritesOf(r *gfx.Recorder, s gfx.Sprite) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == "sprite" && c.Sprite == s {
			n++
		}
	}
	return n
}

func TestHUDDrawsPlayerState(t *testing.T) {
	w := newFakeWorld()
	p := w.spawnPlayer(64, 352)
	h := w.spawn(NewHUD()).(*HUD)
	p.ExpandStorage(1)

	r := gfx.NewRecorder(640, 360)
	h.Draw(r)
	assert.Equal(t, 3, spritesOf(r, iconHeart))
	assert.Equal(t, 1, spritesOf(r, iconCoin))
	assert.Equal(t, []string{"0", "1", "2"}, r.Texts())

	flower := w.spawn(NewFlower(entity("flower", 64, 352))).(*Item)
	flower.OnAction(scene.ActionEnter)
	require.True(t, flower.Carried())

	r.Reset()
	h.Draw(r)
	assert.Equal(t, []string{"0", "2"}, r.Texts(), "filled slots show the thumbnail")
	assert.Equal(t, 1, spritesOf(r, *flower.Thumbnail))
}

func TestHUDCoinPulse(t *testing.T) {
	w := newFakeWorld()
	p := w.spawnPlayer(64, 352)
	h := w.spawn(NewHUD()).(*HUD)

	h.OnUpdated(0.1)
	assert.Equal(t, 1.0, h.CoinScale())

	p.AddMoney(1)
	h.OnUpdated(0.1)
	assert.InDelta(t, 0.8, h.CoinScale(), 0.01)
	h.OnUpdated(0.2)
	assert.Equal(t, 1.0, h.CoinScale())
}

func TestMenuSelection(t *testing.T) {
	m := NewMenu()
	assert.Equal(t, []string{MenuNewGame, MenuExit}, m.Options())
	assert.Equal(t, MenuNewGame, m.Selected())

	m.OnAction(scene.ActionDown)
	assert.Equal(t, MenuExit, m.Selected())
	m.OnAction(scene.ActionDown)
	assert.Equal(t, MenuNewGame, m.Selected(), "selection wraps around")
	m.OnAction(scene.ActionUp)
	assert.Equal(t, MenuExit, m.Selected())

	m.CanContinue = true
	assert.Equal(t, []string{MenuContinue, MenuNewGame, MenuExit}, m.Options())
	m.Select(MenuContinue)
	assert.Equal(t, MenuContinue, m.Selected())

	r := gfx.NewRecorder(640, 360)
	m.Draw(r)
	assert.Equal(t, m.Options(), r.Texts())
}

func TestMenuHidesContinueAfterGameOver(t *testing.T) {
	w := newFakeWorld()
	m := w.spawn(NewMenu()).(*Menu)
	m.CanContinue = true
	w.GameOver()
	assert.Equal(t, []string{MenuNewGame, MenuExit}, m.Options())
}

func TestRegisterCoversLevelTypes(t *testing.T) {
	reg := scene.NewRegistry()
	Register(reg, config.Default().Player, nil)
	for _, name := range []string{"player", "coin", "purse", "bug_spray", "flower", "portal", "checkpoint", "gem", "anderson", "bee", "erik", "martin"} {
		assert.True(t, reg.Has(name), name)
	}
	_, ok := reg.CreateMiniGame(shellGameName)
	assert.True(t, ok)

	n, ok := reg.Create(entity("bee", 0, 0))
	require.True(t, ok)
	assert.Equal(t, scene.KindEnemy, n.Kind())
}
