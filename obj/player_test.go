package obj

import (
	"testing"

	"github.com/milk9111/truecolor/audio"
	"github.com/milk9111/truecolor/dialog"
	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/input"
	"github.com/milk9111/truecolor/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMoneyRollsOverIntoLife(t *testing.T) {
	cases := []struct {
		name      string
		lives     int
		coins     int
		wantMoney int
		wantLives int
	}{
		{"below_threshold", 3, 9, 9, 3},
		{"tenth_coin", 3, 10, 0, 4},
		{"capped_lives", 5, 10, 0, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newFakeWorld()
			p := w.spawnPlayer(64, 352)
			p.lives = c.lives
			for i := 0; i < c.coins; i++ {
				p.AddMoney(1)
			}
			assert.Equal(t, c.wantMoney, p.Money())
			assert.Equal(t, c.wantLives, p.Lives())
		})
	}
}

func TestMoneyShieldsFromDamage(t *testing.T) {
	w := newFakeWorld()
	p := w.spawnPlayer(64, 352)
	p.AddMoney(3)

	p.TakeDamage()
	assert.Equal(t, 0, p.Money())
	assert.Equal(t, 3, p.Lives())
	assert.True(t, p.Invulnerable())
	assert.Equal(t, 1, w.backend.plays(audio.Damage))
	assert.Equal(t, 1, w.backend.plays(audio.CoinDown))

	p.TakeDamage()
	assert.Equal(t, 3, p.Lives(), "invulnerable players take no damage")
}

func TestLoseLifeRespawnsAtCheckpoint(t *testing.T) {
	w := newFakeWorld()
	p := w.spawnPlayer(64, 352)
	p.SetCheckpoint(geom.V(320, 352))
	p.Position = geom.V(500, 200)

	p.TakeDamage()
	assert.Equal(t, 2, p.Lives())
	assert.Equal(t, geom.V(320, 352), p.Position)
	assert.True(t, p.Invulnerable())
}

func TestGameOverHappensOnce(t *testing.T) {
	w := newFakeWorld()
	p := w.spawnPlayer(64, 352)
	for i := 0; i < 3; i++ {
		p.invulnerable = 0
		p.TakeDamage()
	}
	require.True(t, p.Dead())
	assert.Equal(t, 0, p.Lives())
	assert.Equal(t, 1, w.overs)

	p.LoseLife()
	p.InstantDeath()
	assert.Equal(t, 1, w.overs)
	assert.Equal(t, 0, p.Lives())
}

func TestFallingOffTheWorldCostsALife(t *testing.T) {
	w := newFakeWorld()
	p := w.spawnPlayer(64, 352)
	p.Position = geom.V(64, 481)

	p.OnPhysics(1.0 / 60.0)
	assert.Equal(t, 2, p.Lives())
	assert.Equal(t, geom.V(64, 352), p.Position)
}

func TestPlayerLandsAndJumps(t *testing.T) {
	w := newFakeWorld()
	w.colliders = []geom.Rect{geom.R(0, 384, 1280, 32)}
	p := w.spawnPlayer(64, 350)

	for i := 0; i < 60; i++ {
		p.OnPhysics(1.0 / 60.0)
	}
	require.True(t, p.Grounded())
	assert.InDelta(t, 352, p.Position.Y, 0.5)

	p.OnAction(scene.ActionUp)
	assert.Less(t, p.Velocity().Y, 0.0)
	assert.False(t, p.Grounded())
	assert.Equal(t, 1, w.backend.plays(audio.Jump))
}

func TestControlsLockedDuringPersistentDialog(t *testing.T) {
	w := newFakeWorld()
	p := w.spawnPlayer(64, 352)
	w.AddDialog(npcLine("hello"))

	p.OnUpdated(0.016)
	p.OnAction(scene.ActionRight)
	assert.False(t, p.canMove)
	assert.Equal(t, 0.0, p.moveX)
}

func TestSlotKeysSelectCarriedItems(t *testing.T) {
	w := newFakeWorld()
	p := w.spawnPlayer(64, 352)
	p.ExpandStorage(2)
	assert.Equal(t, 3, p.Storage())

	p.ExpandStorage(9)
	assert.Equal(t, 3, p.Storage(), "growth past the cap is refused")

	w.in.Press(slotKey(t, 2))
	p.OnUpdated(0.016)
	assert.Equal(t, 2, p.Selected())
}

func npcLine(msg string) dialog.Entry {
	return dialog.Entry{Message: msg, Persistent: true}
}

func slotKey(t *testing.T, i int) input.Key {
	t.Helper()
	k, ok := input.Slot(i)
	require.True(t, ok)
	return k
}
