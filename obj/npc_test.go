package obj

import (
	"testing"

	"github.com/milk9111/truecolor/geom"
	"github.com/milk9111/truecolor/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAndersonTurnsIntoTheVillain(t *testing.T) {
	w := newFakeWorld()
	w.spawnPlayer(64, 352)
	a := w.spawn(NewAnderson(entity("anderson", 64, 344))).(*Anderson)
	assert.Equal(t, geom.V(64, 352), a.Position, "NPCs sit 8px lower than authored")

	a.OnAction(scene.ActionEnter)
	assert.Equal(t, "idle", a.State(), "no flower, no chat")

	flower := w.spawn(NewFlower(entity("flower", 64, 352))).(*Item)
	flower.OnAction(scene.ActionEnter)
	require.True(t, flower.Carried())

	a.OnAction(scene.ActionEnter)
	a.OnUpdated(0.016)
	lines := messages(&w.dialogs)
	require.Len(t, lines, 5)
	assert.Equal(t, "ANDERSON: Hello, I'm Anderson. I like cookies", lines[0])

	a.OnUpdated(0.016)
	assert.Equal(t, "turning", a.State())
	assert.Equal(t, []string{
		"ANDERSON: I Think the flower is making me feel weird",
		"ANDERSON: I'm turning into a villain",
	}, messages(&w.dialogs))

	a.OnUpdated(0.016)
	assert.True(t, a.Villain())
	assert.True(t, w.PortalEnabled())
	assert.Equal(t, []string{
		"ACT 1: The villain",
		"ANDERSON: I'm a villain now, I will destroy the world",
	}, messages(&w.dialogs))

	a.OnAction(scene.ActionEnter)
	assert.NotEqual(t, "flower", a.State(), "villains do not smell flowers twice")
}

func TestVillainFliesAway(t *testing.T) {
	w := newFakeWorld()
	w.spawnPlayer(64, 352)
	a := w.spawn(NewAnderson(entity("anderson", 64, 344))).(*Anderson)
	a.villain = true
	a.state = andersonIdle

	a.OnUpdated(0.5)
	assert.Equal(t, 352.0, a.Position.Y)
	a.OnUpdated(0.6)
	assert.Less(t, a.Position.Y, 352.0)
}

func TestMadBeeStingsThePlayer(t *testing.T) {
	cases := []struct {
		name      string
		mad       interface{}
		wantLives int
	}{
		{"mad", true, 2},
		{"calm", false, 3},
		{"unset", nil, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newFakeWorld()
			p := w.spawnPlayer(64, 352)
			props := []interface{}{"travel", []interface{}{3.0, 11.0}}
			if c.mad != nil {
				props = append(props, "is_mad", c.mad)
			}
			bee := w.spawn(NewBee(entity("bee", 64, 352, props...))).(*Bee)

			bee.OnUpdated(0.01)
			assert.Equal(t, c.wantLives, p.Lives())
		})
	}
}

func TestBeePatrolsAndTurns(t *testing.T) {
	w := newFakeWorld()
	w.spawnPlayer(64, 200)
	bee := w.spawn(NewBee(entity("bee", 64, 352, "travel", []interface{}{6.0, 11.0}))).(*Bee)
	require.Equal(t, 1, bee.Direction())

	bee.OnUpdated(0.5)
	assert.InDelta(t, 128, bee.Position.X, 0.001)
	bee.OnUpdated(0.5)
	bee.OnUpdated(0.1)
	assert.Equal(t, -1, bee.Direction())

	box := bee.Collider()
	assert.InDelta(t, bee.Position.X-32+5, box.Pos.X, 0.001)
	assert.Equal(t, geom.V(22, 22), box.Size)
}

func TestOffScreenBeeIsFrozen(t *testing.T) {
	w := newFakeWorld()
	p := w.spawnPlayer(64, 352)
	bee := w.spawn(NewBee(entity("bee", 1200, 352, "travel", []interface{}{36.0, 39.0}, "is_mad", true))).(*Bee)
	require.False(t, w.cam.IsOnScreen(bee.Position))

	tick(bee, 0.1, 5)
	assert.Equal(t, geom.V(1200, 352), bee.Position)

	bee.Position = p.Position
	w.cam.SetFocus(geom.V(1200, 352))
	require.False(t, w.cam.IsOnScreen(bee.Position))
	bee.OnUpdated(0.01)
	assert.Equal(t, 3, p.Lives(), "off-screen bees do not sting")
}

func TestErikOpensThePortalOnceBeesAreCalm(t *testing.T) {
	w := newFakeWorld()
	w.spawnPlayer(64, 352)
	bee := w.spawn(NewBee(entity("bee", 200, 352, "travel", []interface{}{7.0, 11.0}, "is_mad", true))).(*Bee)
	e := w.spawn(NewErik(entity("erik", 64, 344))).(*Erik)

	e.OnUpdated(0.016)
	e.OnAction(scene.ActionEnter)
	e.OnUpdated(0.016)
	hello := messages(&w.dialogs)
	require.Len(t, hello, 4)
	assert.Equal(t, "ERIK: Hello, Anderson got my bees angry", hello[0])

	bee.OnDamage()
	e.OnUpdated(0.016)
	assert.False(t, w.PortalEnabled())

	e.OnAction(scene.ActionEnter)
	e.OnUpdated(0.016)
	thanks := messages(&w.dialogs)
	require.Len(t, thanks, 8)
	assert.Equal(t, "ERIK: Thanks for helping me with the bees", thanks[0])

	e.OnUpdated(0.016)
	assert.True(t, w.PortalEnabled())
	assert.True(t, e.ToldSecret())

	e.OnAction(scene.ActionEnter)
	e.OnUpdated(0.016)
	assert.Equal(t, []string{"ERIK: Go save the world, hero!"}, messages(&w.dialogs))
}

func TestMartinStartsTheShellGame(t *testing.T) {
	w := newFakeWorld()
	w.spawnPlayer(64, 352)
	m := w.spawn(NewMartin(entity("martin", 64, 344))).(*Martin)
	w.SetFlag(flagShowGem, true)
	m.OnAllCreated()
	assert.False(t, w.Flag(flagShowGem))

	m.OnAction(scene.ActionEnter)
	require.Len(t, messages(&w.dialogs), 16)
	m.OnUpdated(0.016)
	assert.Equal(t, []string{shellGameName}, w.started)

	m.OnMiniGameOver("other", true)
	assert.False(t, m.Won())

	m.OnMiniGameOver(shellGameName, false)
	assert.Equal(t, []string{"MARTIN: You lost the game. I'll keep the gem"}, messages(&w.dialogs))
	m.OnUpdated(0.016)
	assert.Len(t, w.started, 1, "losing does not restart the game by itself")

	m.OnAction(scene.ActionEnter)
	assert.Equal(t, []string{"MARTIN: Fine, I can give you another chance"}, messages(&w.dialogs))
	m.OnUpdated(0.016)
	assert.Len(t, w.started, 2)

	m.OnMiniGameOver(shellGameName, true)
	assert.True(t, w.Flag(flagShowGem))
	assert.Len(t, messages(&w.dialogs), 2)
	m.OnUpdated(0.016)

	m.OnAction(scene.ActionEnter)
	assert.Equal(t, []string{"MARTIN: Thinking..."}, messages(&w.dialogs))
}
