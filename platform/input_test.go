package platform

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/milk9111/truecolor/game"
	"github.com/milk9111/truecolor/input"
)

var _ PauseActions = (*game.Game)(nil)

func TestEveryKeyIsBound(t *testing.T) {
	for _, k := range input.Keys() {
		assert.NotEmpty(t, keyBindings[k], k.String())
	}
}

func TestKeyBindingsDoNotOverlap(t *testing.T) {
	seen := map[ebiten.Key]input.Key{}
	for k, keys := range keyBindings {
		for _, key := range keys {
			if prev, ok := seen[key]; ok {
				t.Fatalf("%v bound to both %v and %v", key, prev, k)
			}
			seen[key] = k
		}
	}
}

func TestSlotsUseDigits(t *testing.T) {
	for i := 0; i < 9; i++ {
		k, ok := input.Slot(i)
		assert.True(t, ok)
		assert.Equal(t, []ebiten.Key{ebiten.KeyDigit1 + ebiten.Key(i)}, keyBindings[k])
	}
}
