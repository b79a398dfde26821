package obj

import (
	"github.com/milk9111/truecolor/common"
	"github.com/milk9111/truecolor/gfx"
)

// Sprite sheet layout. Each row holds one family of frames laid out
// left-to-right in 32px cells; the HUD icons are 16px.
const cell = common.SpriteSize

func sheetCell(col, row int) gfx.Sprite {
	return gfx.Sprite{X: col * cell, Y: row * cell, W: cell, H: cell}
}

var (
	spritePlayer     = sheetCell(0, 0)
	spriteCoin       = sheetCell(0, 1)
	spritePurse      = sheetCell(0, 2)
	spriteBugSpray   = sheetCell(1, 2)
	spriteFlower     = sheetCell(2, 2)
	spriteGem        = sheetCell(3, 2)
	spriteShell      = sheetCell(4, 2)
	spriteSpray      = sheetCell(5, 2)
	spritePortal     = sheetCell(0, 3)
	spriteCheckpoint = sheetCell(3, 3)
	spriteAnderson   = sheetCell(0, 4)
	spriteBee        = sheetCell(0, 5)
	spriteErik       = sheetCell(0, 6)
	spriteMartin     = sheetCell(0, 7)

	iconCoin  = gfx.Sprite{X: 0, Y: 8 * cell, W: 16, H: 16}
	iconHeart = gfx.Sprite{X: 16, Y: 8 * cell, W: 16, H: 16}
	iconSlot  = gfx.Sprite{X: 32, Y: 8 * cell, W: cell, H: cell}
)

// spriteOr returns the authored sprite when the level provides one.
func spriteOr(authored, def gfx.Sprite) gfx.Sprite {
	if authored.Valid() {
		return authored
	}
	return def
}
