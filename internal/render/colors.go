package render

import (
	"image/color"

	"github.com/spacehole-rogue/spacegame/internal/game"
)

// CGA palette entries used for sprite tints.
var (
	ColorLightGray = color.RGBA{170, 170, 170, 255}
	ColorLightCyan = color.RGBA{85, 255, 255, 255}
	ColorLightRed  = color.RGBA{255, 85, 85, 255}
	ColorYellow    = color.RGBA{255, 255, 85, 255}
	ColorWhite     = color.RGBA{255, 255, 255, 255}
)

// Tint returns the colour a sprite kind is drawn with. Sprites are white masks.
func Tint(kind game.SpriteKind) color.RGBA {
	switch kind {
	case game.SpritePlayer:
		return ColorLightCyan
	case game.SpriteNPC:
		return ColorLightRed
	case game.SpriteStation:
		return ColorLightGray
	case game.SpriteProjectile:
		return ColorYellow
	default:
		return ColorWhite
	}
}
