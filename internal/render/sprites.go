package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spacehole-rogue/spacegame/internal/game"
)

// Sprites holds the generated entity images, keyed by kind.
type Sprites struct {
	images map[game.SpriteKind]*ebiten.Image
}

// NewSprites rasterises every sprite at startup. No image files are loaded.
func NewSprites() *Sprites {
	ship := shipMask(int(game.ShipExtent.W), int(game.ShipExtent.H))
	return &Sprites{images: map[game.SpriteKind]*ebiten.Image{
		game.SpritePlayer:     ebiten.NewImageFromImage(ship),
		game.SpriteNPC:        ebiten.NewImageFromImage(ship),
		game.SpriteStation:    ebiten.NewImageFromImage(stationMask(int(game.StationExtent.W), int(game.StationExtent.H))),
		game.SpriteProjectile: ebiten.NewImageFromImage(projectileMask(int(game.ProjectileExtent.W), int(game.ProjectileExtent.H))),
	}}
}

// Get returns the image for kind, or nil for text.
func (s *Sprites) Get(kind game.SpriteKind) *ebiten.Image {
	return s.images[kind]
}

var white = color.NRGBA{255, 255, 255, 255}

// shipMask draws a nose-up arrowhead: apex at the top centre, notch in the base.
func shipMask(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx := float64(w-1) / 2
	for y := 1; y < h-1; y++ {
		t := float64(y-1) / float64(h-3)
		half := t * cx * 0.9
		notch := 0.0
		if t > 0.75 {
			notch = (t - 0.75) * 4 * half * 0.5
		}
		for x := 0; x < w; x++ {
			d := float64(x) - cx
			if d < 0 {
				d = -d
			}
			if d <= half && d >= notch {
				img.SetNRGBA(x, y, white)
			}
		}
	}
	return img
}

// stationMask draws a two-pixel ring with a docking cross.
func stationMask(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ring := x < 2 || y < 2 || x >= w-2 || y >= h-2
			cross := (x >= w/2-1 && x <= w/2) || (y >= h/2-1 && y <= h/2)
			inner := x >= w/4 && x < w-w/4 && y >= h/4 && y < h-h/4
			if ring || (cross && !inner) {
				img.SetNRGBA(x, y, white)
			}
		}
	}
	return img
}

// projectileMask is a one-pixel streak at column 4.
func projectileMask(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		img.SetNRGBA(4, y, white)
	}
	return img
}
