package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spacehole-rogue/spacegame/internal/game"
	"github.com/spacehole-rogue/spacegame/internal/geom"
)

// Renderer draws a Sim's dust canvas and draw list onto the screen.
type Renderer struct {
	Text    *Text
	sprites *Sprites
	dust    *ebiten.Image
}

// NewRenderer creates a renderer for a width x height viewport.
func NewRenderer(text *Text, width, height int) *Renderer {
	return &Renderer{
		Text:    text,
		sprites: NewSprites(),
		dust:    ebiten.NewImage(width, height),
	}
}

// Draw renders one frame. The dust canvas is the bottom layer; everything else
// follows the sim's layer order.
func (r *Renderer) Draw(screen *ebiten.Image, sim *game.Sim) {
	r.dust.WritePixels(sim.Dust.Paint().Pix)
	screen.DrawImage(r.dust, nil)

	for _, rd := range sim.Renderables() {
		if rd.Sprite == game.SpriteText {
			r.drawText(screen, rd)
			continue
		}
		r.drawSprite(screen, rd)
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, rd game.Renderable) {
	img := r.sprites.Get(rd.Sprite)
	if img == nil {
		return
	}
	b := img.Bounds()

	var op ebiten.DrawImageOptions
	if rd.Anchor == game.AnchorCenter {
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		// Rotation is counter-clockwise; GeoM rotates clockwise in screen space.
		op.GeoM.Rotate(-geom.DegToRad(rd.Rotation))
	}
	op.GeoM.Translate(rd.X, rd.Y)
	op.ColorScale.ScaleWithColor(Tint(rd.Sprite))
	screen.DrawImage(img, &op)
}

func (r *Renderer) drawText(screen *ebiten.Image, rd game.Renderable) {
	if rd.X == game.Parked && rd.Y == game.Parked {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(rd.X, rd.Y)
	op.ColorScale.ScaleWithColor(Tint(rd.Sprite))
	screen.DrawImage(r.Text.Image(rd.Text), &op)
}
