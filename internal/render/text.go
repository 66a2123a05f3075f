package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// maxCachedText bounds the text image cache. The status line changes every frame
// the player moves, so stale entries are dropped wholesale.
const maxCachedText = 256

// Text renders strings with basicfont.Face7x13. It satisfies game.TextSizer.
type Text struct {
	face  font.Face
	cache map[string]*ebiten.Image
}

func NewText() *Text {
	return &Text{
		face:  basicfont.Face7x13,
		cache: make(map[string]*ebiten.Image),
	}
}

// Measure returns the pixel size of s.
func (t *Text) Measure(s string) (int, int) {
	m := t.face.Metrics()
	return font.MeasureString(t.face, s).Ceil(), (m.Ascent + m.Descent).Ceil()
}

// raster draws s in white on a transparent image sized by Measure.
func (t *Text) raster(s string) *image.NRGBA {
	w, h := t.Measure(s)
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: t.face,
		Dot:  fixed.P(0, t.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	return img
}

// Image returns a cached image of s.
func (t *Text) Image(s string) *ebiten.Image {
	if img, ok := t.cache[s]; ok {
		return img
	}
	if len(t.cache) >= maxCachedText {
		for k, img := range t.cache {
			img.Deallocate()
			delete(t.cache, k)
		}
	}
	img := ebiten.NewImageFromImage(t.raster(s))
	t.cache[s] = img
	return img
}
