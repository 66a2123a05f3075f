package render

import (
	"testing"

	"github.com/spacehole-rogue/spacegame/internal/game"
	"github.com/stretchr/testify/assert"
)

var _ game.TextSizer = (*Text)(nil)

func TestText_Measure(t *testing.T) {
	txt := NewText()

	tests := []struct {
		in   string
		w, h int
	}{
		{"NPC", 21, 13},
		{"Outpost 3A", 70, 13},
		{"", 0, 13},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h := txt.Measure(tt.in)
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		})
	}
}

func TestText_Raster(t *testing.T) {
	txt := NewText()
	img := txt.raster("NPC")

	assert.Equal(t, 21, img.Bounds().Dx())
	assert.Equal(t, 13, img.Bounds().Dy())

	lit := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			lit++
		}
	}
	assert.Positive(t, lit)

	empty := txt.raster("")
	assert.Equal(t, 1, empty.Bounds().Dx())
}
