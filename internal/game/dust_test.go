package game

import (
	"image/color"
	"slices"
	"testing"

	"github.com/spacehole-rogue/spacegame/internal/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDust(t *testing.T) {
	d := NewDust(800, 600, 200, 1)
	require.Len(t, d.Particles, 200)

	left, right, top, bottom := d.Bounds()
	assert.Equal(t, -80, left)
	assert.Equal(t, 880, right)
	assert.Equal(t, -60, top)
	assert.Equal(t, 660, bottom)

	for _, p := range d.Particles {
		assert.GreaterOrEqual(t, p.X, float64(left))
		assert.Less(t, p.X, float64(right))
		assert.GreaterOrEqual(t, p.Y, float64(top))
		assert.Less(t, p.Y, float64(bottom))
		assert.True(t, slices.Contains(parallaxChoices, p.Parallax), "parallax %v", p.Parallax)
	}
}

func TestDust_FieldsDoNotShareParticles(t *testing.T) {
	a := NewDust(800, 600, 10, 1)
	b := NewDust(800, 600, 10, 1)

	a.Particles[0].X = 12345
	assert.NotEqual(t, 12345.0, b.Particles[0].X)
}

func TestDust_ShiftsAgainstCamera(t *testing.T) {
	d := NewDust(800, 600, 1, 3)
	d.Particles[0] = Particle{X: 100, Y: 100, Parallax: 0.5}

	v := viewport.New(800, 600)
	v.Update(0, 0, 0.6, 0.8, 4)
	d.Update(v)

	assert.InDelta(t, 100-0.6*4*0.5, d.Particles[0].X, 1e-9)
	assert.InDelta(t, 100-0.8*4*0.5, d.Particles[0].Y, 1e-9)
}

func TestDust_Wrap(t *testing.T) {
	d := NewDust(800, 600, 1, 99)
	left, right, top, bottom := d.Bounds()

	tests := []struct {
		name   string
		start  Particle
		dx, dy float64
		lo, hi float64
		checkX bool
	}{
		{"PastLeftRespawnsRight", Particle{X: float64(left), Y: 0, Parallax: 1}, 1, 0, 800, float64(right), true},
		{"PastRightRespawnsLeft", Particle{X: float64(right), Y: 0, Parallax: 1}, -1, 0, float64(left), 0, true},
		{"PastTopRespawnsBottom", Particle{X: 0, Y: float64(top), Parallax: 1}, 0, 1, 600, float64(bottom), false},
		{"PastBottomRespawnsTop", Particle{X: 0, Y: float64(bottom), Parallax: 1}, 0, -1, float64(top), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viewport.New(800, 600)
			v.Update(0, 0, tt.dx, tt.dy, 1)
			for i := 0; i < 500; i++ {
				d.Particles[0] = tt.start
				d.Update(v)
				got := d.Particles[0].Y
				if tt.checkX {
					got = d.Particles[0].X
				}
				assert.GreaterOrEqual(t, got, tt.lo)
				assert.Less(t, got, tt.hi)
			}
		})
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		parallax float64
		want     uint8
	}{
		{-0.1, 0},
		{0.0, 20},
		{0.1, 20},
		{0.2, 40},
		{0.3, 40},
		{0.4, 80},
		{0.5, 80},
		{0.75, 100},
		{1.0, 140},
		{1.5, 180},
		{2.0, 220},
		{3.0, 220},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Shade(tt.parallax), "parallax %v", tt.parallax)
	}
}

func TestDust_Paint(t *testing.T) {
	d := NewDust(64, 48, 2, 5)
	d.Particles[0] = Particle{X: 10.7, Y: 20.2, Parallax: 2.0}
	d.Particles[1] = Particle{X: -3, Y: 5, Parallax: 1.0}

	img := d.Paint()
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 48, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{220, 220, 220, 255}, img.RGBAAt(10, 20))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))

	// Repainting starts from a clean canvas.
	d.Particles[0].X = 30
	img = d.Paint()
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(10, 20))
	assert.Equal(t, color.RGBA{220, 220, 220, 255}, img.RGBAAt(30, 20))
}
