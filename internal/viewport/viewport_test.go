package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	v := New(640, 400)

	assert.Equal(t, 640, v.Width)
	assert.Equal(t, 400, v.Height)
	x, y := v.Focus()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, v.Speed())
}

func TestUpdateReplacesAllFields(t *testing.T) {
	v := New(640, 400)
	v.Update(10, -20, 0.6, 0.8, 3.2)

	x, y := v.Focus()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, -20.0, y)
	dx, dy := v.Velocity()
	assert.Equal(t, 0.6, dx)
	assert.Equal(t, 0.8, dy)
	assert.Equal(t, 3.2, v.Speed())

	v.Update(0, 0, 0, 0, 0)
	dx, dy = v.Velocity()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.Zero(t, v.Speed())
}

func TestWorldToScreen(t *testing.T) {
	v := New(800, 600)
	v.Update(100, 50, 0, 1, 0)

	tests := []struct {
		name   string
		rx, ry float64
		sx, sy float64
	}{
		{"FocusMapsToCenter", 100, 50, 400, 300},
		{"Origin", 0, 0, 300, 250},
		{"FarRightOffscreen", 1000, 50, 1300, 300},
		{"AboveTopOffscreen", 100, -500, 400, -250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sx, v.ScreenX(tt.rx))
			assert.Equal(t, tt.sy, v.ScreenY(tt.ry))
		})
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	v := New(800, 600)
	v.Update(-37.5, 912.25, 0, 0, 0)

	for _, s := range []float64{-1000, -1, 0, 0.5, 399, 400, 799.75, 5000} {
		assert.InDelta(t, s, v.ScreenX(v.WorldX(s)), 1e-9)
		assert.InDelta(t, s, v.ScreenY(v.WorldY(s)), 1e-9)
	}
}

func TestOrigin(t *testing.T) {
	v := New(800, 600)
	v.Update(1000, 2000, 0, 0, 0)

	ox, oy := v.Origin()
	assert.Equal(t, 600.0, ox)
	assert.Equal(t, 1700.0, oy)
	assert.Equal(t, 0.0, v.ScreenX(ox))
	assert.Equal(t, 0.0, v.ScreenY(oy))

	cx, cy := v.Center()
	assert.Equal(t, 400.0, cx)
	assert.Equal(t, 300.0, cy)
}
