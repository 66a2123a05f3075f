// Package viewport maps world coordinates onto a screen centred on a moving focal point.
package viewport

// Viewport is the camera. The focal point always sits at the screen centre, so the
// screen origin in world space is (focusX - Width/2, focusY - Height/2).
type Viewport struct {
	Width, Height int

	focusX, focusY float64
	velX, velY     float64 // unit heading of the tracked body
	speed          float64
}

// New creates a viewport of a fixed size focused on the world origin.
func New(width, height int) *Viewport {
	v := &Viewport{Width: width, Height: height}
	v.Update(0, 0, 0, 0, 0)
	return v
}

// Update replaces the focal point and motion state. Called once per frame with the
// tracked body's post-physics state.
func (v *Viewport) Update(x, y, dx, dy, speed float64) {
	v.focusX = x
	v.focusY = y
	v.velX = dx
	v.velY = dy
	v.speed = speed
}

// ScreenX maps a world x coordinate to screen space. No clamping: points outside
// the visible frame map outside [0, Width).
func (v *Viewport) ScreenX(rx float64) float64 {
	return (rx - v.focusX) + float64(v.Width)/2
}

// ScreenY maps a world y coordinate to screen space.
func (v *Viewport) ScreenY(ry float64) float64 {
	return (ry - v.focusY) + float64(v.Height)/2
}

// WorldX is the inverse of ScreenX.
func (v *Viewport) WorldX(sx float64) float64 {
	return sx - float64(v.Width)/2 + v.focusX
}

// WorldY is the inverse of ScreenY.
func (v *Viewport) WorldY(sy float64) float64 {
	return sy - float64(v.Height)/2 + v.focusY
}

// Focus returns the tracked world point.
func (v *Viewport) Focus() (x, y float64) { return v.focusX, v.focusY }

// Velocity returns the tracked body's unit heading.
func (v *Viewport) Velocity() (dx, dy float64) { return v.velX, v.velY }

// Speed returns the tracked body's speed.
func (v *Viewport) Speed() float64 { return v.speed }

// Center returns the screen centre.
func (v *Viewport) Center() (x, y float64) {
	return float64(v.Width) / 2, float64(v.Height) / 2
}

// Origin returns the world coordinates of the screen's top-left corner.
func (v *Viewport) Origin() (x, y float64) {
	return v.focusX - float64(v.Width)/2, v.focusY - float64(v.Height)/2
}
