package game

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/spacehole-rogue/spacegame/internal/viewport"
)

// dustExtend is how far past the viewport particles live before wrapping.
const dustExtend = 1.1

// parallaxChoices is weighted toward slow, distant particles.
var parallaxChoices = []float64{0.1, 0.1, 0.1, 0.2, 0.2, 0.2, 0.3, 0.3, 0.4, 0.5, 0.75, 1.0, 1.5, 2.0}

// Particle is a dust mote in screen space. It is never derived from world coordinates.
type Particle struct {
	X, Y     float64
	Parallax float64
}

// Dust is a field of screen-space particles shifted against the camera's motion.
// Each field owns its particles and its random source.
type Dust struct {
	Particles []Particle

	width, height int
	// extended bounds
	left, right, top, bottom int

	rng    *rand.Rand
	canvas *image.RGBA
}

// NewDust scatters count particles over the extended bounds of a width x height viewport.
func NewDust(width, height, count int, seed uint64) *Dust {
	d := &Dust{
		width:  width,
		height: height,
		left:   int(float64(width) - float64(width)*dustExtend),
		right:  int(float64(width) * dustExtend),
		top:    int(float64(height) - float64(height)*dustExtend),
		bottom: int(float64(height) * dustExtend),
		rng:    rand.New(rand.NewPCG(seed, seed>>16|1)),
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
	}

	d.Particles = make([]Particle, count)
	for i := range d.Particles {
		d.Particles[i] = Particle{
			X:        float64(d.randRange(d.left, d.right)),
			Y:        float64(d.randRange(d.top, d.bottom)),
			Parallax: parallaxChoices[d.rng.IntN(len(parallaxChoices))],
		}
	}
	return d
}

// Bounds returns the extended bounds particles wrap within.
func (d *Dust) Bounds() (left, right, top, bottom int) {
	return d.left, d.right, d.top, d.bottom
}

// randRange returns an int in [lo, hi).
func (d *Dust) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.rng.IntN(hi-lo)
}

// Update shifts every particle against the camera's velocity scaled by its parallax and
// respawns particles that leave the extended bounds on the opposite side.
func (d *Dust) Update(v *viewport.Viewport) {
	vx, vy := v.Velocity()
	speed := v.Speed()
	for i := range d.Particles {
		p := &d.Particles[i]
		p.X -= vx * speed * p.Parallax
		p.Y -= vy * speed * p.Parallax
		d.wrap(p)
	}
}

func (d *Dust) wrap(p *Particle) {
	if p.X < float64(d.left) {
		p.X = float64(d.randRange(d.width, d.right))
	}
	if p.X > float64(d.right) {
		p.X = float64(d.randRange(d.left, 0))
	}
	if p.Y < float64(d.top) {
		p.Y = float64(d.randRange(d.height, d.bottom))
	}
	if p.Y > float64(d.bottom) {
		p.Y = float64(d.randRange(d.top, 0))
	}
}

// Shade maps a parallax factor to a grey level. Later thresholds overwrite earlier ones.
func Shade(parallax float64) uint8 {
	var g uint8
	if parallax >= 0.0 {
		g = 20
	}
	if parallax >= 0.2 {
		g = 40
	}
	if parallax >= 0.4 {
		g = 80
	}
	if parallax >= 0.6 {
		g = 100
	}
	if parallax >= 1.0 {
		g = 140
	}
	if parallax >= 1.5 {
		g = 180
	}
	if parallax >= 2.0 {
		g = 220
	}
	return g
}

// Paint repaints the full-viewport canvas from scratch and returns it.
// The canvas is reused across frames; callers must not keep it past the next Paint.
func (d *Dust) Paint() *image.RGBA {
	black := color.RGBA{A: 255}
	pix := d.canvas.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = black.R, black.G, black.B, black.A
	}
	for _, p := range d.Particles {
		g := Shade(p.Parallax)
		d.canvas.SetRGBA(int(p.X), int(p.Y), color.RGBA{g, g, g, 255})
	}
	return d.canvas
}
