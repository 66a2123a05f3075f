package game

import (
	"math"

	"github.com/spacehole-rogue/spacegame/internal/geom"
)

// Ship handling constants.
const (
	MaxSpeed     = 4.0 // world units per frame
	ThrottleStep = 0.2
	Drag         = 0.1 // speed lost per frame while moving
	TurnStep     = 5.0 // degrees per turn command

	// ProximityBox is the half-size of the box in which an AI ship turns toward the player.
	ProximityBox = 50.0
)

// Heading is a direction in degrees plus its cached unit vector.
type Heading struct {
	Direction float64 // [0,360)
	DX, DY    float64
}

// NewHeading builds a heading pointing at deg.
func NewHeading(deg float64) Heading {
	h := Heading{}
	h.Set(deg)
	return h
}

// Set points the heading at deg and refreshes the unit vector.
func (h *Heading) Set(deg float64) {
	h.Direction = deg
	h.DX, h.DY = geom.HeadingVector(deg)
}

// Turn rotates by one step: a negative change turns left (direction decreases),
// anything else turns right.
func (h *Heading) Turn(change float64) {
	d := h.Direction
	if change < 0 {
		d -= TurnStep
	} else {
		d += TurnStep
	}
	h.Set(geom.WrapDegrees(d))
}

// SpriteRotation is the display angle; sprites are drawn nose-up, heading 0 is +y.
func (h *Heading) SpriteRotation() float64 {
	return h.Direction - 180
}

// Throttle is the scalar speed of a ship, kept within [0, MaxSpeed].
type Throttle struct {
	Speed float64
}

func (t *Throttle) Accelerate() {
	t.Speed = math.Min(MaxSpeed, t.Speed+ThrottleStep)
}

func (t *Throttle) Decelerate() {
	t.Speed = math.Max(0, t.Speed-ThrottleStep)
}

// Drift advances a ship one frame along its heading and bleeds off speed.
// Nothing moves at zero speed.
func Drift(pos *WorldPos, h *Heading, t *Throttle) {
	if t.Speed <= 0 {
		return
	}
	pos.X += h.DX * t.Speed
	pos.Y += h.DY * t.Speed
	t.Speed = math.Max(0, t.Speed-Drag)
}

// ReactiveTurn is the AI steering rule: turn left (-1) when the player is inside the
// proximity box, otherwise turn right (+1).
func ReactiveTurn(ai, player WorldPos) float64 {
	if math.Abs(player.X-ai.X) < ProximityBox && math.Abs(player.Y-ai.Y) < ProximityBox {
		return -1
	}
	return 1
}
