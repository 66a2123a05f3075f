// Package geom holds the small amount of angle math shared by the simulation and renderer.
package geom

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return (rad / math.Pi) * 180.0
}

// HeadingVector returns the unit heading for a direction in degrees.
// Heading 0 points along +y, 90 along +x.
func HeadingVector(deg float64) (dx, dy float64) {
	a := DegToRad(deg)
	return math.Sin(a), math.Cos(a)
}

// WrapDegrees folds deg into [0,360) with a single correction step.
// Callers keep |deg| within one turn of the range so one step suffices.
func WrapDegrees(deg float64) float64 {
	if deg >= 360 {
		deg -= 360
	}
	if deg < 0 {
		deg += 360
	}
	return deg
}
