package game

// Parked is where a hidden indicator is moved to while its target is on screen.
const Parked = -900.0

// Box is a screen-space rectangle anchored at its top-left corner.
type Box struct {
	X, Y, W, H float64
}

// Projection is the result of placing an indicator.
type Projection struct {
	X, Y     float64
	Visible  bool // target overlaps the viewport; the indicator is parked
	Vertical bool // target shares the centre's x, the slope is undefined
}

// ProjectIndicator places an indicator of size (iw, ih) on the border of a width x height
// viewport, on the line from the viewport centre toward target. The indicator is kept at
// least one pixel inside every edge.
func ProjectIndicator(width, height float64, target Box, iw, ih float64) Projection {
	x0, y0 := width/2, height/2
	x1, y1 := target.X, target.Y

	if x1+target.W > 0 && x1 < width && y1+target.H > 0 && y1 < height {
		return Projection{X: Parked, Y: Parked, Visible: true}
	}

	top, bottom := 1.0, height-ih-1
	left, right := 1.0, width-iw-1

	if x1 == x0 {
		x2 := min(max(x1, left), right)
		if y1 < y0 {
			return Projection{X: x2, Y: top, Vertical: true}
		}
		return Projection{X: x2, Y: bottom, Vertical: true}
	}

	m := (y0 - y1) / (x0 - x1)
	x2 := left
	if x1 > x0 {
		x2 = right
	}
	y2 := m*(x2-x1) + y1

	// The second check sees the y2 assigned by the first.
	if y2 < top {
		y2 = top
		x2 = (y2-y1)/m + x1
	}
	if y2 > bottom {
		y2 = bottom
		x2 = (y2-y1)/m + x1
	}

	return Projection{X: x2, Y: y2}
}
