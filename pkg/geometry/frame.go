package geometry

// Frame is a reference frame: an origin and two orthogonal basis vectors
// expressed in display coordinates. It maps simulation space (origin
// bottom-left, y up) to display space (origin top-left, y down) and back.
type Frame struct {
	Origin Vector2D
	BX, BY Vector2D
}

// NewDisplayFrame returns the frame whose origin sits at the bottom-left
// corner of display, with simulation y growing upward.
func NewDisplayFrame(display Rect) Frame {
	f := Frame{
		BX: Vector2D{X: 1, Y: 0},
		BY: Vector2D{X: 0, Y: -1},
	}
	f.Resize(display)
	return f
}

// Resize moves the origin to the bottom-left corner of the new display
// rectangle. The basis vectors never change.
func (f *Frame) Resize(display Rect) {
	f.Origin = Vector2D{X: display.Min.X, Y: display.Max.Y}
}

// ToDisplay maps a simulation point to display coordinates.
func (f Frame) ToDisplay(p Vector2D) Vector2D {
	return f.Origin.Add(f.BX.Mul(p.X)).Add(f.BY.Mul(p.Y))
}

// ToSimulation maps a display point to simulation coordinates.
// It is the inverse of ToDisplay as long as BX and BY are orthogonal
// and non-zero.
func (f Frame) ToSimulation(p Vector2D) Vector2D {
	d := p.Sub(f.Origin)
	return Vector2D{
		X: d.Dot(f.BX) / f.BX.LenSqr(),
		Y: d.Dot(f.BY) / f.BY.LenSqr(),
	}
}
