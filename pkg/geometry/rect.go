package geometry

import "fmt"

// Rect is an axis aligned rectangle given by its min and max corners.
// It is used both for the flock jail (simulation space) and for the
// display surface (screen space).
type Rect struct {
	Min Vector2D `json:"min"`
	Max Vector2D `json:"max"`
}

// NewRect builds the rectangle (x0,y0)-(x1,y1). Corners are taken as given,
// call Canon to get min <= max on both axes.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Vector2D{X: x0, Y: y0}, Max: Vector2D{X: x1, Y: y1}}
}

// Dx returns the width of r.
func (r Rect) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the extent of r as a vector.
func (r Rect) Size() Vector2D {
	return r.Max.Sub(r.Min)
}

// Empty reports whether r has zero or negative extent on some axis.
func (r Rect) Empty() bool {
	return r.Dx() <= 0 || r.Dy() <= 0
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector2D) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Canon returns r with swapped coordinates fixed so that Min <= Max.
func (r Rect) Canon() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// String implements the fmt.Stringer interface.
func (r Rect) String() string {
	return fmt.Sprintf("%s-%s", r.Min, r.Max)
}
