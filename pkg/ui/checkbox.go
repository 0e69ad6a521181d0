package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Checkbox is a simple UI widget for boolean values
type Checkbox struct {
	Label   string
	Value   bool
	X, Y    float64
	Size    float64
	clicked bool // Track if already clicked this frame
}

// NewCheckbox creates a new checkbox instance
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16,
	}
}

// toggle feeds one frame of mouse state. A press toggles Value once,
// holding the button down does not toggle again.
func (c *Checkbox) toggle(over, down bool) {
	if over && down {
		if !c.clicked {
			c.Value = !c.Value
			c.clicked = true
		}
		return
	}
	c.clicked = false
}

// Update checks for mouse interaction
func (c *Checkbox) Update() {
	mx, my := cursor()
	c.toggle(inside(mx, my, c.X, c.Y, c.Size, c.Size), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Draw renders the checkbox
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2, colornames.Silver, true)

	if c.Value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			colornames.Mediumseagreen, true)
	}
}
