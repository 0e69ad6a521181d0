package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Slider is a horizontal value picker
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	// Step snaps Value to Min + k*Step. Zero means continuous.
	Step float64
	X, Y float64
	W, H float64
}

// NewSlider creates a slider of width w whose value starts at value.
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label: label,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     w,
		H:     10,
	}
	s.SetValue(value)
	return s
}

// SetValue clamps v to [Min, Max], snaps it to Step and stores it.
func (s *Slider) SetValue(v float64) {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
}

// Ratio returns the position of Value between Min and Max, in [0, 1].
func (s *Slider) Ratio() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Contains reports whether the point (px, py) is on the slider track.
func (s *Slider) Contains(px, py float64) bool {
	return inside(px, py, s.X, s.Y, s.W, s.H)
}

// dragTo sets the value from a cursor x coordinate on the track.
func (s *Slider) dragTo(px float64) {
	s.SetValue(s.Min + (px-s.X)/s.W*(s.Max-s.Min))
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	if mx, my := cursor(); s.Contains(mx, my) {
		s.dragTo(mx)
	}
}

// Draw renders the track, the filled part and the current value
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), colornames.Dimgray, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H), colornames.Lightgray, true)

	label := s.format()
	DrawText(screen, label, s.X+s.W-TextWidth(label), s.Y-lineHeight-1, colornames.Lightgray)
}

func (s *Slider) format() string {
	if s.Step >= 1 {
		return fmt.Sprintf("%d", int(s.Value))
	}
	return fmt.Sprintf("%.3g", s.Value)
}
