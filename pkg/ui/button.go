package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Button is a clickable UI button
type Button struct {
	Label   string
	X, Y    float64
	Width   float64
	Height  float64
	pressed bool   // mouse went down on the button and is still down
	OnClick func() // called once per click, on press

	BGColor    color.RGBA
	HoverColor color.RGBA
	TextColor  color.RGBA
}

// NewButton creates a new button instance
func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label:      label,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		OnClick:    onClick,
		BGColor:    colornames.Steelblue,
		HoverColor: colornames.Cornflowerblue,
		TextColor:  colornames.White,
	}
}

// Contains reports whether (px, py) is over the button.
func (b *Button) Contains(px, py float64) bool {
	return inside(px, py, b.X, b.Y, b.Width, b.Height)
}

// press feeds one frame of mouse state. It fires OnClick on the first
// frame the button is held down over the button.
func (b *Button) press(over, down bool) {
	if over && down {
		if !b.pressed && b.OnClick != nil {
			b.OnClick()
		}
		b.pressed = true
		return
	}
	b.pressed = false
}

// Update checks for mouse interaction
func (b *Button) Update() {
	mx, my := cursor()
	b.press(b.Contains(mx, my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Draw renders the button
func (b *Button) Draw(screen *ebiten.Image) {
	bgColor := b.BGColor
	if mx, my := cursor(); b.Contains(mx, my) {
		bgColor = b.HoverColor
	}

	vector.FillRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, true)
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		2, colornames.Silver, true)

	tx := b.X + (b.Width-TextWidth(b.Label))/2
	ty := b.Y + (b.Height-lineHeight)/2
	DrawText(screen, b.Label, tx, ty, b.TextColor)
}
