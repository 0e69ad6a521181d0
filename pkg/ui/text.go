package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap font used by every widget and the HUD.
var Face = text.NewGoXFace(basicfont.Face7x13)

const lineHeight = 14

// DrawText draws s with its top-left corner at (x, y).
// Multi-line strings are supported.
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineHeight
	text.Draw(screen, s, Face, op)
}

// TextWidth returns the width of s in pixels once drawn with Face.
func TextWidth(s string) float64 {
	w, _ := text.Measure(s, Face, lineHeight)
	return w
}

// inside reports whether (px, py) lies in the box at (x, y) of size w*h.
func inside(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

func cursor() (float64, float64) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my)
}
