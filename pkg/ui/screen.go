// Package ui holds the ebiten screens of the windowed game.
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Screen is one state of the windowed game.
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

var (
	hudFace = text.NewGoXFace(bitmapfont.Face)

	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawText draws s at (x, y) scaled by scale.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, hudFace, op)
}

// drawCentered draws s horizontally centred on cx.
func drawCentered(dst *ebiten.Image, s string, cx, y, scale float64, c color.Color) {
	w := text.Advance(s, hudFace) * scale
	drawText(dst, s, cx-w/2, y, scale, c)
}
