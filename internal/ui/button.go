// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"candy-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	BgColor  color.RGBA
	Disabled bool
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку с текстом по центру.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	if b.Rect.Empty() {
		return
	}
	bg := b.BgColor
	if b.Disabled {
		bg = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, config.TextLightColor)
}

// DrawCentered пишет строку по центру экрана на высоте y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (config.ScreenWidth-bounds.Dx())/2, y, clr)
}
