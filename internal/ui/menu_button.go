// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Button
	Selected bool
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect image.Rectangle, label string) *MenuButton {
	return &MenuButton{
		Button: Button{
			Rect:    rect,
			Text:    label,
			BgColor: color.RGBA{R: 80, G: 70, B: 100, A: 255},
		},
	}
}

// Draw отрисовывает кнопку; выбранная подсвечивается.
func (b *MenuButton) Draw(screen *ebiten.Image, face font.Face) {
	btn := b.Button
	if b.Selected {
		btn.BgColor = color.RGBA{R: 170, G: 90, B: 140, A: 255}
	}
	btn.Draw(screen, face)
}

// MenuColumn раскладывает кнопки по вертикали по центру экрана.
func MenuColumn(labels []string, top, width, height, gap, screenWidth int) []*MenuButton {
	buttons := make([]*MenuButton, 0, len(labels))
	x := (screenWidth - width) / 2
	for i, label := range labels {
		y := top + i*(height+gap)
		buttons = append(buttons, NewMenuButton(image.Rect(x, y, x+width, y+height), label))
	}
	return buttons
}
