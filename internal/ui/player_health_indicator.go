// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"candy-defense/internal/config"
	"candy-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y          float32
	Width, Height float32
	fontFace      font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y, width, height float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Width: width, Height: height, fontFace: face}
}

// Draw рисует полосу здоровья и подпись "health/max" над ней.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	frac := 0.0
	if maxHealth > 0 {
		frac = float64(health) / float64(maxHealth)
	}
	if frac < 0 {
		frac = 0
	}
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, color.Black, false)
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width*float32(min(frac, 1)), i.Height, render.HealthColor(frac), false)
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, 1, color.White, false)

	label := fmt.Sprintf("HP %d/%d", health, maxHealth)
	text.Draw(screen, label, i.fontFace, int(i.X), int(i.Y)-6, config.TextLightColor)
}
