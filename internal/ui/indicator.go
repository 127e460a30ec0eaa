// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator - круглый индикатор состояния волны. Клик по нему в
// состоянии idle запускает следующую волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// WaveStateColor maps the scheduler state name to the indicator color.
func WaveStateColor(state string) color.RGBA {
	switch state {
	case "spawning":
		return color.RGBA{R: 230, G: 120, B: 30, A: 255}
	case "waiting-for-clear":
		return color.RGBA{R: 230, G: 200, B: 40, A: 255}
	default:
		return color.RGBA{R: 60, G: 190, B: 80, A: 255}
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1.5, color.White, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	return inCircle(x, y, i.X, i.Y, i.Radius)
}

// HandleClick запускает анимацию нажатия.
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

func inCircle(x, y int, cx, cy, r float32) bool {
	dx := float32(x) - cx
	dy := float32(y) - cy
	return dx*dx+dy*dy <= r*r
}
