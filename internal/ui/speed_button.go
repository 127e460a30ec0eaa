// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton cycles the number of simulation ticks run per frame.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	Multipliers   []int
	CurrentState  int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{
		X:    x,
		Y:    y,
		Size: size,
		StateColors: []color.RGBA{
			{R: 200, G: 200, B: 200, A: 255},
			{R: 240, G: 180, B: 40, A: 255},
			{R: 240, G: 80, B: 40, A: 255},
		},
		Multipliers: []int{1, 2, 4},
	}
}

// Multiplier is how many ticks the game state runs this frame.
func (b *SpeedButton) Multiplier() int {
	return b.Multipliers[b.CurrentState]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)
	clr := b.StateColors[b.CurrentState]

	height := size * 1.2
	width := size
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, clr)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.LastClickTime = time.Now()
}
