// internal/ui/topbar.go
package ui

import (
	"fmt"

	"candy-defense/internal/app"
	"candy-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Topbar собирает индикаторы верхней панели.
type Topbar struct {
	faces  Faces
	Health *PlayerHealthIndicator
	Wave   *WaveIndicator
	State  *StateIndicator
	Pause  *PauseButton
	Speed  *SpeedButton
}

func NewTopbar(faces Faces) *Topbar {
	mid := float32(config.TopbarHeight / 2)
	return &Topbar{
		faces:  faces,
		Health: NewPlayerHealthIndicator(20, mid+4, 200, 14, faces.Regular),
		Wave:   NewWaveIndicator(config.GridSize/2, int(mid)+10, faces.Big),
		State:  NewStateIndicator(config.GridSize/2+110, mid, 14),
		Pause:  NewPauseButton(config.ScreenWidth-60, mid, 12, config.TextLightColor, config.StartTileColor),
		Speed:  NewSpeedButton(config.ScreenWidth-120, mid, 14),
	}
}

// Draw рисует фон панели, здоровье, деньги, волну и кнопки.
func (t *Topbar) Draw(screen *ebiten.Image, snap *app.Snapshot, startingHealth int) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.TopbarHeight, config.TopbarColor, false)

	t.Health.Draw(screen, snap.Health, startingHealth)
	text.Draw(screen, fmt.Sprintf("$%d", snap.Money), t.faces.Title, 250, int(t.Health.Y)+14, config.TextLightColor)

	t.Wave.Draw(screen, snap.Wave.Number, snap.Wave.LastWave)
	t.State.Draw(screen, WaveStateColor(snap.Wave.State))
	waveLabel := fmt.Sprintf("wave %d/%d", snap.Wave.Number, snap.Wave.LastWave)
	text.Draw(screen, waveLabel, t.faces.Regular, int(t.State.X)+24, int(t.State.Y)+5, config.TextLightColor)

	t.Speed.Draw(screen)
	t.Pause.Draw(screen)
}
