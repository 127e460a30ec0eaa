// internal/state/menu_state.go
package state

import (
	"image/color"

	"candy-defense/internal/config"
	"candy-defense/internal/ui"
	"candy-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	menuButtonWidth  = 260
	menuButtonHeight = 50
	menuButtonGap    = 16
	menuTop          = 280
)

// MenuState — выбор сложности перед началом игры.
type MenuState struct {
	sm       *StateMachine
	session  *Session
	names    []string
	buttons  []*ui.MenuButton
	selected int
	errText  string
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	names := session.Lib.DifficultyNames()
	m := &MenuState{
		sm:      sm,
		session: session,
		names:   names,
		buttons: ui.MenuColumn(names, menuTop, menuButtonWidth, menuButtonHeight, menuButtonGap, config.ScreenWidth),
	}
	for i, name := range names {
		if name == session.DefaultDifficulty {
			m.selected = i
		}
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if len(m.names) == 0 {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		m.selected = (m.selected + len(m.names) - 1) % len(m.names)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		m.selected = (m.selected + 1) % len(m.names)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.start(m.names[m.selected])
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.Contains(x, y) {
				m.selected = i
				m.start(m.names[i])
				return
			}
		}
	}
}

func (m *MenuState) start(difficulty string) {
	g, err := m.session.NewGame(difficulty)
	if err != nil {
		logger.Log.WithError(err).Error("failed to start game")
		m.errText = err.Error()
		return
	}
	m.session.DefaultDifficulty = difficulty
	m.sm.SetState(NewGameState(m.sm, m.session, g))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "CANDY DEFENSE", m.session.Faces.Big, 180, color.RGBA{R: 250, G: 170, B: 210, A: 255})
	ui.DrawCentered(screen, "choose difficulty", m.session.Faces.Regular, 230, config.TextLightColor)
	for i, b := range m.buttons {
		b.Selected = i == m.selected
		b.Draw(screen, m.session.Faces.Title)
	}
	if m.errText != "" {
		ui.DrawCentered(screen, m.errText, m.session.Faces.Regular, config.ScreenHeight-60, color.RGBA{R: 230, G: 80, B: 80, A: 255})
	}
}

func (m *MenuState) Exit() {}
