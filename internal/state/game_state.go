// internal/state/game_state.go
package state

import (
	"errors"
	"image/color"

	"candy-defense/internal/app"
	"candy-defense/internal/component"
	"candy-defense/internal/config"
	"candy-defense/internal/system"
	"candy-defense/internal/types"
	"candy-defense/internal/ui"
	"candy-defense/pkg/gridmap"
	"candy-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

const (
	messageDuration = 2.0 // seconds
	sidebarMargin   = 20
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

var helpLines = []string{
	"N / click circle - next wave",
	"LMB - place / select, RMB - sell",
	"U - upgrade, S - sell selected",
	"F - speed, P - pause, R - restart",
}

type GameState struct {
	sm        *StateMachine
	session   *Session
	game      *app.Game
	field     *ui.FieldRenderer
	topbar    *ui.Topbar
	shop      *ui.TowerShop
	infoPanel *ui.InfoPanel
	snap      app.Snapshot
	cursor    ui.Cursor
	selected  types.EntityID
	message   string
	msgTimer  float64
}

func NewGameState(sm *StateMachine, session *Session, game *app.Game) *GameState {
	sidebarX := config.ScreenWidth - config.SidebarWidth - sidebarMargin
	gs := &GameState{
		sm:        sm,
		session:   session,
		game:      game,
		field:     ui.NewFieldRenderer(),
		topbar:    ui.NewTopbar(session.Faces),
		shop:      ui.NewTowerShop(sidebarX, config.TopbarHeight+sidebarMargin, config.SidebarWidth, session.Faces.Regular, session.Lib),
		infoPanel: ui.NewInfoPanel(sidebarX, config.SidebarWidth, session.Faces, session.Lib),
	}
	gs.snap = game.Snapshot()
	return gs
}

func (g *GameState) Enter() {
	g.topbar.Pause.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if g.msgTimer > 0 {
		g.msgTimer -= deltaTime
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return
	}
	g.handleKeys()

	if g.game.Phase() == component.PhasePlaying {
		for i := 0; i < g.topbar.Speed.Multiplier(); i++ {
			g.game.Tick()
			if g.game.Phase() != component.PhasePlaying {
				break
			}
		}
	}
	g.snap = g.game.Snapshot()
	g.infoPanel.Update(&g.snap)
	if g.infoPanel.TargetEntity == 0 {
		g.selected = 0
	}

	x, y := ebiten.CursorPosition()
	g.updateCursor(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleLeftClick(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && g.cursor.OnField {
		if t := g.game.TowerAt(g.cursor.Cell.X, g.cursor.Cell.Y); t != nil {
			g.sell(t.ID)
		}
	}
}

func (g *GameState) handleKeys() {
	for i, key := range towerKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.shop.SelectIndex(i)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.nextWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.upgrade(g.selected)
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		g.sell(g.selected)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.topbar.Speed.ToggleState()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyM) && g.game.Phase() != component.PhasePlaying:
		g.sm.SetState(NewMenuState(g.sm, g.session))
	}
}

func (g *GameState) handleLeftClick(x, y int) {
	switch {
	case g.topbar.Speed.IsClicked(x, y):
		g.topbar.Speed.ToggleState()
	case g.topbar.Pause.IsClicked(x, y):
		g.pause()
	case g.topbar.State.IsClicked(x, y):
		g.topbar.State.HandleClick()
		g.nextWave()
	case g.infoPanel.Contains(x, y):
		switch g.infoPanel.HandleClick(x, y) {
		case ui.PanelUpgrade:
			g.upgrade(g.selected)
		case ui.PanelSell:
			g.sell(g.selected)
		}
	case g.shop.HandleClick(x, y):
	case g.cursor.OnField:
		g.handleFieldClick()
	}
}

func (g *GameState) handleFieldClick() {
	cell := g.cursor.Cell
	if t := g.game.TowerAt(cell.X, cell.Y); t != nil {
		g.selected = t.ID
		g.infoPanel.SetTarget(t.ID)
		return
	}
	if g.shop.Selected == "" {
		g.selected = 0
		g.infoPanel.Hide()
		return
	}
	t, err := g.game.PlaceTower(g.shop.Selected, cell.X, cell.Y)
	if err != nil {
		g.reportError(err)
		return
	}
	g.selected = t.ID
	g.infoPanel.SetTarget(t.ID)
}

func (g *GameState) updateCursor(x, y int) {
	cell := gridmap.ScreenToCell(float64(x), float64(y))
	onField := x >= config.FieldLeft && x < config.FieldRight && y >= config.FieldTop && y < config.FieldBottom
	g.cursor = ui.Cursor{
		Cell:     cell,
		OnField:  onField,
		CanPlace: onField && g.game.Map.TileState(cell.X, cell.Y) == gridmap.TileEmpty,
	}
}

func (g *GameState) nextWave() {
	if g.game.Phase() != component.PhasePlaying {
		return
	}
	if !g.game.NextWave() {
		g.showMessage("Wave still in progress")
	}
}

func (g *GameState) upgrade(id types.EntityID) {
	if id == 0 {
		return
	}
	if _, err := g.game.UpgradeTower(id); err != nil {
		g.reportError(err)
	}
}

func (g *GameState) sell(id types.EntityID) {
	if id == 0 {
		return
	}
	if _, err := g.game.SellTower(id); err != nil {
		g.reportError(err)
		return
	}
	if id == g.selected {
		g.selected = 0
		g.infoPanel.Hide()
	}
}

func (g *GameState) restart() {
	g.game.Reset()
	g.selected = 0
	g.infoPanel.Hide()
	g.snap = g.game.Snapshot()
	g.showMessage("Restarted")
}

func (g *GameState) pause() {
	g.topbar.Pause.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) reportError(err error) {
	logger.Log.WithFields(logrus.Fields{"error": err}).Debug("player action rejected")
	switch {
	case errors.Is(err, app.ErrInsufficientFunds):
		g.showMessage("Not enough money")
	case errors.Is(err, system.ErrMaxTierReached):
		g.showMessage("Tower is at max tier")
	case errors.Is(err, app.ErrInvalidPlacement):
		g.showMessage("Can't build here")
	default:
		g.showMessage(err.Error())
	}
}

func (g *GameState) showMessage(msg string) {
	g.message = msg
	g.msgTimer = messageDuration
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.field.Draw(screen, &g.snap, g.selected, g.cursor)
	g.topbar.Draw(screen, &g.snap, g.game.Profile.StartingHealth)
	g.shop.Draw(screen, g.snap.Money)
	g.drawHelp(screen)
	g.infoPanel.Draw(screen, &g.snap)

	if g.msgTimer > 0 {
		text.Draw(screen, g.message, g.session.Faces.Title, config.FieldLeft+10, config.FieldBottom-12, color.RGBA{R: 255, G: 230, B: 120, A: 255})
	}
	switch g.game.Phase() {
	case component.PhaseWon:
		g.drawBanner(screen, "VICTORY", color.RGBA{R: 120, G: 230, B: 120, A: 255})
	case component.PhaseLost:
		g.drawBanner(screen, "DEFEAT", color.RGBA{R: 230, G: 80, B: 80, A: 255})
	}
}

func (g *GameState) drawHelp(screen *ebiten.Image) {
	x := config.ScreenWidth - config.SidebarWidth - sidebarMargin
	y := config.TopbarHeight + sidebarMargin + g.shop.Height() + 20
	for _, line := range helpLines {
		text.Draw(screen, line, g.session.Faces.Regular, x, y, config.TextLightColor)
		y += 18
	}
}

func (g *GameState) drawBanner(screen *ebiten.Image, title string, clr color.Color) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{A: 150}, false)
	ui.DrawCentered(screen, title, g.session.Faces.Big, config.ScreenHeight/2-20, clr)
	ui.DrawCentered(screen, "R - restart, M - menu", g.session.Faces.Regular, config.ScreenHeight/2+20, config.TextLightColor)
}

func (g *GameState) Exit() {}
