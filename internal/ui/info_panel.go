// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"candy-defense/internal/app"
	"candy-defense/internal/config"
	"candy-defense/internal/defs"
	"candy-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 230
	panelMargin    = 5
	animationSpeed = 14.0
	lineHeight     = 20
	buttonWidth    = 120
	buttonHeight   = 34
)

// PanelAction is what a click on the panel asks the game to do.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelSell
)

// InfoPanel displays the selected tower with upgrade and sell buttons.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	X, Width      int
	fontFace      font.Face
	titleFontFace font.Face
	lib           *defs.Library
	currentY      float64
	targetY       float64
	UpgradeButton Button
	SellButton    Button
}

// NewInfoPanel creates a panel that slides up from the bottom of the sidebar.
func NewInfoPanel(x, width int, faces Faces, lib *defs.Library) *InfoPanel {
	return &InfoPanel{
		X:             x,
		Width:         width,
		fontFace:      faces.Regular,
		titleFontFace: faces.Title,
		lib:           lib,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update двигает панель и прячет её, если выбранной башни больше нет.
func (p *InfoPanel) Update(snap *app.Snapshot) {
	if p.TargetEntity != 0 && findTower(snap, p.TargetEntity) == nil {
		p.Hide()
	}
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}
}

// HandleClick возвращает действие по кнопке под курсором.
func (p *InfoPanel) HandleClick(x, y int) PanelAction {
	if !p.IsVisible || p.TargetEntity == 0 {
		return PanelNone
	}
	if p.UpgradeButton.Contains(x, y) && !p.UpgradeButton.Disabled {
		return PanelUpgrade
	}
	if p.SellButton.Contains(x, y) {
		return PanelSell
	}
	return PanelNone
}

// Contains reports whether (x, y) is over the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.rect())
}

func (p *InfoPanel) rect() image.Rectangle {
	return image.Rect(
		p.X,
		int(p.currentY)+panelMargin,
		p.X+p.Width,
		int(p.currentY)+panelHeight-panelMargin,
	)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	panelRect := p.rect()

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	tower := findTower(snap, p.TargetEntity)
	if tower == nil {
		return
	}
	def, ok := p.lib.Towers[tower.DefID]
	if !ok {
		return
	}
	p.drawTowerInfo(screen, tower, def, panelRect.Min.X+15, panelRect.Min.Y+15+titleFontSize)
	p.drawButtons(screen, panelRect, tower, def, snap.Money)
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, t *app.TowerSnapshot, def defs.TowerDefinition, startX, startY int) {
	text.Draw(screen, fmt.Sprintf("%s  (tier %d/%d)", def.Name, t.Tier+1, len(def.Tiers)), p.titleFontFace, startX, startY, config.TextLightColor)
	stats := def.Tiers[t.Tier]
	y := startY + lineHeight + 4
	lines := []string{
		fmt.Sprintf("Damage: %g %s", stats.Damage, def.DamageType),
		fmt.Sprintf("Range: %d  Delay: %d", stats.Range, stats.AttackDelay),
		fmt.Sprintf("Projectile: %s", def.Projectile),
		fmt.Sprintf("State: %s", t.State),
		fmt.Sprintf("Value: $%d", t.Value),
	}
	switch def.Projectile {
	case defs.ProjectileSplash:
		lines = append(lines, fmt.Sprintf("Splash: %g", stats.SplashRadius))
	case defs.ProjectilePiercing:
		lines = append(lines, fmt.Sprintf("Pierce: %d", stats.Pierce))
	}
	for _, line := range lines {
		text.Draw(screen, line, p.fontFace, startX, y, config.TextLightColor)
		y += lineHeight
	}
}

func (p *InfoPanel) drawButtons(screen *ebiten.Image, panelRect image.Rectangle, t *app.TowerSnapshot, def defs.TowerDefinition, money int) {
	top := panelRect.Max.Y - buttonHeight - 12
	p.UpgradeButton.Rect = image.Rect(panelRect.Max.X-2*buttonWidth-24, top, panelRect.Max.X-buttonWidth-24, top+buttonHeight)
	p.UpgradeButton.BgColor = color.RGBA{R: 60, G: 120, B: 60, A: 255}
	if t.Tier >= def.MaxTier() {
		p.UpgradeButton.Text = "Max tier"
		p.UpgradeButton.Disabled = true
	} else {
		cost := def.Tiers[t.Tier+1].Cost
		p.UpgradeButton.Text = fmt.Sprintf("Upgrade $%d", cost)
		p.UpgradeButton.Disabled = money < cost
	}
	p.UpgradeButton.Draw(screen, p.fontFace)

	p.SellButton.Rect = image.Rect(panelRect.Max.X-buttonWidth-12, top, panelRect.Max.X-12, top+buttonHeight)
	p.SellButton.BgColor = color.RGBA{R: 140, G: 60, B: 60, A: 255}
	p.SellButton.Text = fmt.Sprintf("Sell $%d", t.Value/config.SellRefundDivisor)
	p.SellButton.Draw(screen, p.fontFace)
}

func findTower(snap *app.Snapshot, id types.EntityID) *app.TowerSnapshot {
	if id == 0 {
		return nil
	}
	for i := range snap.Towers {
		if snap.Towers[i].ID == id {
			return &snap.Towers[i]
		}
	}
	return nil
}
