// internal/ui/tower_shop.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"candy-defense/internal/config"
	"candy-defense/internal/defs"
	"candy-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	shopRowHeight = 40
	shopRowGap    = 6
	shopSwatch    = 24
)

// TowerShop отображает список башен с ценой. Клавиши 1..N и клик выбирают башню.
type TowerShop struct {
	X, Y     int
	Width    int
	Selected string
	fontFace font.Face
	lib      *defs.Library
	rows     []Button
}

// NewTowerShop создает магазин в порядке TowerOrder.
func NewTowerShop(x, y, width int, face font.Face, lib *defs.Library) *TowerShop {
	s := &TowerShop{X: x, Y: y, Width: width, fontFace: face, lib: lib}
	for i, id := range lib.TowerOrder {
		top := y + i*(shopRowHeight+shopRowGap)
		s.rows = append(s.rows, Button{
			Rect:    image.Rect(x, top, x+width, top+shopRowHeight),
			Text:    id,
			BgColor: color.RGBA{R: 40, G: 45, B: 60, A: 255},
		})
	}
	return s
}

// Height is the vertical space the shop occupies.
func (s *TowerShop) Height() int {
	return len(s.rows) * (shopRowHeight + shopRowGap)
}

// SelectIndex выбирает башню по номеру (0-based). Повторный выбор снимает выделение.
func (s *TowerShop) SelectIndex(i int) {
	if i < 0 || i >= len(s.lib.TowerOrder) {
		return
	}
	id := s.lib.TowerOrder[i]
	if s.Selected == id {
		s.Selected = ""
		return
	}
	s.Selected = id
}

// HandleClick выбирает строку под курсором. Возвращает true, если клик попал в магазин.
func (s *TowerShop) HandleClick(x, y int) bool {
	for i := range s.rows {
		if s.rows[i].Contains(x, y) {
			s.SelectIndex(i)
			return true
		}
	}
	return false
}

// Draw рисует строки; недоступные по цене затемнены.
func (s *TowerShop) Draw(screen *ebiten.Image, money int) {
	for i, row := range s.rows {
		def := s.lib.Towers[row.Text]
		bg := row.BgColor
		if def.ID == s.Selected {
			bg = color.RGBA{R: 90, G: 70, B: 120, A: 255}
		}
		r := row.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, color.RGBA{R: 70, G: 100, B: 120, A: 255}, false)

		swatchY := float32(r.Min.Y + (shopRowHeight-shopSwatch)/2)
		vector.DrawFilledRect(screen, float32(r.Min.X+8), swatchY, shopSwatch, shopSwatch, render.TowerColor(def.ID), false)

		textColor := color.Color(config.TextLightColor)
		if money < def.PlacementCost() {
			textColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		}
		label := fmt.Sprintf("%d  %s", i+1, def.Name)
		baseline := r.Min.Y + shopRowHeight/2 + 5
		text.Draw(screen, label, s.fontFace, r.Min.X+16+shopSwatch, baseline, textColor)
		cost := fmt.Sprintf("$%d", def.PlacementCost())
		costW := text.BoundString(s.fontFace, cost).Dx()
		text.Draw(screen, cost, s.fontFace, r.Max.X-costW-10, baseline, textColor)
	}
}
