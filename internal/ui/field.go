// internal/ui/field.go
package ui

import (
	"image/color"

	"candy-defense/internal/app"
	"candy-defense/internal/config"
	"candy-defense/internal/types"
	"candy-defense/pkg/gridmap"
	"candy-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	towerInset    = 10
	enemyRadius   = config.EnemySize * 0.3
	healthBarW    = 40
	healthBarH    = 5
	tierPipSize   = 6
	tierPipOffset = 4
)

// Cursor describes what the player is pointing at on the field.
type Cursor struct {
	Cell     gridmap.Cell
	OnField  bool
	CanPlace bool
}

// FieldRenderer рисует поле, башни, врагов и снаряды из снимка мира.
type FieldRenderer struct {
	colors render.FieldColors
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{colors: render.DefaultFieldColors()}
}

// Draw renders snap. selected gets its range highlighted.
func (r *FieldRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot, selected types.EntityID, cursor Cursor) {
	vector.DrawFilledRect(screen, config.FieldLeft, config.FieldTop, config.GridSize, config.GridSize, r.colors.BackgroundColor, false)
	r.drawTiles(screen, snap.Tiles)

	for _, t := range snap.Towers {
		r.drawTower(screen, t, t.ID == selected)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectile {
		r.drawProjectile(screen, p)
	}
	if cursor.OnField {
		r.drawCursor(screen, cursor)
	}
}

func (r *FieldRenderer) drawTiles(screen *ebiten.Image, tiles [][]int) {
	size := float32(config.GridCellSize - 2*config.GridOffset)
	for y, row := range tiles {
		for x, code := range row {
			px := float32(x*config.GridCellSize + config.GridOffset)
			py := float32(y*config.GridCellSize + config.TopbarHeight + config.GridOffset)
			vector.DrawFilledRect(screen, px, py, size, size, r.colors.Tile(code), false)
		}
	}
}

func (r *FieldRenderer) drawTower(screen *ebiten.Image, t app.TowerSnapshot, selected bool) {
	px := float32(t.GridX*config.GridCellSize + towerInset)
	py := float32(t.GridY*config.GridCellSize + config.TopbarHeight + towerInset)
	size := float32(config.GridCellSize - 2*towerInset)
	vector.DrawFilledRect(screen, px, py, size, size, render.TowerColor(t.DefID), true)

	for i := 0; i <= t.Tier; i++ {
		vector.DrawFilledRect(screen, px+tierPipOffset+float32(i*(tierPipSize+2)), py+tierPipOffset,
			tierPipSize, tierPipSize, color.RGBA{R: 255, G: 215, B: 0, A: 255}, false)
	}

	if selected {
		vector.StrokeRect(screen, px, py, size, size, 2, color.White, true)
		rr := t.Range
		vector.StrokeRect(screen, float32(rr.X), float32(rr.Y), float32(rr.W), float32(rr.H),
			r.colors.StrokeWidth, r.colors.RangeColor, false)
	}
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemySnapshot) {
	cx := float32(e.X + config.EnemySize/2)
	cy := float32(e.Y + config.EnemySize/2)
	vector.DrawFilledCircle(screen, cx, cy, enemyRadius, render.EnemyColor(e.DefID, e.Altered), true)
	vector.StrokeCircle(screen, cx, cy, enemyRadius, 1, color.Black, true)

	frac := e.Fraction
	bx := cx - healthBarW/2
	by := cy - enemyRadius - healthBarH - 3
	vector.DrawFilledRect(screen, bx, by, healthBarW, healthBarH, color.Black, false)
	vector.DrawFilledRect(screen, bx, by, healthBarW*float32(frac), healthBarH, render.HealthColor(frac), false)
}

func (r *FieldRenderer) drawProjectile(screen *ebiten.Image, p app.ProjectileSnapshot) {
	clr := render.ProjectileColor(p.Kind)
	if p.Kind == "channel" {
		vector.DrawFilledRect(screen, float32(p.X-p.W/2), float32(p.Y-p.H/2), float32(p.W), float32(p.H), clr, false)
		return
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.W/2), clr, true)
}

func (r *FieldRenderer) drawCursor(screen *ebiten.Image, c Cursor) {
	clr := color.RGBA{R: 255, G: 255, B: 255, A: 200}
	if !c.CanPlace {
		clr = color.RGBA{R: 230, G: 40, B: 40, A: 200}
	}
	px := float32(c.Cell.X * config.GridCellSize)
	py := float32(c.Cell.Y*config.GridCellSize + config.TopbarHeight)
	vector.StrokeRect(screen, px, py, config.GridCellSize, config.GridCellSize, 2, clr, false)
}
