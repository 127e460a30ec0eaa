// internal/server/snapshot_png.go
package server

import (
	"fmt"
	"image"
	"image/color"

	"candy-defense/internal/app"
	"candy-defense/internal/config"
	"candy-defense/pkg/render"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// RenderSnapshot draws the field of snap at 1 px per world pixel. The top
// bar is not part of the image, so world Y is shifted by TopbarHeight.
func RenderSnapshot(snap app.Snapshot) image.Image {
	colors := render.DefaultFieldColors()
	dc := gg.NewContext(config.GridSize, config.GridSize)
	dc.SetColor(colors.BackgroundColor)
	dc.Clear()

	cell := float64(config.GridCellSize)
	inset := float64(config.GridOffset)
	for y, row := range snap.Tiles {
		for x, code := range row {
			dc.SetColor(colors.Tile(code))
			dc.DrawRectangle(float64(x)*cell+inset, float64(y)*cell+inset, cell-2*inset, cell-2*inset)
			dc.Fill()
		}
	}

	for _, t := range snap.Towers {
		dc.SetColor(render.TowerColor(t.DefID))
		dc.DrawRectangle(float64(t.GridX)*cell+10, float64(t.GridY)*cell+10, cell-20, cell-20)
		dc.Fill()
		dc.SetColor(color.White)
		dc.DrawString(fmt.Sprintf("%d", t.Tier+1), float64(t.GridX)*cell+14, float64(t.GridY)*cell+24)
	}

	for _, e := range snap.Enemies {
		cx := e.X + config.EnemySize/2
		cy := e.Y - config.TopbarHeight + config.EnemySize/2
		dc.SetColor(render.EnemyColor(e.DefID, e.Altered))
		dc.DrawCircle(cx, cy, config.EnemySize*0.3)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.DrawRectangle(cx-20, cy-28, 40, 5)
		dc.Fill()
		dc.SetColor(render.HealthColor(e.Fraction))
		dc.DrawRectangle(cx-20, cy-28, 40*e.Fraction, 5)
		dc.Fill()
	}

	for _, p := range snap.Projectile {
		dc.SetColor(render.ProjectileColor(p.Kind))
		y := p.Y - config.TopbarHeight
		if p.Kind == "channel" {
			dc.DrawRectangle(p.X-p.W/2, y-p.H/2, p.W, p.H)
		} else {
			dc.DrawCircle(p.X, y, p.W/2)
		}
		dc.Fill()
	}

	dc.SetColor(color.Black)
	dc.DrawString(fmt.Sprintf("tick %d  wave %d/%d  $%d  hp %d  %s",
		snap.Tick, snap.Wave.Number, snap.Wave.LastWave, snap.Money, snap.Health, snap.Phase), 6, 14)
	return dc.Image()
}

// ScaleSnapshot resizes img by factor. The result never exceeds
// DebugSnapshotMaxSize on its longer side.
func ScaleSnapshot(img image.Image, factor float64) image.Image {
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*factor))
	h := max(1, int(float64(b.Dy())*factor))
	// 0 keeps the aspect ratio in imaging.Resize
	if w > config.DebugSnapshotMaxSize || h > config.DebugSnapshotMaxSize {
		if w >= h {
			w, h = config.DebugSnapshotMaxSize, 0
		} else {
			w, h = 0, config.DebugSnapshotMaxSize
		}
	}
	filter := imaging.Lanczos
	if factor > 1 {
		filter = imaging.NearestNeighbor
	}
	return imaging.Resize(img, w, h, filter)
}
