// pkg/render/color.go
package render

import (
	"image/color"

	"candy-defense/internal/config"
	"candy-defense/pkg/gridmap"
)

// FieldColors holds the colors needed to render the static map background.
type FieldColors struct {
	BackgroundColor color.RGBA
	EmptyColor      color.RGBA
	PathColor       color.RGBA
	StartColor      color.RGBA
	EndColor        color.RGBA
	RangeColor      color.RGBA
	StrokeWidth     float32
}

// DefaultFieldColors returns the palette shared by the window and the PNG snapshot.
func DefaultFieldColors() FieldColors {
	return FieldColors{
		BackgroundColor: config.FieldColor,
		EmptyColor:      config.EmptyTileColor,
		PathColor:       config.PathTileColor,
		StartColor:      config.StartTileColor,
		EndColor:        config.EndTileColor,
		RangeColor:      config.RangeColor,
		StrokeWidth:     2,
	}
}

// Tile returns the fill color of a grid code. Tower cells are drawn as empty
// ground, the tower itself goes on top.
func (c FieldColors) Tile(code int) color.RGBA {
	switch code {
	case gridmap.CodePath:
		return c.PathColor
	case gridmap.CodeStart:
		return c.StartColor
	case gridmap.CodeEnd:
		return c.EndColor
	default:
		return c.EmptyColor
	}
}

var enemyColors = map[string]color.RGBA{
	"marshmallow":     {250, 245, 240, 255},
	"gummy":           {230, 40, 120, 255},
	"cracker":         {210, 160, 90, 255},
	"dark_chocolate":  {70, 40, 25, 255},
	"white_chocolate": {245, 230, 200, 255},
	"smore":           {160, 100, 60, 255},
}

var towerColors = map[string]color.RGBA{
	"turret":       {90, 90, 110, 255},
	"bomb":         {40, 40, 40, 255},
	"saw":          {170, 170, 180, 255},
	"laser":        {60, 160, 255, 255},
	"flamethrower": {255, 120, 30, 255},
}

var projectileColors = map[string]color.RGBA{
	"direct":   {20, 20, 20, 255},
	"splash":   {60, 60, 60, 255},
	"piercing": {190, 190, 200, 255},
	"channel":  {255, 110, 20, 160},
}

var fallback = color.RGBA{255, 0, 255, 255}

// EnemyColor returns the body color of an enemy archetype.
func EnemyColor(defID string, altered bool) color.RGBA {
	c, ok := enemyColors[defID]
	if !ok {
		return fallback
	}
	if altered {
		return DarkenColor(c)
	}
	return c
}

func TowerColor(defID string) color.RGBA {
	if c, ok := towerColors[defID]; ok {
		return c
	}
	return fallback
}

func ProjectileColor(kind string) color.RGBA {
	if c, ok := projectileColors[kind]; ok {
		return c
	}
	return fallback
}

// HealthColor fades from green to red as frac goes from 1 to 0.
func HealthColor(frac float64) color.RGBA {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return color.RGBA{
		R: uint8(255 * (1 - frac)),
		G: uint8(200 * frac),
		B: 40,
		A: 255,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
