// component/tower.go
package component

import (
	"candy-defense/internal/config"
	"candy-defense/internal/defs"
	"candy-defense/internal/types"
	"candy-defense/internal/utils"
)

// TowerState is re-evaluated every tick by the combat system.
type TowerState int

const (
	TowerIdle TowerState = iota
	TowerAcquiring
	TowerCoolingDown
	TowerFiring
)

func (s TowerState) String() string {
	switch s {
	case TowerAcquiring:
		return "acquiring"
	case TowerCoolingDown:
		return "cooling-down"
	case TowerFiring:
		return "firing"
	default:
		return "idle"
	}
}

type Tower struct {
	ID         types.EntityID
	DefID      string
	Grid       GridPos
	Pos        Position // top-left of the cell
	Projectile defs.ProjectileKind
	DamageType defs.DamageType

	// Tiers is the definition's table; Stats is always Tiers[Tier].
	Tiers []defs.TierStats
	Tier  int
	Stats defs.TierStats

	Cooldown int
	// TargetID is a lookup key into the live enemies, never an owning reference.
	TargetID types.EntityID
	// Value is everything spent on placement and upgrades.
	Value int
	State TowerState
}

func (t *Tower) Center() Position {
	return Position{X: t.Pos.X + config.GridCellSize/2, Y: t.Pos.Y + config.GridCellSize/2}
}

func (t *Tower) MaxTier() int {
	return len(t.Tiers) - 1
}

// InRange uses the Chebyshev metric on grid cells: a square footprint.
func (t *Tower) InRange(g GridPos) bool {
	return t.Grid.Chebyshev(g) <= t.Stats.Range
}

// RangeRect is the square range footprint in pixels, clamped to the field.
func (t *Tower) RangeRect() Rect {
	r := float64(t.Stats.Range * config.GridCellSize)
	left := t.Pos.X - r
	top := t.Pos.Y - r
	size := float64((t.Stats.Range*2 + 1) * config.GridCellSize)

	right := utils.Clamp(left+size, config.FieldLeft, config.FieldRight)
	bottom := utils.Clamp(top+size, config.FieldTop, config.FieldBottom)
	left = utils.Clamp(left, config.FieldLeft, config.FieldRight)
	top = utils.Clamp(top, config.FieldTop, config.FieldBottom)
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}
