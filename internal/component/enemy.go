// internal/component/enemy.go
package component

import (
	"candy-defense/internal/config"
	"candy-defense/internal/types"
	"candy-defense/internal/utils"
)

// Enemy is a live enemy instance derived from an EnemyDefinition.
type Enemy struct {
	ID    types.EntityID
	DefID string

	MaxHealth float64
	Health    float64
	Speed     int // one-pixel sub-steps per tick
	Reward    int
	// ContactDamage is taken from the player when the path runs out.
	ContactDamage int
	Armor         float64
	// Altered is the one-way melted/broken state.
	Altered bool

	// Path is consumed from the front; waypoints are never re-added.
	Path []Position

	Pos        Position // top-left of the hitbox
	Center     Position
	PrevCenter Position // centre at the start of the last movement tick
	Grid       GridPos

	Active bool
}

// Place moves the enemy without recording movement history.
func (e *Enemy) Place(p Position) {
	e.Pos = p
	e.Center = e.Hitbox().Center()
	e.PrevCenter = e.Center
	e.Grid = GridOf(e.Center)
}

// StepTo records a one-step move within the current tick.
func (e *Enemy) StepTo(p Position) {
	e.Pos = p
	e.Center = e.Hitbox().Center()
	e.Grid = GridOf(e.Center)
}

func (e *Enemy) Hitbox() Rect {
	return Rect{X: e.Pos.X, Y: e.Pos.Y, W: config.EnemySize, H: config.EnemySize}
}

// Velocity is the one-tick backward difference of the centre.
func (e *Enemy) Velocity() Position {
	return e.Center.Sub(e.PrevCenter)
}

func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}

func (e *Enemy) HasReachedEnd() bool {
	return len(e.Path) == 0
}

// Hittable is true while the enemy can still be targeted or damaged.
func (e *Enemy) Hittable() bool {
	return e.Active && !e.IsDead()
}

// HealthFraction is clamped to [0,1] for drawing.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return utils.Clamp(e.Health/e.MaxHealth, 0, 1)
}
