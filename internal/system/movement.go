// internal/system/movement.go
package system

import (
	"candy-defense/internal/component"
	"candy-defense/internal/entity"
	"candy-defense/internal/utils"
)

// MovementSystem двигает врагов по их оставшемуся пути.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update() {
	for _, e := range s.ecs.Enemies {
		if !e.Hittable() {
			continue
		}
		Advance(e)
	}
}

// Advance runs one tick of movement: up to Speed one-pixel sub-steps toward
// the head waypoint, each axis stepping independently. Reaching the head pops
// it and ends the tick's movement.
func Advance(e *component.Enemy) {
	e.PrevCenter = e.Center
	for i := 0; i < e.Speed; i++ {
		if e.HasReachedEnd() {
			return
		}
		head := e.Path[0]
		next := component.Position{
			X: e.Pos.X + unitStep(e.Pos.X, head.X),
			Y: e.Pos.Y + unitStep(e.Pos.Y, head.Y),
		}
		e.StepTo(next)
		if next == head {
			e.Path = e.Path[1:]
			break
		}
	}
}

// unitStep moves one pixel toward target, landing on it when closer than that.
func unitStep(from, to float64) float64 {
	return utils.Clamp(to-from, -1, 1)
}
