// internal/entity/ecs.go
package entity

import (
	"candy-defense/internal/component"
	"candy-defense/internal/types"
)

// ECS owns every live object of one game. Collections keep insertion order:
// targeting and collision resolution depend on it.
type ECS struct {
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile
	Wave        *component.Wave
	Phase       component.GamePhase

	// Money и Health — ресурсы игрока.
	Money  int
	Health int
}

func NewECS() *ECS {
	return &ECS{
		NextID: 1,
		Wave:   &component.Wave{Accumulated: make(map[string]float64)},
		Phase:  component.PhasePlaying,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
}

func (ecs *ECS) AddTower(t *component.Tower) {
	ecs.Towers = append(ecs.Towers, t)
}

func (ecs *ECS) AddProjectile(p *component.Projectile) {
	ecs.Projectiles = append(ecs.Projectiles, p)
}

// Enemy returns nil once the enemy has been removed.
func (ecs *ECS) Enemy(id types.EntityID) *component.Enemy {
	if id == 0 {
		return nil
	}
	for _, e := range ecs.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (ecs *ECS) Tower(id types.EntityID) *component.Tower {
	for _, t := range ecs.Towers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// TowerAt finds the tower standing on a cell.
func (ecs *ECS) TowerAt(g component.GridPos) *component.Tower {
	for _, t := range ecs.Towers {
		if t.Grid == g {
			return t
		}
	}
	return nil
}

func (ecs *ECS) RemoveTower(id types.EntityID) bool {
	for i, t := range ecs.Towers {
		if t.ID == id {
			ecs.Towers = append(ecs.Towers[:i], ecs.Towers[i+1:]...)
			return true
		}
	}
	return false
}

// RetainEnemies drops every enemy for which keep returns false, preserving order.
func (ecs *ECS) RetainEnemies(keep func(*component.Enemy) bool) {
	n := 0
	for _, e := range ecs.Enemies {
		if keep(e) {
			ecs.Enemies[n] = e
			n++
		}
	}
	for i := n; i < len(ecs.Enemies); i++ {
		ecs.Enemies[i] = nil
	}
	ecs.Enemies = ecs.Enemies[:n]
}

// RetainActiveProjectiles compacts the projectile list in place.
func (ecs *ECS) RetainActiveProjectiles() []*component.Projectile {
	var expired []*component.Projectile
	n := 0
	for _, p := range ecs.Projectiles {
		if p.Active {
			ecs.Projectiles[n] = p
			n++
		} else {
			expired = append(expired, p)
		}
	}
	for i := n; i < len(ecs.Projectiles); i++ {
		ecs.Projectiles[i] = nil
	}
	ecs.Projectiles = ecs.Projectiles[:n]
	return expired
}

// Clear empties the world but keeps the id counter monotonic.
func (ecs *ECS) Clear() {
	ecs.Enemies = nil
	ecs.Towers = nil
	ecs.Projectiles = nil
	ecs.Wave = &component.Wave{Accumulated: make(map[string]float64)}
	ecs.Phase = component.PhasePlaying
}
