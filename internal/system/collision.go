// internal/system/collision.go
package system

import (
	"math"

	"candy-defense/internal/component"
	"candy-defense/internal/config"
	"candy-defense/internal/defs"
	"candy-defense/internal/entity"
)

// CollisionSystem matches active projectiles against live enemies and applies
// damage. It never removes anything; the game compacts after the pass.
type CollisionSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewCollisionSystem(ecs *entity.ECS, damage *DamageSystem) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, damage: damage}
}

func (s *CollisionSystem) Update() {
	for _, p := range s.ecs.Projectiles {
		if !p.Active {
			continue
		}
		s.resolve(p)
	}
}

func (s *CollisionSystem) resolve(p *component.Projectile) {
	box := p.Hitbox()
	for _, e := range s.ecs.Enemies {
		if !p.Active {
			return
		}
		if !e.Hittable() || !box.Overlaps(e.Hitbox()) {
			continue
		}

		switch p.Kind {
		case defs.ProjectileDirect:
			s.damage.Apply(e, p.Damage, p.DamageType, p)
			p.Active = false
		case defs.ProjectileSplash:
			s.damage.Apply(e, p.Damage, p.DamageType, p)
			// measured from e.Pos, not p.Pos: an edge hit splashes around the enemy
			s.splash(p, e)
			p.Active = false
		case defs.ProjectilePiercing:
			if p.AlreadyHit(e.ID) {
				continue
			}
			s.damage.Apply(e, p.Damage, p.DamageType, p)
			p.MarkHit(e.ID)
			p.PierceLeft--
			if p.PierceLeft <= 0 {
				p.Active = false
			}
		case defs.ProjectileChannel:
			s.damage.Apply(e, p.Damage, p.DamageType, p)
		}
	}
}

// splash hits every other enemy within the radius on either axis. The test is
// an OR of per-axis distances between top-left positions, not a circle.
func (s *CollisionSystem) splash(p *component.Projectile, struck *component.Enemy) {
	reach := p.SplashRadius * config.GridCellSize
	amount := p.Damage * config.SplashFactor
	for _, e := range s.ecs.Enemies {
		if e == struck || !e.Hittable() {
			continue
		}
		if InSplash(struck.Pos, e.Pos, reach) {
			s.damage.Apply(e, amount, p.DamageType, p)
		}
	}
}

// InSplash reports whether pos is within reach pixels of centre on x or on y.
func InSplash(centre, pos component.Position, reach float64) bool {
	return math.Abs(pos.X-centre.X) <= reach || math.Abs(pos.Y-centre.Y) <= reach
}
