// internal/system/projectile.go
package system

import (
	"math"

	"candy-defense/internal/component"
	"candy-defense/internal/config"
	"candy-defense/internal/defs"
	"candy-defense/internal/entity"
	"candy-defense/internal/event"
	"candy-defense/internal/types"
)

// fieldRect is the playable area; ballistic projectiles die outside it.
var fieldRect = component.Rect{
	X: config.FieldLeft,
	Y: config.FieldTop,
	W: config.FieldRight - config.FieldLeft,
	H: config.FieldBottom - config.FieldTop,
}

// ProjectileSystem перемещает снаряды и проверяет их границы.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update() {
	for _, p := range s.ecs.Projectiles {
		if !p.Active {
			continue
		}
		if p.Kind == defs.ProjectileChannel {
			s.updateChannel(p)
			continue
		}
		p.Pos = p.Pos.Add(p.Vel)
		if !fieldRect.Contains(p.Pos) {
			p.Active = false
		}
	}
}

// updateChannel re-anchors the beam toward the target, at most BeamLength from
// the tower, and ends it once the target is gone or outside the extended range.
func (s *ProjectileSystem) updateChannel(p *component.Projectile) {
	target := s.ecs.Enemy(p.TargetID)
	if target == nil || !target.Hittable() {
		p.Active = false
		return
	}
	if float64(p.Origin.Chebyshev(target.Grid)) > p.ReachCells {
		p.Active = false
		return
	}
	p.Pos = channelAnchor(p.OriginPos, target.Center, p.BeamLength)
}

// NewProjectile creates the shot a tower fires at target.
func NewProjectile(id types.EntityID, t *component.Tower, target *component.Enemy) *component.Projectile {
	origin := t.Center()
	p := &component.Projectile{
		ID:         id,
		TowerID:    t.ID,
		TargetID:   target.ID,
		Kind:       t.Projectile,
		DamageType: t.DamageType,
		Damage:     t.Stats.Damage,
		Speed:      t.Stats.ProjectileSpeed,
		Pos:        origin,
		Width:      config.ProjectileSize,
		Height:     config.ProjectileSize,
		Active:     true,
	}

	switch t.Projectile {
	case defs.ProjectileChannel:
		p.Width, p.Height = config.ChannelSize, config.ChannelSize
		p.Origin = t.Grid
		p.OriginPos = origin
		SetChannelReach(p, t.Stats)
		p.Pos = channelAnchor(origin, target.Center, p.BeamLength)
		return p
	case defs.ProjectileSplash:
		p.SplashRadius = t.Stats.SplashRadius
	case defs.ProjectilePiercing:
		p.PierceLeft = t.Stats.Pierce
		p.HitSet = make(map[types.EntityID]struct{})
	}

	aim := PredictIntercept(origin, target.Center, target.Velocity(), p.Speed)
	p.Vel = velocityToward(origin, aim, p.Speed)
	return p
}

// PredictIntercept refines a meeting point with a fixed number of
// fixed-point iterations: time of flight from the distance, target moved by
// that time, distance recomputed.
func PredictIntercept(origin, target, velocity component.Position, speed float64) component.Position {
	if speed <= 0 {
		return target
	}
	t := distance(origin, target) / speed
	predicted := target
	for i := 0; i < config.AimIterations; i++ {
		predicted = target.Add(velocity.Scale(t))
		t = distance(origin, predicted) / speed
	}
	return predicted
}

func velocityToward(from, to component.Position, speed float64) component.Position {
	d := to.Sub(from)
	mag := math.Hypot(d.X, d.Y)
	if mag == 0 {
		return component.Position{}
	}
	return d.Scale(speed / mag)
}

// SetChannelReach copies the range-derived limits of a tier onto a channel.
func SetChannelReach(p *component.Projectile, stats defs.TierStats) {
	p.Damage = stats.Damage
	p.ReachCells = float64(stats.Range) * (1 + config.ChannelRangeBonus)
	p.BeamLength = float64(stats.Range * config.GridCellSize)
}

// channelAnchor sits on the target when it is within length of origin,
// otherwise length pixels along the line toward it.
func channelAnchor(origin, target component.Position, length float64) component.Position {
	d := target.Sub(origin)
	mag := math.Hypot(d.X, d.Y)
	if mag == 0 || mag <= length {
		return target
	}
	return origin.Add(d.Scale(length / mag))
}

func distance(a, b component.Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
