// internal/component/projectile.go
package component

import (
	"candy-defense/internal/defs"
	"candy-defense/internal/types"
)

// Projectile представляет летящий снаряд. One struct covers all variants;
// Kind decides which of the optional fields matter.
type Projectile struct {
	ID       types.EntityID
	TowerID  types.EntityID
	TargetID types.EntityID // aim only, no homing

	Kind       defs.ProjectileKind
	DamageType defs.DamageType
	Damage     float64
	Speed      float64

	Pos           Position // centre
	Vel           Position
	Width, Height float64
	Active        bool

	SplashRadius float64 // cells, splash only
	PierceLeft   int     // piercing only
	// HitSet keeps a piercing projectile from striking the same enemy twice.
	HitSet map[types.EntityID]struct{}

	// Channel projectiles stay tied to the tower that spawned them.
	Origin     GridPos
	OriginPos  Position
	ReachCells float64
	BeamLength float64 // pixels from OriginPos
}

func (p *Projectile) Hitbox() Rect {
	return RectAround(p.Pos, p.Width, p.Height)
}

// AlreadyHit reports whether id is in the hit set.
func (p *Projectile) AlreadyHit(id types.EntityID) bool {
	_, ok := p.HitSet[id]
	return ok
}

func (p *Projectile) MarkHit(id types.EntityID) {
	if p.HitSet == nil {
		p.HitSet = make(map[types.EntityID]struct{})
	}
	p.HitSet[id] = struct{}{}
}
