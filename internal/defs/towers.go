// internal/defs/towers.go
package defs

// ProjectileKind selects the flight and hit behaviour of a tower's shots.
type ProjectileKind string

const (
	ProjectileDirect   ProjectileKind = "direct"
	ProjectileSplash   ProjectileKind = "splash"
	ProjectilePiercing ProjectileKind = "piercing"
	ProjectileChannel  ProjectileKind = "channel"
)

// TierStats is a complete stat block for one upgrade level.
type TierStats struct {
	Range           int     `json:"range"`        // grid cells, Chebyshev
	AttackDelay     int     `json:"attack_delay"` // ticks
	ProjectileSpeed float64 `json:"projectile_speed"`
	Damage          float64 `json:"damage"`
	Cost            int     `json:"cost"`
	SplashRadius    float64 `json:"splash_radius,omitempty"` // cells
	Pierce          int     `json:"pierce,omitempty"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Projectile ProjectileKind `json:"projectile"`
	DamageType DamageType     `json:"damage_type"`
	Tiers      []TierStats    `json:"tiers"`
	Sprite     string         `json:"sprite"`
}

// MaxTier is the index of the last defined tier.
func (d TowerDefinition) MaxTier() int {
	return len(d.Tiers) - 1
}

// PlacementCost is the price of a tier-0 tower.
func (d TowerDefinition) PlacementCost() int {
	if len(d.Tiers) == 0 {
		return 0
	}
	return d.Tiers[0].Cost
}
