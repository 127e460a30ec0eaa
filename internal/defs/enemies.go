// internal/defs/enemies.go
package defs

// FireRule says how an archetype reacts to DamageFire.
type FireRule string

const (
	FireNeutral FireRule = ""
	// FireResist divides incoming fire damage before armor.
	FireResist FireRule = "resist"
	// FireImmune zeroes incoming fire damage.
	FireImmune FireRule = "immune"
	// FireMelt triggers the one-way altered state.
	FireMelt FireRule = "melt"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health float64 `json:"health"`
	// Speed is the number of one-pixel steps taken per tick.
	Speed  int     `json:"speed"`
	Reward int     `json:"reward"`
	Armor  float64 `json:"armor"`

	Fire FireRule `json:"fire,omitempty"`
	// BreakThreshold forces the altered state once health would drop to or
	// below this fraction of max health. Zero disables it.
	BreakThreshold float64 `json:"break_threshold,omitempty"`
	AlteredSpeed   int     `json:"altered_speed,omitempty"`
	AlteredArmor   float64 `json:"altered_armor,omitempty"`

	// ScalingDamage recomputes contact damage from remaining health after every hit.
	ScalingDamage bool `json:"scaling_damage,omitempty"`
	// SplitInto names the archetypes spawned where this enemy dies.
	SplitInto []string `json:"split_into,omitempty"`

	Sprite string `json:"sprite"`
}

// CanAlter reports whether the archetype has an altered (melted/broken) state.
func (d EnemyDefinition) CanAlter() bool {
	return d.Fire == FireMelt || d.BreakThreshold > 0
}
