// internal/system/damage.go
package system

import (
	"math"

	"candy-defense/internal/component"
	"candy-defense/internal/config"
	"candy-defense/internal/defs"
	"candy-defense/internal/event"
	"candy-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SpawnRequest asks for an enemy at an explicit position with an explicit path.
type SpawnRequest struct {
	DefID string
	Pos   component.Position
	Path  []component.Position
}

// Behaviour is the rule set of one enemy archetype. Every archetype shares the
// same pipeline; the definition decides which steps do anything.
type Behaviour struct {
	def defs.EnemyDefinition
}

func NewBehaviour(def defs.EnemyDefinition) *Behaviour {
	return &Behaviour{def: def}
}

// TakeDamage is the only place enemy health changes. It returns the amount
// actually subtracted and whether this hit put the enemy into its altered state.
//
// Order: elemental rule, armor (floored at MinDamage), health threshold, then
// the subtraction with contact damage rescaling.
func (b *Behaviour) TakeDamage(e *component.Enemy, amount float64, dt defs.DamageType) (float64, bool) {
	altered := false

	if dt == defs.DamageFire {
		switch b.def.Fire {
		case defs.FireResist:
			amount /= config.FireResistDivisor
		case defs.FireImmune:
			return 0, false
		case defs.FireMelt:
			altered = b.alter(e)
		}
	}

	if e.Armor > 0 {
		amount -= e.Armor
		if amount < config.MinDamage {
			amount = config.MinDamage
		}
	}

	if b.def.BreakThreshold > 0 && !e.Altered {
		if e.Health-amount <= b.def.BreakThreshold*e.MaxHealth {
			altered = b.alter(e) || altered
		}
	}

	e.Health -= amount
	if !e.IsDead() && b.def.ScalingDamage {
		e.ContactDamage = scaledContactDamage(e.Health, e.MaxHealth)
	}
	return amount, altered
}

// alter switches to the melted/broken stat block. It happens at most once.
func (b *Behaviour) alter(e *component.Enemy) bool {
	if e.Altered || !b.def.CanAlter() {
		return false
	}
	e.Altered = true
	e.Speed = b.def.AlteredSpeed
	e.Armor = b.def.AlteredArmor
	return true
}

// OnDeath returns the enemies to create where e died. Empty for most archetypes.
func (b *Behaviour) OnDeath(e *component.Enemy) []SpawnRequest {
	if len(b.def.SplitInto) == 0 {
		return nil
	}
	out := make([]SpawnRequest, 0, len(b.def.SplitInto))
	for _, id := range b.def.SplitInto {
		path := make([]component.Position, len(e.Path))
		copy(path, e.Path)
		out = append(out, SpawnRequest{DefID: id, Pos: e.Pos, Path: path})
	}
	return out
}

// baseContactDamage is what a fresh enemy deals on arrival.
func baseContactDamage(maxHealth float64) int {
	return int(math.Floor(maxHealth / 2))
}

func scaledContactDamage(health, maxHealth float64) int {
	return int(math.Floor(health/2)) + int(math.Floor(maxHealth/5))
}

// DamageSystem maps archetypes to their behaviour and publishes damage events.
type DamageSystem struct {
	behaviours      map[string]*Behaviour
	eventDispatcher *event.Dispatcher
}

func NewDamageSystem(lib *defs.Library, eventDispatcher *event.Dispatcher) *DamageSystem {
	s := &DamageSystem{
		behaviours:      make(map[string]*Behaviour, len(lib.Enemies)),
		eventDispatcher: eventDispatcher,
	}
	for id, def := range lib.Enemies {
		s.behaviours[id] = NewBehaviour(def)
	}
	return s
}

// Behaviour returns nil for unknown archetypes.
func (s *DamageSystem) Behaviour(defID string) *Behaviour {
	return s.behaviours[defID]
}

// Apply runs the damage pipeline for e. Dead or inactive enemies are ignored.
func (s *DamageSystem) Apply(e *component.Enemy, amount float64, dt defs.DamageType, projectile *component.Projectile) float64 {
	if !e.Hittable() {
		return 0
	}
	b := s.behaviours[e.DefID]
	if b == nil {
		logger.Log.WithField("def", e.DefID).Warn("no behaviour for enemy archetype")
		return 0
	}

	dealt, altered := b.TakeDamage(e, amount, dt)
	if altered {
		logger.Log.WithFields(logrus.Fields{"enemy": e.ID, "def": e.DefID}).Debug("enemy altered")
		s.dispatch(event.Event{Type: event.EnemyAltered, Data: enemyData(e)})
	}

	data := event.DamageData{
		EnemyID:    e.ID,
		Amount:     dealt,
		DamageType: string(dt),
		Killed:     e.IsDead(),
	}
	if projectile != nil {
		data.ProjectileID = projectile.ID
	}
	s.dispatch(event.Event{Type: event.DamageDealt, Data: data})
	return dealt
}

// OnDeath asks the archetype what to spawn where e died.
func (s *DamageSystem) OnDeath(e *component.Enemy) []SpawnRequest {
	b := s.behaviours[e.DefID]
	if b == nil {
		return nil
	}
	return b.OnDeath(e)
}

func (s *DamageSystem) dispatch(ev event.Event) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(ev)
	}
}

func enemyData(e *component.Enemy) event.EnemyData {
	return event.EnemyData{ID: e.ID, DefID: e.DefID, X: e.Pos.X, Y: e.Pos.Y}
}
