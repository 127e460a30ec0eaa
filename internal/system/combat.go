// internal/system/combat.go
package system

import (
	"errors"
	"fmt"

	"candy-defense/internal/component"
	"candy-defense/internal/config"
	"candy-defense/internal/defs"
	"candy-defense/internal/entity"
	"candy-defense/internal/event"
	"candy-defense/internal/types"
	"candy-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrMaxTierReached    = errors.New("max tier reached")
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update() {
	for _, t := range s.ecs.Towers {
		s.updateTower(t)
	}
}

func (s *CombatSystem) updateTower(t *component.Tower) {
	target := s.ecs.Enemy(t.TargetID)
	if target == nil || !target.Hittable() || !t.InRange(target.Grid) {
		t.State = component.TowerAcquiring
		target = s.acquire(t)
		t.TargetID = 0
		if target != nil {
			t.TargetID = target.ID
		}
	}

	if t.Cooldown > 0 {
		t.Cooldown--
		t.State = component.TowerCoolingDown
		return
	}
	if target == nil {
		t.State = component.TowerIdle
		return
	}
	t.State = component.TowerFiring
	s.fire(t, target)
	t.Cooldown = t.Stats.AttackDelay
}

// acquire returns the first hittable enemy in range, in insertion order.
func (s *CombatSystem) acquire(t *component.Tower) *component.Enemy {
	for _, e := range s.ecs.Enemies {
		if e.Hittable() && t.InRange(e.Grid) {
			return e
		}
	}
	return nil
}

func (s *CombatSystem) fire(t *component.Tower, target *component.Enemy) {
	// A tower keeps at most one channel alive; it follows the current target.
	if t.Projectile == defs.ProjectileChannel {
		if ch := s.activeChannel(t); ch != nil {
			ch.TargetID = target.ID
			SetChannelReach(ch, t.Stats)
			return
		}
	}

	p := NewProjectile(s.ecs.NewEntity(), t, target)
	s.ecs.AddProjectile(p)

	logger.Log.WithFields(logrus.Fields{
		"tower":      t.ID,
		"target":     target.ID,
		"projectile": p.ID,
		"kind":       p.Kind,
	}).Debug("tower fired")
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileFired,
			Data: event.ProjectileData{ID: p.ID, TowerID: t.ID, Kind: string(p.Kind)},
		})
	}
}

func (s *CombatSystem) activeChannel(t *component.Tower) *component.Projectile {
	for _, p := range s.ecs.Projectiles {
		if p.Active && p.TowerID == t.ID && p.Kind == defs.ProjectileChannel {
			return p
		}
	}
	return nil
}

// NewTower builds a tier-0 tower on a grid cell.
func NewTower(id types.EntityID, def defs.TowerDefinition, g component.GridPos) *component.Tower {
	t := &component.Tower{
		ID:         id,
		DefID:      def.ID,
		Grid:       g,
		Pos:        cellTopLeft(g),
		Projectile: def.Projectile,
		DamageType: def.DamageType,
		Tiers:      def.Tiers,
		Tier:       0,
		Stats:      def.Tiers[0],
		Value:      def.Tiers[0].Cost,
	}
	return t
}

// UpgradeTower moves t to its next tier. It returns the cost for the caller
// to deduct; on error nothing changes.
func UpgradeTower(t *component.Tower, available int) (int, error) {
	if t.Tier >= t.MaxTier() {
		return 0, fmt.Errorf("tower %d at tier %d: %w", t.ID, t.Tier, ErrMaxTierReached)
	}
	next := t.Tiers[t.Tier+1]
	if available < next.Cost {
		return 0, fmt.Errorf("upgrade costs %d, have %d: %w", next.Cost, available, ErrInsufficientFunds)
	}
	t.Tier++
	t.Stats = next
	t.Value += next.Cost
	return next.Cost, nil
}

func cellTopLeft(g component.GridPos) component.Position {
	return component.Position{
		X: float64(g.X * config.GridCellSize),
		Y: float64(g.Y*config.GridCellSize + config.TopbarHeight),
	}
}
