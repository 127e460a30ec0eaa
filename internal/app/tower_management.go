// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"candy-defense/internal/component"
	"candy-defense/internal/config"
	"candy-defense/internal/defs"
	"candy-defense/internal/event"
	"candy-defense/internal/system"
	"candy-defense/internal/types"
	"candy-defense/pkg/gridmap"
	"candy-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPlacement  = errors.New("invalid placement")
	ErrInsufficientFunds = system.ErrInsufficientFunds
	ErrUnknownTower      = errors.New("unknown tower")
)

// PlaceTower builds a tier-0 tower of defID on an empty cell.
func (g *Game) PlaceTower(defID string, gx, gy int) (*component.Tower, error) {
	def, ok := g.Lib.Towers[defID]
	if !ok {
		return nil, fmt.Errorf("tower %q: %w", defID, ErrUnknownTower)
	}
	if err := g.canPlaceTower(def, gx, gy); err != nil {
		return nil, err
	}

	g.Map.Occupy(gx, gy)
	cost := def.PlacementCost()
	t := system.NewTower(g.ECS.NewEntity(), def, component.GridPos{X: gx, Y: gy})
	g.ECS.AddTower(t)
	g.ECS.Money -= cost

	logger.Log.WithFields(logrus.Fields{
		"tower": t.ID,
		"def":   defID,
		"x":     gx,
		"y":     gy,
		"money": g.ECS.Money,
	}).Debug("tower placed")
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: towerData(t, cost)})
	g.publish()
	return t, nil
}

func (g *Game) canPlaceTower(def defs.TowerDefinition, gx, gy int) error {
	if state := g.Map.TileState(gx, gy); state != gridmap.TileEmpty {
		return fmt.Errorf("cell (%d,%d) is %s: %w", gx, gy, state, ErrInvalidPlacement)
	}
	if cost := def.PlacementCost(); g.ECS.Money < cost {
		return fmt.Errorf("%s costs %d, have %d: %w", def.ID, cost, g.ECS.Money, ErrInsufficientFunds)
	}
	return nil
}

// UpgradeTower advances a tower one tier and charges for it.
func (g *Game) UpgradeTower(id types.EntityID) (int, error) {
	t := g.ECS.Tower(id)
	if t == nil {
		return 0, fmt.Errorf("tower %d: %w", id, ErrUnknownTower)
	}
	cost, err := system.UpgradeTower(t, g.ECS.Money)
	if err != nil {
		return 0, err
	}
	g.ECS.Money -= cost

	logger.Log.WithFields(logrus.Fields{"tower": t.ID, "tier": t.Tier, "cost": cost}).Debug("tower upgraded")
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: towerData(t, cost)})
	g.publish()
	return cost, nil
}

// SellTower removes a tower, refunds half its value and frees the cell.
func (g *Game) SellTower(id types.EntityID) (int, error) {
	t := g.ECS.Tower(id)
	if t == nil {
		return 0, fmt.Errorf("tower %d: %w", id, ErrUnknownTower)
	}
	refund := t.Value / config.SellRefundDivisor

	for _, p := range g.ECS.Projectiles {
		if p.TowerID == t.ID && p.Kind == defs.ProjectileChannel {
			p.Active = false
		}
	}
	g.ECS.RemoveTower(t.ID)
	g.Map.Free(t.Grid.X, t.Grid.Y)
	g.ECS.Money += refund

	logger.Log.WithFields(logrus.Fields{"tower": t.ID, "refund": refund}).Debug("tower sold")
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: towerData(t, refund)})
	g.publish()
	return refund, nil
}

// TowerAt returns the tower on a cell, or nil.
func (g *Game) TowerAt(gx, gy int) *component.Tower {
	return g.ECS.TowerAt(component.GridPos{X: gx, Y: gy})
}

func towerData(t *component.Tower, money int) event.TowerData {
	return event.TowerData{ID: t.ID, DefID: t.DefID, X: t.Grid.X, Y: t.Grid.Y, Tier: t.Tier, Money: money}
}
