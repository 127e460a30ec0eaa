// internal/system/spawner.go
package system

import (
	"candy-defense/internal/component"
	"candy-defense/internal/defs"
	"candy-defense/internal/entity"
	"candy-defense/internal/event"
	"candy-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// EnemySpawner creates live enemies by archetype name.
type EnemySpawner interface {
	Spawn(defID string, at component.Position, path []component.Position) *component.Enemy
}

// EnemyFactory builds enemies from the definition library and adds them to the ECS.
type EnemyFactory struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
}

func NewEnemyFactory(ecs *entity.ECS, lib *defs.Library, eventDispatcher *event.Dispatcher) *EnemyFactory {
	return &EnemyFactory{ecs: ecs, lib: lib, eventDispatcher: eventDispatcher}
}

// Spawn returns nil for an unknown archetype; that is a configuration mismatch,
// not a reason to stop the game.
func (f *EnemyFactory) Spawn(defID string, at component.Position, path []component.Position) *component.Enemy {
	def, ok := f.lib.Enemies[defID]
	if !ok {
		logger.Log.WithField("def", defID).Warn("unknown enemy archetype, spawn skipped")
		return nil
	}

	own := make([]component.Position, len(path))
	copy(own, path)

	e := &component.Enemy{
		ID:            f.ecs.NewEntity(),
		DefID:         def.ID,
		MaxHealth:     def.Health,
		Health:        def.Health,
		Speed:         def.Speed,
		Reward:        def.Reward,
		ContactDamage: baseContactDamage(def.Health),
		Armor:         def.Armor,
		Path:          own,
		Active:        true,
	}
	e.Place(at)
	f.ecs.AddEnemy(e)

	logger.Log.WithFields(logrus.Fields{
		"enemy": e.ID,
		"def":   e.DefID,
		"x":     at.X,
		"y":     at.Y,
	}).Debug("enemy spawned")
	if f.eventDispatcher != nil {
		f.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemyData(e)})
	}
	return e
}
