package system

import (
	"testing"

	"candy-defense/internal/component"
	"candy-defense/internal/defs"
	"candy-defense/internal/entity"
	"candy-defense/internal/event"
	"candy-defense/pkg/logger"
)

func init() {
	logger.Silence()
}

func testLibrary(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	return lib
}

// world bundles the systems a test usually needs.
type world struct {
	ecs         *entity.ECS
	lib         *defs.Library
	events      *event.Dispatcher
	factory     *EnemyFactory
	damage      *DamageSystem
	combat      *CombatSystem
	projectiles *ProjectileSystem
	collision   *CollisionSystem
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs:    entity.NewECS(),
		lib:    testLibrary(t),
		events: event.NewDispatcher(),
	}
	w.factory = NewEnemyFactory(w.ecs, w.lib, w.events)
	w.damage = NewDamageSystem(w.lib, w.events)
	w.combat = NewCombatSystem(w.ecs, w.events)
	w.projectiles = NewProjectileSystem(w.ecs, w.events)
	w.collision = NewCollisionSystem(w.ecs, w.damage)
	return w
}

func (w *world) spawn(t *testing.T, defID string, x, y float64, path ...component.Position) *component.Enemy {
	t.Helper()
	e := w.factory.Spawn(defID, component.Position{X: x, Y: y}, path)
	if e == nil {
		t.Fatalf("spawn %q returned nil", defID)
	}
	return e
}

func (w *world) tower(t *testing.T, defID string, gx, gy int) *component.Tower {
	t.Helper()
	def, ok := w.lib.Towers[defID]
	if !ok {
		t.Fatalf("unknown tower %q", defID)
	}
	tw := NewTower(w.ecs.NewEntity(), def, component.GridPos{X: gx, Y: gy})
	w.ecs.AddTower(tw)
	return tw
}

// recorder collects dispatched events.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(typ event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
