// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"candy-defense/internal/component"
	"candy-defense/internal/defs"
	"candy-defense/internal/entity"
	"candy-defense/internal/event"
	"candy-defense/internal/system"
	"candy-defense/internal/utils"
	"candy-defense/pkg/gridmap"
	"candy-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// SnapshotSink receives a read-only copy of the world after every tick.
type SnapshotSink interface {
	Publish(Snapshot)
}

// Game holds the main game state and logic. It is driven by an external
// clock: one Tick per frame, nothing runs in the background.
type Game struct {
	Map     *gridmap.Map
	Lib     *defs.Library
	Profile defs.DifficultyProfile
	ECS     *entity.ECS

	EnemyFactory     *system.EnemyFactory
	MovementSystem   *system.MovementSystem
	DamageSystem     *system.DamageSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	CollisionSystem  *system.CollisionSystem
	WaveSystem       *system.WaveSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	TickCount uint64
	sink      SnapshotSink
}

// NewGame initializes a new game instance.
func NewGame(m *gridmap.Map, lib *defs.Library, difficulty string, seed int64) (*Game, error) {
	if m == nil || lib == nil {
		return nil, errors.New("app: map and library are required")
	}
	profile, ok := lib.Difficulty(difficulty)
	if !ok {
		return nil, fmt.Errorf("difficulty %q: %w", difficulty, ErrUnknownDifficulty)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Map:             m,
		Lib:             lib,
		Profile:         profile,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
	}
	g.EnemyFactory = system.NewEnemyFactory(ecs, lib, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.DamageSystem = system.NewDamageSystem(lib, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.DamageSystem)
	g.WaveSystem = system.NewWaveSystem(ecs, profile, g.Rng, g.EnemyFactory, eventDispatcher,
		toPosition(m.StartPosition()), toPath(m.Path()))

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveEnded, listener)

	g.resetResources()
	logger.Log.WithFields(logrus.Fields{
		"map":        m.Name,
		"difficulty": profile.Name,
		"seed":       g.Rng.Seed(),
	}).Info("game created")
	return g, nil
}

// SetSink attaches the snapshot consumer; nil detaches it.
func (g *Game) SetSink(sink SnapshotSink) {
	g.sink = sink
	g.publish()
}

// GameEventListener reacts to events that change the game phase.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		l.game.checkVictory()
	}
}

// Tick advances the simulation by one step. Phase order is fixed:
// waves, enemies, towers, projectiles and collisions, then removals.
func (g *Game) Tick() {
	if g.ECS.Phase != component.PhasePlaying {
		return
	}
	g.WaveSystem.Update()
	g.MovementSystem.Update()
	g.CombatSystem.Update()
	g.ProjectileSystem.Update()
	g.CollisionSystem.Update()
	g.cleanupFinishedEntities()
	g.checkDefeat()

	g.TickCount++
	g.publish()
}

// cleanupFinishedEntities runs after the full resolution pass. A dead enemy
// pays its reward even if it also reached the end on the same tick.
func (g *Game) cleanupFinishedEntities() {
	var killed, arrived []*component.Enemy
	g.ECS.RetainEnemies(func(e *component.Enemy) bool {
		switch {
		case e.IsDead():
			killed = append(killed, e)
		case e.HasReachedEnd():
			arrived = append(arrived, e)
		case !e.Active:
		default:
			return true
		}
		e.Active = false
		return false
	})

	var splits []system.SpawnRequest
	for _, e := range killed {
		g.ECS.Money += e.Reward
		splits = append(splits, g.DamageSystem.OnDeath(e)...)
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{
			ID: e.ID, DefID: e.DefID, X: e.Pos.X, Y: e.Pos.Y, Reward: e.Reward,
		}})
	}
	for _, e := range arrived {
		g.ECS.Health -= e.ContactDamage
		logger.Log.WithFields(logrus.Fields{
			"enemy":  e.ID,
			"def":    e.DefID,
			"damage": e.ContactDamage,
			"health": g.ECS.Health,
		}).Debug("enemy reached the end")
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyData{
			ID: e.ID, DefID: e.DefID, X: e.Pos.X, Y: e.Pos.Y, Damage: e.ContactDamage,
		}})
	}
	for _, r := range splits {
		g.WaveSystem.SpawnEnemy(r.DefID, &system.SpawnOverride{Pos: r.Pos, Path: r.Path})
	}

	for _, p := range g.ECS.RetainActiveProjectiles() {
		g.EventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired, Data: event.ProjectileData{
			ID: p.ID, TowerID: p.TowerID, Kind: string(p.Kind),
		}})
	}
}

func (g *Game) checkDefeat() {
	if g.ECS.Health > 0 || g.ECS.Phase != component.PhasePlaying {
		return
	}
	g.ECS.Phase = component.PhaseLost
	logger.Log.WithField("wave", g.ECS.Wave.Number).Info("game lost")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameLost, Data: event.WaveData{Number: g.ECS.Wave.Number}})
}

// checkVictory: the game is won once the last wave of the difficulty is cleared.
func (g *Game) checkVictory() {
	w := g.ECS.Wave
	if g.ECS.Phase != component.PhasePlaying || w.Ongoing || w.Number < g.Profile.LastWave {
		return
	}
	g.ECS.Phase = component.PhaseWon
	logger.Log.WithField("wave", w.Number).Info("game won")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameWon, Data: event.WaveData{Number: w.Number}})
}

// NextWave asks the scheduler for the next wave; false while one is running.
func (g *Game) NextWave() bool {
	if g.ECS.Phase != component.PhasePlaying {
		return false
	}
	return g.WaveSystem.NextWave()
}

// Reset starts the same map and difficulty over.
func (g *Game) Reset() {
	g.ECS.Clear()
	g.Map.Reset()
	g.Rng.Reseed()
	g.WaveSystem.Reset()
	g.resetResources()
	g.TickCount = 0
	g.publish()
	logger.Log.WithField("difficulty", g.Profile.Name).Info("game reset")
}

// SetDifficulty switches profile and resets the game.
func (g *Game) SetDifficulty(name string) error {
	profile, ok := g.Lib.Difficulty(name)
	if !ok {
		return fmt.Errorf("difficulty %q: %w", name, ErrUnknownDifficulty)
	}
	g.Profile = profile
	g.WaveSystem.SetProfile(profile)
	g.Reset()
	return nil
}

func (g *Game) Phase() component.GamePhase {
	return g.ECS.Phase
}

func (g *Game) resetResources() {
	g.ECS.Money = g.Profile.StartingMoney
	g.ECS.Health = g.Profile.StartingHealth
}

func (g *Game) publish() {
	if g.sink != nil {
		g.sink.Publish(g.Snapshot())
	}
}

func toPosition(w gridmap.Waypoint) component.Position {
	return component.Position{X: w.X, Y: w.Y}
}

func toPath(ws []gridmap.Waypoint) []component.Position {
	out := make([]component.Position, len(ws))
	for i, w := range ws {
		out[i] = toPosition(w)
	}
	return out
}
