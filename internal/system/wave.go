// internal/system/wave.go
package system

import (
	"math"
	"sort"

	"candy-defense/internal/component"
	"candy-defense/internal/config"
	"candy-defense/internal/defs"
	"candy-defense/internal/entity"
	"candy-defense/internal/event"
	"candy-defense/internal/utils"
	"candy-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SpawnOverride replaces the map's start position and path for one spawn.
type SpawnOverride struct {
	Pos  component.Position
	Path []component.Position
}

// WaveSystem builds and paces waves: one wave at a time, queue drained on a
// cooldown, then wait until the field is clear.
type WaveSystem struct {
	ecs             *entity.ECS
	profile         defs.DifficultyProfile
	prng            *utils.PRNGService
	spawner         EnemySpawner
	eventDispatcher *event.Dispatcher

	start component.Position
	path  []component.Position
}

func NewWaveSystem(
	ecs *entity.ECS,
	profile defs.DifficultyProfile,
	prng *utils.PRNGService,
	spawner EnemySpawner,
	eventDispatcher *event.Dispatcher,
	start component.Position,
	path []component.Position,
) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		profile:         profile,
		prng:            prng,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
		start:           start,
		path:            path,
	}
	ws.Reset()
	return ws
}

func (s *WaveSystem) Profile() defs.DifficultyProfile {
	return s.profile
}

// SetProfile switches difficulty and resets the wave state.
func (s *WaveSystem) SetProfile(profile defs.DifficultyProfile) {
	s.profile = profile
	s.Reset()
}

// Reset restores the difficulty's defaults: wave 0, empty queue, default interval.
func (s *WaveSystem) Reset() {
	w := s.ecs.Wave
	w.Number = 0
	w.State = component.WaveIdle
	w.Ongoing = false
	w.Queue = nil
	w.SpawnInterval = s.profile.DefaultSpawnInterval
	w.SpawnCooldown = 0
	w.Accumulated = make(map[string]float64, len(s.profile.DefaultSpawn))
	for name, count := range s.profile.DefaultSpawn {
		w.Accumulated[name] = count
	}
}

// NextWave starts the next wave. While a wave is ongoing the request is
// ignored and false is returned.
func (s *WaveSystem) NextWave() bool {
	w := s.ecs.Wave
	if w.Ongoing {
		logger.Log.WithField("wave", w.Number).Warn("next wave requested while a wave is ongoing")
		return false
	}

	w.Number++
	if w.SpawnInterval > config.MinSpawnInterval {
		w.SpawnInterval--
	}

	// Increments apply from the second wave on.
	if w.Number > 1 {
		for name, inc := range s.profile.Increment {
			w.Accumulated[name] += inc
		}
	}
	w.Queue = s.buildQueue()
	w.Ongoing = true
	w.State = component.WaveSpawning

	logger.Log.WithFields(logrus.Fields{
		"wave":     w.Number,
		"size":     len(w.Queue),
		"interval": w.SpawnInterval,
	}).Info("wave started")
	s.dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: w.Number, Size: len(w.Queue)}})
	return true
}

// buildQueue floors every accumulated count and shuffles the result. Names are
// sorted first so a seeded PRNG always yields the same order.
func (s *WaveSystem) buildQueue() []string {
	w := s.ecs.Wave
	names := make([]string, 0, len(w.Accumulated))
	for name := range w.Accumulated {
		names = append(names, name)
	}
	sort.Strings(names)

	var queue []string
	for _, name := range names {
		n := int(math.Floor(w.Accumulated[name]))
		for i := 0; i < n; i++ {
			queue = append(queue, name)
		}
	}
	s.prng.ShuffleStrings(queue)
	return queue
}

func (s *WaveSystem) Update() {
	w := s.ecs.Wave
	if !w.Ongoing {
		return
	}

	if len(w.Queue) > 0 {
		if w.SpawnCooldown <= 0 {
			name := w.Queue[0]
			w.Queue = w.Queue[1:]
			s.SpawnEnemy(name, nil)
			w.SpawnCooldown = w.SpawnInterval
		} else {
			w.SpawnCooldown--
		}
		if len(w.Queue) == 0 {
			w.State = component.WaveWaitingForClear
		}
		return
	}

	if len(s.ecs.Enemies) > 0 {
		w.State = component.WaveWaitingForClear
		return
	}

	w.Ongoing = false
	w.State = component.WaveIdle
	logger.Log.WithField("wave", w.Number).Info("wave cleared")
	s.dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Number: w.Number}})
}

// SpawnEnemy creates one enemy at the map start, or at the override.
func (s *WaveSystem) SpawnEnemy(defID string, override *SpawnOverride) *component.Enemy {
	if override != nil {
		return s.spawner.Spawn(defID, override.Pos, override.Path)
	}
	return s.spawner.Spawn(defID, s.start, s.path)
}

func (s *WaveSystem) dispatch(ev event.Event) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(ev)
	}
}
