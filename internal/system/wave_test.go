package system

import (
	"reflect"
	"testing"

	"candy-defense/internal/component"
	"candy-defense/internal/entity"
	"candy-defense/internal/event"
	"candy-defense/internal/utils"
)

// fakeSpawner records spawn calls instead of building enemies.
type fakeSpawner struct {
	ecs   *entity.ECS
	calls []string
	at    []component.Position
}

func (f *fakeSpawner) Spawn(defID string, at component.Position, path []component.Position) *component.Enemy {
	f.calls = append(f.calls, defID)
	f.at = append(f.at, at)
	e := &component.Enemy{ID: f.ecs.NewEntity(), DefID: defID, Health: 1, MaxHealth: 1, Active: true, Path: path}
	f.ecs.AddEnemy(e)
	return e
}

func newWaveWorld(t *testing.T, seed int64) (*WaveSystem, *fakeSpawner, *entity.ECS) {
	t.Helper()
	lib := testLibrary(t)
	profile, ok := lib.Difficulty("Normal")
	if !ok {
		t.Fatal("no Normal difficulty")
	}
	ecs := entity.NewECS()
	sp := &fakeSpawner{ecs: ecs}
	start := component.Position{X: 0, Y: 80}
	path := []component.Position{{X: 64, Y: 80}}
	ws := NewWaveSystem(ecs, profile, utils.NewPRNGService(seed), sp, event.NewDispatcher(), start, path)
	return ws, sp, ecs
}

func multiset(q []string) map[string]int {
	m := map[string]int{}
	for _, s := range q {
		m[s]++
	}
	return m
}

func TestFirstWaveUsesDefaultSpawn(t *testing.T) {
	ws, _, ecs := newWaveWorld(t, 1)

	if !ws.NextWave() {
		t.Fatal("NextWave rejected on a fresh game")
	}
	w := ecs.Wave
	if w.Number != 1 || !w.Ongoing || w.State != component.WaveSpawning {
		t.Fatalf("wave = %+v", w)
	}
	want := map[string]int{"marshmallow": 4, "cracker": 1}
	if got := multiset(w.Queue); !reflect.DeepEqual(got, want) {
		t.Errorf("queue multiset = %v, want %v", got, want)
	}
	if w.SpawnInterval != 49 {
		t.Errorf("SpawnInterval = %d, want 49", w.SpawnInterval)
	}
}

func TestSecondWaveAppliesIncrementBeforeFloor(t *testing.T) {
	ws, _, ecs := newWaveWorld(t, 1)
	ws.NextWave()
	ecs.Wave.Ongoing = false
	ecs.Wave.Queue = nil

	ws.NextWave()

	want := map[string]int{"marshmallow": 8, "cracker": 3, "white_chocolate": 1}
	if got := multiset(ecs.Wave.Queue); !reflect.DeepEqual(got, want) {
		t.Errorf("queue multiset = %v, want %v", got, want)
	}
	if got := ecs.Wave.Accumulated["dark_chocolate"]; got != 0.75 {
		t.Errorf("dark_chocolate accumulated = %v, want 0.75", got)
	}
	if ecs.Wave.SpawnInterval != 48 {
		t.Errorf("SpawnInterval = %d, want 48", ecs.Wave.SpawnInterval)
	}
}

func TestSeededQueueIsDeterministic(t *testing.T) {
	a, _, ecsA := newWaveWorld(t, 99)
	b, _, ecsB := newWaveWorld(t, 99)
	a.NextWave()
	b.NextWave()
	if !reflect.DeepEqual(ecsA.Wave.Queue, ecsB.Wave.Queue) {
		t.Errorf("queues differ: %v vs %v", ecsA.Wave.Queue, ecsB.Wave.Queue)
	}
}

func TestNextWaveRejectedWhileOngoing(t *testing.T) {
	ws, _, ecs := newWaveWorld(t, 1)
	ws.NextWave()
	before := append([]string(nil), ecs.Wave.Queue...)

	if ws.NextWave() {
		t.Fatal("NextWave accepted while a wave is ongoing")
	}
	if ecs.Wave.Number != 1 {
		t.Errorf("Number = %d, want 1", ecs.Wave.Number)
	}
	if !reflect.DeepEqual(ecs.Wave.Queue, before) {
		t.Errorf("queue changed: %v vs %v", ecs.Wave.Queue, before)
	}
}

func TestSpawnPacing(t *testing.T) {
	ws, sp, ecs := newWaveWorld(t, 1)
	ws.NextWave()
	interval := ecs.Wave.SpawnInterval

	var spawnTicks []int
	for tick := 1; tick <= interval+2; tick++ {
		n := len(sp.calls)
		ws.Update()
		if len(sp.calls) > n {
			spawnTicks = append(spawnTicks, tick)
		}
	}
	want := []int{1, interval + 2}
	if !reflect.DeepEqual(spawnTicks, want) {
		t.Errorf("spawn ticks = %v, want %v", spawnTicks, want)
	}
	if sp.at[0] != (component.Position{X: 0, Y: 80}) {
		t.Errorf("spawned at %+v, want the map start", sp.at[0])
	}
}

func TestWaveClearsWhenFieldEmpty(t *testing.T) {
	ws, _, ecs := newWaveWorld(t, 1)
	rec := &recorder{}
	ws.eventDispatcher.Subscribe(event.WaveEnded, rec)
	ws.NextWave()

	for i := 0; i < 1000 && len(ecs.Wave.Queue) > 0; i++ {
		ws.Update()
	}
	ws.Update()
	if ecs.Wave.State != component.WaveWaitingForClear || !ecs.Wave.Ongoing {
		t.Fatalf("state = %v ongoing=%v, want waiting-for-clear", ecs.Wave.State, ecs.Wave.Ongoing)
	}

	ecs.Enemies = nil
	ws.Update()
	if ecs.Wave.Ongoing || ecs.Wave.State != component.WaveIdle {
		t.Errorf("wave not cleared: %+v", ecs.Wave)
	}
	if rec.count(event.WaveEnded) != 1 {
		t.Errorf("WaveEnded dispatched %d times", rec.count(event.WaveEnded))
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	ws, _, ecs := newWaveWorld(t, 1)
	for i := 0; i < 60; i++ {
		ecs.Wave.Ongoing = false
		ws.NextWave()
	}
	if ecs.Wave.SpawnInterval != 5 {
		t.Errorf("SpawnInterval = %d, want 5", ecs.Wave.SpawnInterval)
	}
}

func TestSpawnOverride(t *testing.T) {
	ws, sp, _ := newWaveWorld(t, 1)
	at := component.Position{X: 200, Y: 300}
	e := ws.SpawnEnemy("cracker", &SpawnOverride{Pos: at, Path: nil})
	if e == nil || sp.at[0] != at {
		t.Errorf("override ignored: %+v", sp.at)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	ws, _, ecs := newWaveWorld(t, 1)
	ws.NextWave()
	ecs.Wave.Ongoing = false
	ws.NextWave()

	ws.Reset()
	w := ecs.Wave
	if w.Number != 0 || w.Ongoing || len(w.Queue) != 0 || w.SpawnCooldown != 0 || w.SpawnInterval != 50 {
		t.Errorf("after Reset: %+v", w)
	}
	if w.Accumulated["marshmallow"] != 4 || w.Accumulated["cracker"] != 1 {
		t.Errorf("Accumulated = %v", w.Accumulated)
	}
}
