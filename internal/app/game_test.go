package app

import (
	"errors"
	"reflect"
	"testing"

	"candy-defense/internal/component"
	"candy-defense/internal/defs"
	"candy-defense/internal/event"
	"candy-defense/internal/system"
	"candy-defense/pkg/gridmap"
	"candy-defense/pkg/logger"
)

func init() {
	logger.Silence()
}

func newTestGame(t *testing.T, mapName string) *Game {
	t.Helper()
	lib, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	m, err := gridmap.Load(mapName)
	if err != nil {
		t.Fatalf("Load(%q): %v", mapName, err)
	}
	g, err := NewGame(m, lib, "Normal", 7)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// newTinyGame plays on a two-cell map: start, then end.
func newTinyGame(t *testing.T) *Game {
	t.Helper()
	lib, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	m, err := gridmap.New("tiny", [][]int{
		{3, 4, 0},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g, err := NewGame(m, lib, "Normal", 7)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

type counter struct {
	n map[event.EventType]int
}

func newCounter(d *event.Dispatcher) *counter {
	c := &counter{n: map[event.EventType]int{}}
	d.SubscribeAll(c)
	return c
}

func (c *counter) OnEvent(e event.Event) { c.n[e.Type]++ }

type captureSink struct {
	last  Snapshot
	count int
}

func (s *captureSink) Publish(snap Snapshot) {
	s.last = snap
	s.count++
}

func TestNewGameStartsWithProfileResources(t *testing.T) {
	g := newTestGame(t, "Meadow")
	if g.ECS.Money != 75 || g.ECS.Health != 80 {
		t.Errorf("money=%d health=%d, want 75/80", g.ECS.Money, g.ECS.Health)
	}
	if g.Phase() != component.PhasePlaying {
		t.Errorf("phase = %v", g.Phase())
	}
}

func TestNewGameRejectsUnknownDifficulty(t *testing.T) {
	lib, _ := defs.LoadDefault()
	m, _ := gridmap.Load("Meadow")
	if _, err := NewGame(m, lib, "Nightmare", 1); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("err = %v, want ErrUnknownDifficulty", err)
	}
}

func TestEnemyArrivalDeductsContactDamageOnce(t *testing.T) {
	g := newTinyGame(t)
	c := newCounter(g.EventDispatcher)
	e := g.WaveSystem.SpawnEnemy("marshmallow", &system.SpawnOverride{
		Pos:  component.Position{X: 0, Y: 80},
		Path: []component.Position{{X: 64, Y: 80}},
	})
	if e == nil || len(e.Path) != 1 {
		t.Fatalf("spawned %+v", e)
	}
	startHealth := g.ECS.Health

	for tick := 0; tick < 100 && len(g.ECS.Enemies) > 0; tick++ {
		before := len(e.Path)
		g.Tick()
		if len(e.Path) == 0 && before == 1 {
			if len(g.ECS.Enemies) != 0 {
				t.Fatal("enemy with an empty path was not removed the same tick")
			}
		}
	}

	if g.ECS.Health != startHealth-e.ContactDamage || e.ContactDamage != 5 {
		t.Errorf("health = %d, want %d", g.ECS.Health, startHealth-5)
	}
	if c.n[event.EnemyReachedEnd] != 1 {
		t.Errorf("EnemyReachedEnd = %d, want 1", c.n[event.EnemyReachedEnd])
	}
	if e.Active {
		t.Error("removed enemy still active")
	}
}

func TestKilledEnemyPaysReward(t *testing.T) {
	g := newTestGame(t, "Meadow")
	e := g.WaveSystem.SpawnEnemy("cracker", nil)
	e.Health = 0
	money := g.ECS.Money

	g.Tick()

	if g.ECS.Money != money+10 {
		t.Errorf("money = %d, want %d", g.ECS.Money, money+10)
	}
	if len(g.ECS.Enemies) != 0 {
		t.Errorf("len(Enemies) = %d, want 0", len(g.ECS.Enemies))
	}
}

func TestSmoreSplitsOnDeath(t *testing.T) {
	g := newTestGame(t, "Meadow")
	s := g.WaveSystem.SpawnEnemy("smore", nil)
	g.Tick()
	s.Health = -3
	pos := s.Pos
	remaining := len(s.Path)

	g.Tick()

	if len(g.ECS.Enemies) != 3 {
		t.Fatalf("len(Enemies) = %d, want 3", len(g.ECS.Enemies))
	}
	for _, e := range g.ECS.Enemies {
		if e.Pos != pos || len(e.Path) != remaining {
			t.Errorf("%s at %+v with %d waypoints, want %+v/%d", e.DefID, e.Pos, len(e.Path), pos, remaining)
		}
	}
}

func TestDefeatStopsTheSimulation(t *testing.T) {
	g := newTinyGame(t)
	c := newCounter(g.EventDispatcher)
	g.ECS.Health = 1
	g.WaveSystem.SpawnEnemy("marshmallow", nil)

	for i := 0; i < 100; i++ {
		g.Tick()
	}
	if g.Phase() != component.PhaseLost {
		t.Fatalf("phase = %v, want lost", g.Phase())
	}
	if c.n[event.GameLost] != 1 {
		t.Errorf("GameLost = %d", c.n[event.GameLost])
	}
	ticks := g.TickCount
	g.Tick()
	if g.TickCount != ticks {
		t.Error("Tick ran after defeat")
	}
	if g.NextWave() {
		t.Error("NextWave accepted after defeat")
	}
}

func TestVictoryAfterLastWave(t *testing.T) {
	g := newTestGame(t, "Meadow")
	g.Profile.LastWave = 1
	if !g.NextWave() {
		t.Fatal("NextWave rejected")
	}
	g.ECS.Wave.Queue = nil

	g.Tick()

	if g.Phase() != component.PhaseWon {
		t.Errorf("phase = %v, want won", g.Phase())
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, "Meadow")
		if _, err := g.PlaceTower("turret", 2, 1); err != nil {
			t.Fatalf("PlaceTower: %v", err)
		}
		if _, err := g.PlaceTower("flamethrower", 4, 4); err != nil {
			t.Fatalf("PlaceTower: %v", err)
		}
		g.NextWave()
		for i := 0; i < 600; i++ {
			g.Tick()
		}
		return g.Snapshot()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with the same seed diverged")
	}
}

func TestHealthInvariantDuringPlay(t *testing.T) {
	g := newTestGame(t, "Meadow")
	g.ECS.Money = 1000
	for _, p := range []struct {
		def  string
		x, y int
	}{{"turret", 2, 1}, {"bomb", 0, 3}, {"saw", 5, 4}, {"laser", 7, 3}, {"flamethrower", 4, 6}} {
		if _, err := g.PlaceTower(p.def, p.x, p.y); err != nil {
			t.Fatalf("PlaceTower(%s): %v", p.def, err)
		}
	}
	g.NextWave()
	for i := 0; i < 1500; i++ {
		g.Tick()
		for _, e := range g.ECS.Enemies {
			if e.Health < 0 || e.Health > e.MaxHealth {
				t.Fatalf("tick %d: enemy %d health %v outside [0,%v]", i, e.ID, e.Health, e.MaxHealth)
			}
		}
	}
}

func TestResetRestoresStart(t *testing.T) {
	g := newTestGame(t, "Meadow")
	if _, err := g.PlaceTower("turret", 2, 1); err != nil {
		t.Fatal(err)
	}
	g.NextWave()
	for i := 0; i < 10; i++ {
		g.Tick()
	}

	g.Reset()

	if g.ECS.Money != 75 || g.ECS.Health != 80 || len(g.ECS.Towers) != 0 || len(g.ECS.Enemies) != 0 {
		t.Errorf("after Reset: money=%d health=%d towers=%d enemies=%d",
			g.ECS.Money, g.ECS.Health, len(g.ECS.Towers), len(g.ECS.Enemies))
	}
	if g.Map.TileState(2, 1) != gridmap.TileEmpty {
		t.Error("tower cell not freed by Reset")
	}
	if g.ECS.Wave.Number != 0 || g.TickCount != 0 {
		t.Errorf("wave=%d tick=%d", g.ECS.Wave.Number, g.TickCount)
	}
}

func TestSetDifficulty(t *testing.T) {
	g := newTestGame(t, "Meadow")
	if err := g.SetDifficulty("Hard"); err != nil {
		t.Fatal(err)
	}
	if g.ECS.Health != 40 || g.ECS.Wave.SpawnInterval != 40 {
		t.Errorf("health=%d interval=%d", g.ECS.Health, g.ECS.Wave.SpawnInterval)
	}
	if err := g.SetDifficulty("Nope"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("err = %v", err)
	}
}

func TestSinkReceivesSnapshots(t *testing.T) {
	g := newTestGame(t, "Meadow")
	sink := &captureSink{}
	g.SetSink(sink)
	g.WaveSystem.SpawnEnemy("gummy", nil)
	g.Tick()

	if sink.count != 2 {
		t.Errorf("published %d snapshots, want 2", sink.count)
	}
	if sink.last.Tick != 1 || len(sink.last.Enemies) != 1 || sink.last.Map != "Meadow" {
		t.Errorf("snapshot = %+v", sink.last)
	}
	sink.last.Tiles[0][0] = 99
	if g.Map.Code(0, 0) == 99 {
		t.Error("snapshot tiles alias the map")
	}
}
