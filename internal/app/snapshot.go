// internal/app/snapshot.go
package app

import (
	"candy-defense/internal/component"
	"candy-defense/internal/types"
)

// Snapshot is an immutable copy of what renderers and the debug server need.
type Snapshot struct {
	Tick       uint64               `json:"tick"`
	Phase      string               `json:"phase"`
	Money      int                  `json:"money"`
	Health     int                  `json:"health"`
	Difficulty string               `json:"difficulty"`
	Map        string               `json:"map"`
	Wave       WaveSnapshot         `json:"wave"`
	Tiles      [][]int              `json:"tiles"`
	Enemies    []EnemySnapshot      `json:"enemies"`
	Towers     []TowerSnapshot      `json:"towers"`
	Projectile []ProjectileSnapshot `json:"projectiles"`
}

type WaveSnapshot struct {
	Number   int    `json:"number"`
	LastWave int    `json:"last_wave"`
	State    string `json:"state"`
	Queued   int    `json:"queued"`
}

type EnemySnapshot struct {
	ID        types.EntityID `json:"id"`
	DefID     string         `json:"def"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	Health    float64        `json:"health"`
	MaxHealth float64        `json:"max_health"`
	Fraction  float64        `json:"health_fraction"`
	Altered   bool           `json:"altered,omitempty"`
}

type TowerSnapshot struct {
	ID     types.EntityID `json:"id"`
	DefID  string         `json:"def"`
	GridX  int            `json:"grid_x"`
	GridY  int            `json:"grid_y"`
	Tier   int            `json:"tier"`
	Value  int            `json:"value"`
	State  string         `json:"state"`
	Range  component.Rect `json:"range"`
	Target types.EntityID `json:"target,omitempty"`
}

type ProjectileSnapshot struct {
	ID   types.EntityID `json:"id"`
	Kind string         `json:"kind"`
	X    float64        `json:"x"`
	Y    float64        `json:"y"`
	W    float64        `json:"w"`
	H    float64        `json:"h"`
}

// Snapshot copies the current world. Nothing in the result aliases live state.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	s := Snapshot{
		Tick:       g.TickCount,
		Phase:      ecs.Phase.String(),
		Money:      ecs.Money,
		Health:     ecs.Health,
		Difficulty: g.Profile.Name,
		Map:        g.Map.Name,
		Wave: WaveSnapshot{
			Number:   ecs.Wave.Number,
			LastWave: g.Profile.LastWave,
			State:    ecs.Wave.State.String(),
			Queued:   len(ecs.Wave.Queue),
		},
		Tiles:      g.tiles(),
		Enemies:    make([]EnemySnapshot, 0, len(ecs.Enemies)),
		Towers:     make([]TowerSnapshot, 0, len(ecs.Towers)),
		Projectile: make([]ProjectileSnapshot, 0, len(ecs.Projectiles)),
	}
	for _, e := range ecs.Enemies {
		s.Enemies = append(s.Enemies, EnemySnapshot{
			ID: e.ID, DefID: e.DefID, X: e.Pos.X, Y: e.Pos.Y,
			Health: e.Health, MaxHealth: e.MaxHealth, Fraction: e.HealthFraction(), Altered: e.Altered,
		})
	}
	for _, t := range ecs.Towers {
		s.Towers = append(s.Towers, TowerSnapshot{
			ID: t.ID, DefID: t.DefID, GridX: t.Grid.X, GridY: t.Grid.Y,
			Tier: t.Tier, Value: t.Value, State: t.State.String(), Range: t.RangeRect(), Target: t.TargetID,
		})
	}
	for _, p := range ecs.Projectiles {
		s.Projectile = append(s.Projectile, ProjectileSnapshot{
			ID: p.ID, Kind: string(p.Kind), X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height,
		})
	}
	return s
}

func (g *Game) tiles() [][]int {
	h, w := g.Map.Height(), g.Map.Width()
	out := make([][]int, h)
	for y := 0; y < h; y++ {
		out[y] = make([]int, w)
		for x := 0; x < w; x++ {
			out[y][x] = g.Map.Code(x, y)
		}
	}
	return out
}
