// internal/defs/difficulty.go
package defs

// DifficultyProfile describes one difficulty: starting resources and how the
// wave composition grows.
type DifficultyProfile struct {
	Name           string `json:"name"`
	StartingMoney  int    `json:"starting_money"`
	StartingHealth int    `json:"starting_health"`
	// DefaultSpawn and Increment are per archetype and may be fractional;
	// the wave takes floor() of the accumulated value.
	DefaultSpawn         map[string]float64 `json:"default_spawn"`
	Increment            map[string]float64 `json:"increment"`
	DefaultSpawnInterval int                `json:"default_spawn_interval"`
	LastWave             int                `json:"last_wave"`
}
