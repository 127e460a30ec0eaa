// internal/component/wave.go
package component

// WaveState — фаза планировщика волн.
type WaveState int

const (
	WaveIdle WaveState = iota
	WaveSpawning
	WaveWaitingForClear
)

func (s WaveState) String() string {
	switch s {
	case WaveSpawning:
		return "spawning"
	case WaveWaitingForClear:
		return "waiting-for-clear"
	default:
		return "idle"
	}
}

// Wave is the scheduler's mutable state.
type Wave struct {
	Number        int
	State         WaveState
	Ongoing       bool
	Queue         []string
	SpawnInterval int
	SpawnCooldown int
	// Accumulated holds fractional per-archetype counts across waves.
	Accumulated map[string]float64
}
