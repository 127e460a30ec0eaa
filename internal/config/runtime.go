// internal/config/runtime.go
package config

import (
	"os"
	"strconv"
	"time"
)

// Runtime holds launch parameters that are not baked into the binary.
type Runtime struct {
	Difficulty string
	MapName    string
	// Seed for wave shuffling. Zero means "seed from the clock".
	Seed int64
	// DebugAddr is the listen address of the debug server; empty disables it.
	DebugAddr string
	// DefsDir overrides the embedded archetype tables when set.
	DefsDir string
}

// NewRuntime returns defaults with a clock-based seed.
func NewRuntime() Runtime {
	return Runtime{
		Difficulty: DefaultDifficulty,
		MapName:    DefaultMap,
		Seed:       time.Now().UnixNano(),
		DebugAddr:  "localhost:6060",
	}
}

// LoadRuntime reads TD_* environment variables on top of NewRuntime.
func LoadRuntime() Runtime {
	rt := NewRuntime()
	if v, ok := os.LookupEnv("TD_DIFFICULTY"); ok && v != "" {
		rt.Difficulty = v
	}
	if v, ok := os.LookupEnv("TD_MAP"); ok && v != "" {
		rt.MapName = v
	}
	if v, ok := os.LookupEnv("TD_SEED"); ok {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil && seed != 0 {
			rt.Seed = seed
		}
	}
	if v, ok := os.LookupEnv("TD_DEBUG_ADDR"); ok {
		rt.DebugAddr = v
	}
	if v, ok := os.LookupEnv("TD_DEFS_DIR"); ok {
		rt.DefsDir = v
	}
	return rt
}
