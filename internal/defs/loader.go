// internal/defs/loader.go
package defs

import (
	"candy-defense/pkg/logger"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
)

//go:embed data/*.json
var embedded embed.FS

const (
	enemiesFile      = "enemies.json"
	towersFile       = "towers.json"
	difficultiesFile = "difficulties.json"
)

var ErrInvalidDefinition = errors.New("defs: invalid definition")

// Library is the immutable set of archetype tables the simulation is built from.
type Library struct {
	Enemies      map[string]EnemyDefinition
	Towers       map[string]TowerDefinition
	Difficulties map[string]DifficultyProfile
	// TowerOrder keeps the file order for menus and key bindings.
	TowerOrder []string
}

// LoadDefault reads the tables compiled into the binary.
func LoadDefault() (*Library, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadDir reads the three tables from a directory on disk.
func LoadDir(dir string) (*Library, error) {
	return LoadFS(os.DirFS(filepath.Clean(dir)))
}

// LoadFS reads and validates the tables from any file system.
func LoadFS(fsys fs.FS) (*Library, error) {
	var enemyDefs []EnemyDefinition
	if err := readJSON(fsys, enemiesFile, &enemyDefs); err != nil {
		return nil, err
	}
	var towerDefs []TowerDefinition
	if err := readJSON(fsys, towersFile, &towerDefs); err != nil {
		return nil, err
	}
	var profiles []DifficultyProfile
	if err := readJSON(fsys, difficultiesFile, &profiles); err != nil {
		return nil, err
	}

	lib := &Library{
		Enemies:      make(map[string]EnemyDefinition, len(enemyDefs)),
		Towers:       make(map[string]TowerDefinition, len(towerDefs)),
		Difficulties: make(map[string]DifficultyProfile, len(profiles)),
	}
	for _, def := range enemyDefs {
		lib.Enemies[def.ID] = def
	}
	for _, def := range towerDefs {
		lib.Towers[def.ID] = def
		lib.TowerOrder = append(lib.TowerOrder, def.ID)
	}
	for _, p := range profiles {
		lib.Difficulties[p.Name] = p
	}
	if err := lib.validate(); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"enemies":      len(lib.Enemies),
		"towers":       len(lib.Towers),
		"difficulties": len(lib.Difficulties),
	}).Info("Loaded definitions")
	return lib, nil
}

// Difficulty looks up a profile by name.
func (l *Library) Difficulty(name string) (DifficultyProfile, bool) {
	p, ok := l.Difficulties[name]
	return p, ok
}

// DifficultyNames returns the profile names sorted by starting health, hardest last.
func (l *Library) DifficultyNames() []string {
	names := make([]string, 0, len(l.Difficulties))
	for name := range l.Difficulties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		hi, hj := l.Difficulties[names[i]].StartingHealth, l.Difficulties[names[j]].StartingHealth
		if hi != hj {
			return hi > hj
		}
		return names[i] < names[j]
	})
	return names
}

func (l *Library) validate() error {
	for id, def := range l.Enemies {
		if def.Health <= 0 || def.Speed < 0 {
			return fmt.Errorf("%w: enemy %q has non-positive health or negative speed", ErrInvalidDefinition, id)
		}
		for _, child := range def.SplitInto {
			if _, ok := l.Enemies[child]; !ok {
				return fmt.Errorf("%w: enemy %q splits into unknown %q", ErrInvalidDefinition, id, child)
			}
		}
	}
	for id, def := range l.Towers {
		if len(def.Tiers) == 0 {
			return fmt.Errorf("%w: tower %q has no tiers", ErrInvalidDefinition, id)
		}
		switch def.Projectile {
		case ProjectileDirect, ProjectileSplash, ProjectilePiercing, ProjectileChannel:
		default:
			return fmt.Errorf("%w: tower %q has unknown projectile kind %q", ErrInvalidDefinition, id, def.Projectile)
		}
		for i, tier := range def.Tiers {
			if tier.ProjectileSpeed <= 0 {
				return fmt.Errorf("%w: tower %q tier %d has no projectile speed", ErrInvalidDefinition, id, i)
			}
			if def.Projectile == ProjectilePiercing && tier.Pierce <= 0 {
				return fmt.Errorf("%w: piercing tower %q tier %d needs pierce > 0", ErrInvalidDefinition, id, i)
			}
		}
	}
	for name, p := range l.Difficulties {
		for archetype := range p.DefaultSpawn {
			if _, ok := l.Enemies[archetype]; !ok {
				// the wave system tolerates this, but it is almost always a typo
				logger.Log.WithField("difficulty", name).Warnf("Default spawn names unknown archetype %q", archetype)
			}
		}
	}
	return nil
}

func readJSON(fsys fs.FS, name string, v interface{}) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}
