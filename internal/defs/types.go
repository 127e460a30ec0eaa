// internal/defs/types.go
package defs

import (
	"encoding/json"
	"fmt"
)

// DamageType tags every hit so archetypes can pick their resistance rule.
type DamageType string

const (
	DamageDefault DamageType = "Default"
	DamageFire    DamageType = "Fire"
	DamageBomb    DamageType = "Bomb"
	DamageSaw     DamageType = "Saw"
	DamageLaser   DamageType = "Laser"
)

// DamageTypes lists the closed set in declaration order.
var DamageTypes = []DamageType{DamageDefault, DamageFire, DamageBomb, DamageSaw, DamageLaser}

// Valid reports whether d is one of the known damage types.
func (d DamageType) Valid() bool {
	for _, known := range DamageTypes {
		if d == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects damage types outside the closed set.
func (d *DamageType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	dt := DamageType(s)
	if !dt.Valid() {
		return fmt.Errorf("unknown damage type %q", s)
	}
	*d = dt
	return nil
}
