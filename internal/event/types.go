// internal/event/types.go
package event

import "candy-defense/internal/types"

const (
	EnemySpawned      EventType = "EnemySpawned"
	EnemyKilled       EventType = "EnemyKilled"     // Враг уничтожен
	EnemyReachedEnd   EventType = "EnemyReachedEnd" // Враг дошёл до конца пути
	EnemyAltered      EventType = "EnemyAltered"    // растаял или треснул
	TowerPlaced       EventType = "TowerPlaced"     // Башня построена
	TowerUpgraded     EventType = "TowerUpgraded"
	TowerSold         EventType = "TowerSold"
	ProjectileFired   EventType = "ProjectileFired"
	ProjectileExpired EventType = "ProjectileExpired"
	DamageDealt       EventType = "DamageDealt"
	WaveStarted       EventType = "WaveStarted"
	WaveEnded         EventType = "WaveEnded" // Волна закончилась
	GameWon           EventType = "GameWon"
	GameLost          EventType = "GameLost"
)

// EnemyData accompanies enemy lifecycle events.
type EnemyData struct {
	ID     types.EntityID `json:"id"`
	DefID  string         `json:"def"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Reward int            `json:"reward,omitempty"`
	Damage int            `json:"damage,omitempty"`
}

type TowerData struct {
	ID    types.EntityID `json:"id"`
	DefID string         `json:"def"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Tier  int            `json:"tier"`
	Money int            `json:"money"` // spent (place/upgrade) or refunded (sell)
}

type ProjectileData struct {
	ID      types.EntityID `json:"id"`
	TowerID types.EntityID `json:"tower"`
	Kind    string         `json:"kind"`
}

// DamageData is published for every hit the resolver applies.
type DamageData struct {
	EnemyID      types.EntityID `json:"enemy"`
	ProjectileID types.EntityID `json:"projectile"`
	Amount       float64        `json:"amount"` // after elemental and armor rules
	DamageType   string         `json:"type"`
	Killed       bool           `json:"killed,omitempty"`
}

type WaveData struct {
	Number int `json:"number"`
	Size   int `json:"size,omitempty"`
}
