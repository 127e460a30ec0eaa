// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1080
	ScreenHeight = 720
	TPS          = 60 // one simulation tick per rendered frame
	MaxDeltaTime = 0.1

	GridCellCount = 10
	GridCellSize  = 64
	GridSize      = GridCellSize * GridCellCount
	GridOffset    = 3 // inset of a drawn tile from its cell border

	TopbarHeight = 80
	SidebarWidth = 300

	// Field is the playable area; projectiles leaving it are discarded.
	FieldLeft   = 0
	FieldTop    = TopbarHeight
	FieldRight  = GridSize
	FieldBottom = TopbarHeight + GridSize
)

const (
	MinDamage            = 0.5 // armor never reduces a hit below this
	AimIterations        = 5
	MinSpawnInterval     = 5
	ChannelRangeBonus    = 0.2
	SplashFactor         = 0.5
	FireResistDivisor    = 10.0
	ProjectileSize       = GridCellSize / 3
	ChannelSize          = GridCellSize
	EnemySize            = GridCellSize
	SellRefundDivisor    = 2
	DefaultDifficulty    = "Normal"
	DefaultMap           = "Meadow"
	EventBufferSize      = 256
	DebugSnapshotMaxSize = 4096
)

var (
	BackgroundColor = color.RGBA{30, 24, 36, 255}
	FieldColor      = color.RGBA{200, 200, 200, 255}
	EmptyTileColor  = color.RGBA{0, 100, 0, 255}
	PathTileColor   = color.RGBA{200, 140, 0, 255}
	StartTileColor  = color.RGBA{0, 200, 0, 255}
	EndTileColor    = color.RGBA{200, 0, 0, 255}
	RangeColor      = color.RGBA{0, 0, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthBarColor  = color.RGBA{220, 60, 60, 255}
	TopbarColor     = color.RGBA{45, 40, 60, 255}
)
