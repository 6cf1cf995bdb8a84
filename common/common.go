package common

// Window and world dimensions.
const (
	BaseWidth  = 1000
	BaseHeight = 650
	TileSize   = 32
	Title      = "Platformer"
)

// Player tuning defaults. Prefab specs may override these per entity.
const (
	Gravity         = 1.0
	PlayerMoveSpeed = 10.0
	PlayerJumpSpeed = 20.0
	PlayerAccelRate = 0.1
)
