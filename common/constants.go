package common

const (
	// TileSize is the world-unit edge of one tile and of the character footprint.
	TileSize = 32

	// MaxJumpVelocity caps both the stored jump charge and the launch speed.
	MaxJumpVelocity = 20.0

	BaseWidth  = 1280
	BaseHeight = 720

	// Gravity is added to the vertical velocity of an airborne character every step.
	Gravity          = 1.0
	TerminalVelocity = 24.0
)
