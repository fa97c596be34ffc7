package obj

import (
	"image/color"

	"github.com/milk9111/chargejump/common"
	"github.com/milk9111/chargejump/component"
)

// restSpeed is the horizontal speed below which friction stops the character.
const restSpeed = 0.01

// Tuning holds the movement and appearance parameters of a Character.
type Tuning struct {
	TileSize         float64
	MaxJumpVelocity  float64
	MoveAcceleration float64
	MaxMoveSpeed     float64
	// Friction scales horizontal velocity on steps without usable input.
	Friction         float64
	JumpAcceleration float64
	Health           int
	// SpawnOffsetY shifts the spawn point upward at construction.
	SpawnOffsetY float64
	Color        color.Color
	LineWidth    float64
}

// DefaultTuning returns the stock character parameters.
func DefaultTuning() Tuning {
	return Tuning{
		TileSize:         common.TileSize,
		MaxJumpVelocity:  common.MaxJumpVelocity,
		MoveAcceleration: 0.3,
		MaxMoveSpeed:     10,
		Friction:         0.6,
		JumpAcceleration: -2,
		Health:           3,
		SpawnOffsetY:     1,
		Color:            color.RGBA{R: 0x39, G: 0x65, B: 0x8c, A: 0xff},
		LineWidth:        2,
	}
}

// Character is the player-controlled entity: a square that runs, charges
// jumps while grounded and launches when the jump key is released.
type Character struct {
	tuning Tuning

	pos        Point
	velocityX  float64
	velocityY  float64
	jumpCharge float64
	onGround   bool
	jumped     bool
	health     *component.Health
	bbox       BoundingBox
	state      jumpState
}

// NewCharacter places a character at start, shifted up by the spawn offset.
func NewCharacter(start Point, tuning Tuning) *Character {
	c := &Character{
		tuning:   tuning,
		onGround: true,
		health:   component.NewHealth(tuning.Health),
		state:    jumpStateIdle,
	}
	c.pos = Point{X: start.X, Y: start.Y - tuning.SpawnOffsetY}
	c.RecomputeBoundingBox()
	return c
}

func (c *Character) X() float64 { return c.pos.X }
func (c *Character) Y() float64 { return c.pos.Y }

func (c *Character) SetX(x float64) {
	c.pos.X = x
	c.RecomputeBoundingBox()
}

func (c *Character) SetY(y float64) {
	c.pos.Y = y
	c.RecomputeBoundingBox()
}

// Position returns the top-left corner of the footprint.
func (c *Character) Position() Point { return c.pos }

func (c *Character) VelocityX() float64     { return c.velocityX }
func (c *Character) VelocityY() float64     { return c.velocityY }
func (c *Character) SetVelocityX(v float64) { c.velocityX = v }
func (c *Character) SetVelocityY(v float64) { c.velocityY = v }

func (c *Character) JumpCharge() float64 { return c.jumpCharge }

func (c *Character) IsOnGround() bool { return c.onGround }

// SetOnGround is called by the collision system. Landing clears the jumped
// flag; leaving the ground drops any stored charge.
func (c *Character) SetOnGround(onGround bool) {
	if onGround == c.onGround {
		return
	}
	c.onGround = onGround
	if onGround {
		c.jumped = false
		c.state = jumpStateIdle
		return
	}
	c.jumpCharge = 0
	c.state = jumpStateAirborne
}

// IsJumped reports whether the character launched with a non-zero charge
// since it last landed.
func (c *Character) IsJumped() bool { return c.jumped }

// JumpState returns the name of the current vertical regime.
func (c *Character) JumpState() string { return c.state.Name() }

// FacingLeft reports whether the character faces left, which it does only
// while moving left.
func (c *Character) FacingLeft() bool { return c.velocityX < 0 }

func (c *Character) Health() int { return c.health.CurrentHP() }

// LoseLife removes one life, never going below zero.
func (c *Character) LoseLife() { c.health.LoseLife() }

func (c *Character) IsDead() bool { return c.health.IsDead() }

// OnLifeLost registers fn to run after every lost life with the lives left.
func (c *Character) OnLifeLost(fn func(remaining int)) {
	if fn == nil {
		c.health.OnLoseLife = nil
		return
	}
	c.health.OnLoseLife = func(h *component.Health) { fn(h.Current) }
}

// OnDeath registers fn to run once the last life is gone.
func (c *Character) OnDeath(fn func()) {
	if fn == nil {
		c.health.OnDeath = nil
		return
	}
	c.health.OnDeath = func(*component.Health) { fn() }
}

// RestoreHealth refills health to the tuned maximum.
func (c *Character) RestoreHealth() { c.health.Reset() }

func (c *Character) Tuning() Tuning { return c.tuning }

// SetTuning swaps movement parameters in place. Current health is kept but
// clamped to the new maximum.
func (c *Character) SetTuning(t Tuning) {
	c.tuning = t
	c.health.Max = t.Health
	c.health.SetCurrentHP(c.health.Current)
	c.RecomputeBoundingBox()
}

// BoundingBox returns the footprint corners for the current position.
func (c *Character) BoundingBox() BoundingBox { return c.bbox }

// RecomputeBoundingBox derives the corners from position and tile size.
func (c *Character) RecomputeBoundingBox() {
	c.bbox = NewBoundingBox(c.pos, c.tuning.TileSize)
}

// Respawn moves the character to start (with the spawn offset) and clears
// all motion. Health is untouched.
func (c *Character) Respawn(start Point) {
	c.velocityX, c.velocityY = 0, 0
	c.jumpCharge = 0
	c.onGround = true
	c.jumped = false
	c.state = jumpStateIdle
	c.pos = Point{X: start.X, Y: start.Y - c.tuning.SpawnOffsetY}
	c.RecomputeBoundingBox()
}

// AdvanceHorizontal applies acceleration or friction from the input snapshot
// and moves the character by velocityX * dt.
func (c *Character) AdvanceHorizontal(dt float64, in InputState) {
	limit := c.tuning.MaxMoveSpeed
	switch {
	case in.MoveRight && c.velocityX < limit:
		c.velocityX = common.Clamp(c.velocityX+c.tuning.MoveAcceleration, -limit, limit)
	case in.MoveLeft && c.velocityX > -limit:
		c.velocityX = common.Clamp(c.velocityX-c.tuning.MoveAcceleration, -limit, limit)
	default:
		c.velocityX *= c.tuning.Friction
		if common.NearlyZero(c.velocityX, restSpeed) {
			c.velocityX = 0
		}
	}
	c.pos.X += c.velocityX * dt
	c.RecomputeBoundingBox()
}

// AdvanceVertical runs the jump state machine and moves the character by
// velocityY * dt.
func (c *Character) AdvanceVertical(dt float64, in InputState) {
	c.state.Step(c, in)
	c.pos.Y += c.velocityY * dt
	c.RecomputeBoundingBox()
}

// launch leaves the ground with the stored charge as vertical velocity.
func (c *Character) launch() {
	c.velocityY = c.jumpCharge
	if c.jumpCharge != 0 {
		c.jumped = true
	}
	c.onGround = false
	c.jumpCharge = 0
	c.state = jumpStateAirborne
}
