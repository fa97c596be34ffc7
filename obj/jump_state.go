package obj

// jumpState is one regime of the vertical state machine.
type jumpState interface {
	Name() string
	Step(c *Character, in InputState)
}

// singletons for each state to avoid allocating on every transition
var (
	jumpStateIdle     jumpState = &groundedIdleState{}
	jumpStateCharging jumpState = &groundedChargingState{}
	jumpStateAirborne jumpState = &airborneState{}
)

const (
	JumpStateGroundedIdle     = "grounded-idle"
	JumpStateGroundedCharging = "grounded-charging"
	JumpStateAirborne         = "airborne"
)

type groundedIdleState struct{}

func (groundedIdleState) Name() string { return JumpStateGroundedIdle }
func (groundedIdleState) Step(c *Character, in InputState) {
	if !in.Jump {
		// leave with whatever charge is stored, possibly none
		c.launch()
		return
	}
	c.state = jumpStateCharging
	c.state.Step(c, in)
}

type groundedChargingState struct{}

func (groundedChargingState) Name() string { return JumpStateGroundedCharging }
func (groundedChargingState) Step(c *Character, in InputState) {
	if in.Jump {
		c.jumpCharge = max(c.jumpCharge+c.tuning.JumpAcceleration, -c.tuning.MaxJumpVelocity)
	}
	if !in.Jump || c.jumpCharge == -c.tuning.MaxJumpVelocity {
		c.launch()
	}
}

type airborneState struct{}

func (airborneState) Name() string { return JumpStateAirborne }

// Step leaves vertical velocity to gravity and landing, which are owned by
// the collision system.
func (airborneState) Step(c *Character, in InputState) {}
