package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Autopilot produces input snapshots from a tengo script. The script sees
// frame, x, y, vx, vy, on_ground and health, and answers by defining the
// booleans left, right and jump.
type Autopilot struct {
	compiled *tengo.Compiled
	frame    int
}

func NewAutopilot(src []byte) (*Autopilot, error) {
	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("vx", 0.0)
	_ = script.Add("vy", 0.0)
	_ = script.Add("on_ground", false)
	_ = script.Add("health", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile: %w", err)
	}
	return &Autopilot{compiled: compiled}, nil
}

// Next runs the script once for the current frame and returns its answer.
func (a *Autopilot) Next(c *Character) (InputState, error) {
	if a == nil || a.compiled == nil {
		return InputState{}, fmt.Errorf("autopilot: not compiled")
	}
	vars := map[string]interface{}{"frame": a.frame}
	if c != nil {
		vars["x"] = c.X()
		vars["y"] = c.Y()
		vars["vx"] = c.VelocityX()
		vars["vy"] = c.VelocityY()
		vars["on_ground"] = c.IsOnGround()
		vars["health"] = c.Health()
	}
	for name, v := range vars {
		if err := a.compiled.Set(name, v); err != nil {
			return InputState{}, fmt.Errorf("autopilot: set %s: %w", name, err)
		}
	}
	if err := a.compiled.Run(); err != nil {
		return InputState{}, fmt.Errorf("autopilot: frame %d: %w", a.frame, err)
	}
	a.frame++

	return InputState{
		MoveLeft:  a.flag("left"),
		MoveRight: a.flag("right"),
		Jump:      a.flag("jump"),
	}, nil
}

// Frame returns the number of frames run so far.
func (a *Autopilot) Frame() int {
	if a == nil {
		return 0
	}
	return a.frame
}

func (a *Autopilot) flag(name string) bool {
	if !a.compiled.IsDefined(name) {
		return false
	}
	return a.compiled.Get(name).Bool()
}
