package obj

import "github.com/milk9111/chargejump/prefabs"

// TuningFromSpec converts a character prefab into movement parameters.
// A nil spec yields the defaults; an unparsable color or a non-positive
// line width keeps the default look.
func TuningFromSpec(spec *prefabs.CharacterSpec) Tuning {
	t := DefaultTuning()
	if spec == nil {
		return t
	}
	t.MoveAcceleration = spec.MoveAcceleration
	t.MaxMoveSpeed = spec.MaxMoveSpeed
	t.Friction = spec.Friction
	t.JumpAcceleration = spec.JumpAcceleration
	t.MaxJumpVelocity = spec.MaxJumpVelocity
	t.Health = spec.Health
	t.SpawnOffsetY = spec.SpawnOffsetY
	if c, ok := ParseHexColor(spec.Color); ok {
		t.Color = c
	}
	if spec.LineWidth > 0 {
		t.LineWidth = spec.LineWidth
	}
	return t
}

// WorldTuningFromSpec returns the world forces and the time scale.
func WorldTuningFromSpec(spec *prefabs.WorldSpec) (WorldTuning, float64) {
	if spec == nil {
		return DefaultWorldTuning(), 1
	}
	return WorldTuning{Gravity: spec.Gravity, TerminalVelocity: spec.TerminalVelocity}, spec.TimeScale
}
