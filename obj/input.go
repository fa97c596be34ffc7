package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a logical input identifier, independent of the physical binding.
type Key int

const (
	KeyMoveLeft Key = iota
	KeyMoveRight
	KeyJump
)

func (k Key) String() string {
	switch k {
	case KeyMoveLeft:
		return "move_left"
	case KeyMoveRight:
		return "move_right"
	case KeyJump:
		return "jump"
	default:
		return "unknown"
	}
}

// InputState is the snapshot of held logical keys for one frame.
type InputState struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// Held reports whether k is currently held.
func (s InputState) Held(k Key) bool {
	switch k {
	case KeyMoveLeft:
		return s.MoveLeft
	case KeyMoveRight:
		return s.MoveRight
	case KeyJump:
		return s.Jump
	default:
		return false
	}
}

// Keyboard polls ebiten for keyboard and gamepad state.
type Keyboard struct {
	// PausePressed is true on the frame Escape (or the gamepad start button) was pressed.
	PausePressed bool
	// DebugPressed is true on the frame F3 was pressed.
	DebugPressed bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll reads the current device state and returns the snapshot for this frame.
func (k *Keyboard) Poll() InputState {
	var s InputState
	s.MoveLeft = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	s.MoveRight = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	s.Jump = ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyW) ||
		ebiten.IsKeyPressed(ebiten.KeyUp)

	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	// Gamepad: first connected pad only
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			s.MoveLeft = true
		} else if leftX > 0.3 {
			s.MoveRight = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			s.Jump = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			pause = true
		}
	}

	// opposite directions cancel out
	if s.MoveLeft && s.MoveRight {
		s.MoveLeft, s.MoveRight = false, false
	}

	k.PausePressed = pause
	k.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	return s
}
