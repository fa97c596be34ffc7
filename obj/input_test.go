package obj

import "testing"

func TestInputStateHeld(t *testing.T) {
	in := InputState{MoveLeft: true, Jump: true}
	cases := []struct {
		key  Key
		want bool
	}{
		{KeyMoveLeft, true},
		{KeyMoveRight, false},
		{KeyJump, true},
		{Key(99), false},
	}
	for _, c := range cases {
		if got := in.Held(c.key); got != c.want {
			t.Errorf("Held(%s) = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	names := map[Key]string{
		KeyMoveLeft:  "move_left",
		KeyMoveRight: "move_right",
		KeyJump:      "jump",
		Key(-1):      "unknown",
	}
	for k, want := range names {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestKeyboardBeforePoll(t *testing.T) {
	k := NewKeyboard()
	if k.PausePressed || k.DebugPressed {
		t.Fatalf("expected no edge presses before the first poll")
	}
}
