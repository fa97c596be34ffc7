package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func useDiskDir(t *testing.T, dir string) {
	t.Helper()
	prev := DiskDir
	DiskDir = dir
	t.Cleanup(func() { DiskDir = prev })
}

func TestLoadEmbeddedCharacterSpec(t *testing.T) {
	useDiskDir(t, t.TempDir())

	spec, err := LoadCharacterSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.MoveAcceleration != 0.3 || spec.JumpAcceleration != -2 || spec.Health != 3 {
		t.Fatalf("unexpected character spec: %+v", spec)
	}
	if spec.SpawnOffsetY != 1 {
		t.Fatalf("expected spawn offset 1, got %v", spec.SpawnOffsetY)
	}
}

func TestLoadEmbeddedWorldSpec(t *testing.T) {
	useDiskDir(t, t.TempDir())

	spec, err := LoadWorldSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Gravity <= 0 || spec.TimeScale != 1 {
		t.Fatalf("unexpected world spec: %+v", spec)
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	useDiskDir(t, dir)
	data := []byte("move_acceleration: 0.5\nmax_move_speed: 8\nfriction: 0.5\njump_acceleration: -3\nmax_jump_velocity: 9\nhealth: 5\n")
	if err := os.WriteFile(filepath.Join(dir, CharacterSpecFile), data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	spec, err := LoadCharacterSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.MoveAcceleration != 0.5 || spec.Health != 5 || spec.MaxJumpVelocity != 9 {
		t.Fatalf("disk spec not used: %+v", spec)
	}
}

func TestCharacterSpecValidate(t *testing.T) {
	valid := CharacterSpec{MaxMoveSpeed: 10, MaxJumpVelocity: 20, JumpAcceleration: -2, Friction: 0.6, Health: 3}
	cases := []struct {
		name   string
		mutate func(s *CharacterSpec)
		ok     bool
	}{
		{"valid", func(s *CharacterSpec) {}, true},
		{"zero_speed", func(s *CharacterSpec) { s.MaxMoveSpeed = 0 }, false},
		{"zero_jump_cap", func(s *CharacterSpec) { s.MaxJumpVelocity = 0 }, false},
		{"downward_jump", func(s *CharacterSpec) { s.JumpAcceleration = 2 }, false},
		{"friction_one", func(s *CharacterSpec) { s.Friction = 1 }, false},
		{"no_health", func(s *CharacterSpec) { s.Health = 0 }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := valid
			c.mutate(&s)
			err := s.Validate()
			if c.ok != (err == nil) {
				t.Fatalf("expected ok=%v, got err=%v", c.ok, err)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	useDiskDir(t, t.TempDir())
	for _, name := range []string{"autopilot", "autopilot.tengo", "scripts/autopilot.tengo", "prefabs/scripts/autopilot.tengo"} {
		t.Run(name, func(t *testing.T) {
			data, err := LoadScript(name)
			if err != nil {
				t.Fatalf("load %q: %v", name, err)
			}
			if len(data) == 0 {
				t.Fatalf("empty script")
			}
		})
	}
}

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, WorldSpecFile)
	if err := os.WriteFile(target, []byte("gravity: 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != target {
			t.Fatalf("expected %s, got %s", target, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if paths := w.Drain(); len(paths) != 0 {
		t.Fatalf("expected no paths after close, got %v", paths)
	}
}
