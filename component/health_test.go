package component

import "testing"

func TestHealthLoseLife(t *testing.T) {
	cases := []struct {
		name     string
		max      int
		losses   int
		wantHP   int
		wantDead bool
	}{
		{"untouched", 3, 0, 3, false},
		{"one_hit", 3, 1, 2, false},
		{"exactly_dead", 3, 3, 0, true},
		{"overkill_clamps", 3, 7, 0, true},
		{"zero_max_becomes_one", 0, 1, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHealth(c.max)
			for i := 0; i < c.losses; i++ {
				h.LoseLife()
			}
			if h.CurrentHP() != c.wantHP {
				t.Fatalf("expected hp %d, got %d", c.wantHP, h.CurrentHP())
			}
			if h.IsDead() != c.wantDead {
				t.Fatalf("expected dead=%v, got %v", c.wantDead, h.IsDead())
			}
		})
	}
}

func TestHealthCallbacks(t *testing.T) {
	h := NewHealth(2)
	var lost, died int
	h.OnLoseLife = func(*Health) { lost++ }
	h.OnDeath = func(*Health) { died++ }

	for i := 0; i < 4; i++ {
		h.LoseLife()
	}
	if lost != 2 {
		t.Fatalf("expected 2 lose-life callbacks, got %d", lost)
	}
	if died != 1 {
		t.Fatalf("expected exactly one death callback, got %d", died)
	}

	h.Reset()
	if h.IsDead() || h.CurrentHP() != 2 {
		t.Fatalf("expected reset to restore full health, got %d", h.CurrentHP())
	}
}

func TestHealthSetCurrentHPClamps(t *testing.T) {
	h := NewHealth(3)
	h.SetCurrentHP(-2)
	if h.CurrentHP() != 0 {
		t.Fatalf("expected clamp to 0, got %d", h.CurrentHP())
	}
	h.SetCurrentHP(9)
	if h.CurrentHP() != 3 {
		t.Fatalf("expected clamp to max, got %d", h.CurrentHP())
	}
}

func TestNilHealth(t *testing.T) {
	var h *Health
	h.LoseLife()
	h.Reset()
	if !h.IsDead() || h.CurrentHP() != 0 {
		t.Fatalf("nil health should read as dead with zero hp")
	}
}
