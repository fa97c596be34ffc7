package component

// Health is an integer life counter that never drops below zero.
type Health struct {
	Max     int
	Current int

	OnLoseLife func(h *Health)
	OnDeath    func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsDead reports whether no lives remain.
func (h *Health) IsDead() bool {
	return h == nil || h.Current == 0
}

// LoseLife removes one life. Calling it on a dead Health does nothing.
func (h *Health) LoseLife() {
	if h == nil || h.Current <= 0 {
		return
	}
	h.Current--
	if h.OnLoseLife != nil {
		h.OnLoseLife(h)
	}
	if h.Current == 0 && h.OnDeath != nil {
		h.OnDeath(h)
	}
}

// Reset restores health to Max.
func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Max
}

// CurrentHP returns the current health value.
func (h *Health) CurrentHP() int {
	if h == nil {
		return 0
	}
	return h.Current
}

// SetCurrentHP sets the current health value and clamps to [0, Max].
func (h *Health) SetCurrentHP(v int) {
	if h == nil {
		return
	}
	h.Current = v
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
