package obj

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// HitFlash is a full-screen tint that fades out after the character loses a life.
type HitFlash struct {
	Color color.NRGBA

	tween *gween.Tween
	alpha float64
}

func NewHitFlash(c color.NRGBA) *HitFlash {
	return &HitFlash{Color: c}
}

// Trigger restarts the fade at full strength. duration is in seconds.
func (f *HitFlash) Trigger(duration float32) {
	f.tween = gween.New(1, 0, duration, ease.OutQuad)
	f.alpha = 1
}

// Update advances the fade by dt seconds.
func (f *HitFlash) Update(dt float32) {
	if f == nil || f.tween == nil {
		return
	}
	v, done := f.tween.Update(dt)
	f.alpha = float64(v)
	if done {
		f.tween = nil
		f.alpha = 0
	}
}

func (f *HitFlash) Active() bool { return f != nil && f.alpha > 0 }
func (f *HitFlash) Alpha() float64 {
	if f == nil {
		return 0
	}
	return f.alpha
}

// Draw tints a w x h area from the origin, scaled by the current alpha.
func (f *HitFlash) Draw(s Surface, w, h float64) {
	if !f.Active() || s == nil {
		return
	}
	c := f.Color
	c.A = uint8(float64(c.A) * f.alpha)
	s.SetFillColor(c)
	s.FillRect(0, 0, w, h)
}
