package obj

import (
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestLevelViewDraw(t *testing.T) {
	lvl := testLevel()
	v := NewLevelView(lvl, 36)
	s := &recordingSurface{}
	v.Draw(s)

	// 9 solid tiles plus three spikes for the single hazard
	if len(s.fills) != 12 {
		t.Fatalf("expected 12 fills, got %d", len(s.fills))
	}
	if s.fills[0] != (rect{36, 72, 36, 36}) {
		t.Fatalf("expected the floating block first, got %+v", s.fills[0])
	}
	spikes := []rect{{111, 162, 6, 18}, {123, 162, 6, 18}, {135, 162, 6, 18}}
	for i, want := range spikes {
		if got := s.fills[2+i]; got != want {
			t.Fatalf("spike %d: expected %+v, got %+v", i, want, got)
		}
	}
	if s.fill != colornames.Steelblue {
		t.Fatalf("expected default solid color, got %v", s.fill)
	}
	if len(s.strokes) != 0 {
		t.Fatalf("level tiles are filled, not stroked")
	}
}

func TestLevelViewUsesLevelColors(t *testing.T) {
	lvl := testLevel()
	lvl.Color = "#102030"
	s := &recordingSurface{}
	NewLevelView(lvl, 32).Draw(s)

	want := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	if s.fill != want {
		t.Fatalf("expected %v, got %v", want, s.fill)
	}
}

func TestLevelViewNil(t *testing.T) {
	NewLevelView(nil, 32).Draw(&recordingSurface{})

	var v *LevelView
	v.Draw(&recordingSurface{})
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#39658c", color.RGBA{R: 0x39, G: 0x65, B: 0x8c, A: 0xff}, true},
		{"#FFFFFF", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true},
		{"39658c", color.RGBA{}, false},
		{"#3965", color.RGBA{}, false},
		{"#zz658c", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, c := range cases {
		got, ok := ParseHexColor(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseHexColor(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}
