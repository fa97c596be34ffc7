package obj

import (
	"image/color"
	"testing"
)

type rect struct{ x, y, w, h float64 }

// recordingSurface keeps every draw call for inspection.
type recordingSurface struct {
	stroke    color.Color
	fill      color.Color
	lineWidth float64
	strokes   []rect
	fills     []rect
}

func (r *recordingSurface) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *recordingSurface) SetLineWidth(w float64)       { r.lineWidth = w }
func (r *recordingSurface) SetFillColor(c color.Color)   { r.fill = c }

func (r *recordingSurface) StrokeRect(x, y, w, h float64) {
	r.strokes = append(r.strokes, rect{x, y, w, h})
}

func (r *recordingSurface) FillRect(x, y, w, h float64) {
	r.fills = append(r.fills, rect{x, y, w, h})
}

func TestRenderFacing(t *testing.T) {
	// 36 keeps feature math exact: f = 6
	tuning := DefaultTuning()
	tuning.TileSize = 36
	tuning.SpawnOffsetY = 0

	cases := []struct {
		name  string
		vx    float64
		fills []rect
	}{
		{"idle_faces_right", 0, []rect{{12, 6, 6, 6}, {24, 6, 6, 6}, {12, 18, 18, 6}}},
		{"moving_right", 3, []rect{{12, 6, 6, 6}, {24, 6, 6, 6}, {12, 18, 18, 6}}},
		{"moving_left", -0.1, []rect{{6, 6, 6, 6}, {18, 6, 6, 6}, {6, 18, 18, 6}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ch := NewCharacter(Point{}, tuning)
			ch.SetVelocityX(c.vx)
			s := &recordingSurface{}
			ch.Render(s)

			if len(s.strokes) != 1 || s.strokes[0] != (rect{0, 0, 36, 36}) {
				t.Fatalf("expected one tile outline at origin, got %+v", s.strokes)
			}
			if s.lineWidth != 2 {
				t.Fatalf("expected line width 2, got %v", s.lineWidth)
			}
			if s.stroke != tuning.Color || s.fill != tuning.Color {
				t.Fatalf("expected body color %v, got stroke=%v fill=%v", tuning.Color, s.stroke, s.fill)
			}
			if len(s.fills) != len(c.fills) {
				t.Fatalf("expected %d features, got %d", len(c.fills), len(s.fills))
			}
			for i := range c.fills {
				if s.fills[i] != c.fills[i] {
					t.Fatalf("feature %d: expected %+v, got %+v", i, c.fills[i], s.fills[i])
				}
			}
		})
	}
}

func TestRenderUsesBoundingBoxOrigin(t *testing.T) {
	tuning := DefaultTuning()
	tuning.TileSize = 36
	ch := NewCharacter(Point{X: 100, Y: 50}, tuning)
	s := &recordingSurface{}
	ch.Render(s)
	if s.strokes[0] != (rect{100, 49, 36, 36}) {
		t.Fatalf("expected outline at (100,49), got %+v", s.strokes[0])
	}
	if s.fills[0] != (rect{112, 55, 6, 6}) {
		t.Fatalf("expected left eye at (112,55), got %+v", s.fills[0])
	}
}

func TestRenderNilSurface(t *testing.T) {
	ch := NewCharacter(Point{}, DefaultTuning())
	ch.Render(nil)

	var img *ImageSurface
	ch.Render(img)
	img.StrokeRect(0, 0, 1, 1)
	img.FillRect(0, 0, 1, 1)
	NewImageSurface(nil).FillRect(0, 0, 1, 1)
}
