package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// DebugDraw outlines every static shape of the world: solids in blue,
// hazard sensors in yellow.
func (cw *CollisionWorld) DebugDraw(s *ImageSurface) {
	if cw == nil || cw.space == nil || s == nil || s.Image == nil {
		return
	}
	cp.DrawSpace(cw.space, &shapeOutliner{surface: s})
}

type shapeOutliner struct {
	surface *ImageSurface
}

func (d *shapeOutliner) line(a, b cp.Vector, c cp.FColor) {
	s := d.surface
	vector.StrokeLine(s.Image,
		float32(a.X-s.OffsetX), float32(a.Y-s.OffsetY),
		float32(b.X-s.OffsetX), float32(b.Y-s.OffsetY),
		1, fcolorToRGBA(c), false)
}

func (d *shapeOutliner) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.DrawDot(radius*2, pos, outline, data)
}

func (d *shapeOutliner) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fill)
}

func (d *shapeOutliner) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, outline)
}

func (d *shapeOutliner) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], outline)
	}
}

func (d *shapeOutliner) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	l := size / 2
	d.line(cp.Vector{X: pos.X - l, Y: pos.Y}, cp.Vector{X: pos.X + l, Y: pos.Y}, fill)
	d.line(cp.Vector{X: pos.X, Y: pos.Y - l}, cp.Vector{X: pos.X, Y: pos.Y + l}, fill)
}

func (d *shapeOutliner) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *shapeOutliner) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *shapeOutliner) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape != nil && shape.Sensor() {
		return cp.FColor{R: 1.0, G: 0.85, B: 0.2, A: 1.0}
	}
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *shapeOutliner) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *shapeOutliner) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *shapeOutliner) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		return uint8(min(max(v, 0), 1) * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
