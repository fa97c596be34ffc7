package obj

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// BoundingBox is the axis-aligned square footprint of a character.
type BoundingBox struct {
	UpLeft    Point
	UpRight   Point
	DownRight Point
	DownLeft  Point
}

// NewBoundingBox returns the box of a size x size square whose top-left corner is at p.
func NewBoundingBox(p Point, size float64) BoundingBox {
	return BoundingBox{
		UpLeft:    p,
		UpRight:   Point{X: p.X + size, Y: p.Y},
		DownRight: Point{X: p.X + size, Y: p.Y + size},
		DownLeft:  Point{X: p.X, Y: p.Y + size},
	}
}

func (b BoundingBox) Width() float64  { return b.UpRight.X - b.UpLeft.X }
func (b BoundingBox) Height() float64 { return b.DownLeft.Y - b.UpLeft.Y }

// Intersects reports whether the two boxes overlap with a non-zero area.
// Boxes that only share an edge do not intersect.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.UpLeft.X < other.UpRight.X &&
		b.UpRight.X > other.UpLeft.X &&
		b.UpLeft.Y < other.DownLeft.Y &&
		b.DownLeft.Y > other.UpLeft.Y
}
