package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chargejump/common"
	"github.com/milk9111/chargejump/levels"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeHazard
)

const (
	// groundProbeDepth is how far below the feet support is searched for.
	groundProbeDepth = 2.0
	// maxResolvePasses bounds the push-out loop for a single frame.
	maxResolvePasses = 4
)

// WorldTuning holds the forces the collision world applies to airborne characters.
type WorldTuning struct {
	Gravity          float64
	TerminalVelocity float64
}

func DefaultWorldTuning() WorldTuning {
	return WorldTuning{Gravity: common.Gravity, TerminalVelocity: common.TerminalVelocity}
}

// Contact summarizes what a character touched during one Reconcile.
type Contact struct {
	Grounded bool
	// Landed is true only on the frame the character regained support.
	Landed     bool
	Ceiling    bool
	Wall       bool
	Hazard     bool
	OutOfWorld bool
}

// CollisionWorld resolves a character against the static geometry of a
// level. Tiles live in a chipmunk space that is used for spatial queries
// only; the space is never stepped.
type CollisionWorld struct {
	level    *levels.Level
	space    *cp.Space
	tileSize float64
	tuning   WorldTuning
}

func NewCollisionWorld(level *levels.Level, tileSize float64, tuning WorldTuning) *CollisionWorld {
	cw := &CollisionWorld{
		level:    level,
		space:    cp.NewSpace(),
		tileSize: tileSize,
		tuning:   tuning,
	}
	cw.buildStaticShapes()
	return cw
}

func (cw *CollisionWorld) SetTuning(t WorldTuning) {
	if cw == nil {
		return
	}
	cw.tuning = t
}

func (cw *CollisionWorld) Level() *levels.Level {
	if cw == nil {
		return nil
	}
	return cw.level
}

func (cw *CollisionWorld) buildStaticShapes() {
	if cw == nil || cw.space == nil || cw.level == nil {
		return
	}
	lvl := cw.level
	size := cw.tileSize

	// Merge contiguous solid tiles into larger rectangles so queries touch
	// fewer boxes and the floor has no seams between tiles.
	processed := make([]bool, lvl.Width*lvl.Height)
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			idx := y*lvl.Width + x
			if processed[idx] {
				continue
			}
			tileVal := lvl.Tiles[idx]
			if tileVal == levels.TileEmpty {
				processed[idx] = true
				continue
			}

			x0 := float64(x) * size
			y0 := float64(y) * size

			// Hazards stay one sensor per tile.
			if tileVal == levels.TileHazard {
				shape := cp.NewBox2(cw.space.StaticBody, cp.BB{L: x0, B: y0, R: x0 + size, T: y0 + size}, 0)
				shape.SetSensor(true)
				shape.SetCollisionType(collisionTypeHazard)
				cw.space.AddShape(shape)
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < lvl.Width {
				idx2 := y*lvl.Width + (x + w)
				if processed[idx2] || lvl.Tiles[idx2] != levels.TileSolid {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < lvl.Height {
				for xi := x; xi < x+w; xi++ {
					idx2 := (y+h)*lvl.Width + xi
					if processed[idx2] || lvl.Tiles[idx2] != levels.TileSolid {
						break heightLoop
					}
				}
				h++
			}

			bb := cp.BB{L: x0, B: y0, R: x0 + float64(w)*size, T: y0 + float64(h)*size}
			shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
			shape.SetCollisionType(collisionTypeSolid)
			cw.space.AddShape(shape)

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*lvl.Width+xx] = true
				}
			}
		}
	}

	// Walls and ceiling match the level size. The bottom stays open so a
	// character falling through a pit leaves the world.
	worldW, worldH := lvl.PixelSize(size)
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}
	for _, seg := range segments {
		shape := cp.NewSegment(cw.space.StaticBody, seg.a, seg.b, 1)
		shape.SetCollisionType(collisionTypeSolid)
		cw.space.AddShape(shape)
	}
	cw.space.ReindexStatic()
}

// Reconcile pushes c out of solid geometry, updates its grounded flag and
// applies gravity while airborne. It runs after both advance calls and
// before the bounding box is read for rendering.
func (cw *CollisionWorld) Reconcile(c *Character, dt float64) Contact {
	var contact Contact
	if cw == nil || c == nil {
		return contact
	}
	falling := c.VelocityY() > 0

	for pass := 0; pass < maxResolvePasses; pass++ {
		hits := cw.query(toBB(c.BoundingBox()), collisionTypeSolid)
		if len(hits) == 0 {
			break
		}
		cw.pushOut(c, deepest(c.BoundingBox(), hits), &contact)
	}

	contact.Hazard = len(cw.query(toBB(c.BoundingBox()), collisionTypeHazard)) > 0
	if cw.level != nil {
		_, worldH := cw.level.PixelSize(cw.tileSize)
		contact.OutOfWorld = c.Y() > worldH
	}

	supported := c.VelocityY() >= 0 && len(cw.query(groundProbe(c.BoundingBox()), collisionTypeSolid)) > 0
	switch {
	case supported:
		// an idle character re-lands every frame with vy == 0; only a descent counts
		contact.Landed = !c.IsOnGround() && falling
		contact.Grounded = true
		c.SetVelocityY(0)
		c.SetOnGround(true)
	case c.IsOnGround():
		c.SetOnGround(false)
	}

	if !c.IsOnGround() {
		c.SetVelocityY(min(c.VelocityY()+cw.tuning.Gravity*dt, cw.tuning.TerminalVelocity))
	}
	return contact
}

// IsSolidAt reports whether a solid shape overlaps the given box.
func (cw *CollisionWorld) IsSolidAt(box BoundingBox) bool {
	if cw == nil {
		return false
	}
	return len(cw.query(toBB(box), collisionTypeSolid)) > 0
}

// query returns the boxes of solid (or hazard) shapes that overlap bb with
// a non-zero area. Hazards are the only sensors in the space.
func (cw *CollisionWorld) query(bb cp.BB, kind cp.CollisionType) []cp.BB {
	if cw.space == nil {
		return nil
	}
	var hits []cp.BB
	cw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if shape.Sensor() != (kind == collisionTypeHazard) {
			return
		}
		other := shape.BB()
		if !fromBB(bb).Intersects(fromBB(other)) {
			return
		}
		hits = append(hits, other)
	}, nil)
	return hits
}

// pushOut moves c out of solid along the axis of least penetration and
// cancels velocity into the surface.
func (cw *CollisionWorld) pushOut(c *Character, solid cp.BB, contact *Contact) {
	box := c.BoundingBox()
	up := box.DownLeft.Y - solid.B
	down := solid.T - box.UpLeft.Y
	left := box.DownRight.X - solid.L
	right := solid.R - box.UpLeft.X

	if min(up, down) <= min(left, right) {
		if up <= down {
			c.SetY(c.Y() - up)
			if c.VelocityY() > 0 {
				c.SetVelocityY(0)
			}
			return
		}
		c.SetY(c.Y() + down)
		if c.VelocityY() < 0 {
			c.SetVelocityY(0)
		}
		contact.Ceiling = true
		return
	}

	if left <= right {
		c.SetX(c.X() - left)
	} else {
		c.SetX(c.X() + right)
	}
	c.SetVelocityX(0)
	contact.Wall = true
}

func deepest(box BoundingBox, hits []cp.BB) cp.BB {
	bb := toBB(box)
	best := hits[0]
	bestArea := 0.0
	for _, h := range hits {
		area := overlapX(bb, h) * overlapY(bb, h)
		if area > bestArea {
			best, bestArea = h, area
		}
	}
	return best
}

func fromBB(bb cp.BB) BoundingBox {
	return BoundingBox{
		UpLeft:    Point{X: bb.L, Y: bb.B},
		UpRight:   Point{X: bb.R, Y: bb.B},
		DownRight: Point{X: bb.R, Y: bb.T},
		DownLeft:  Point{X: bb.L, Y: bb.T},
	}
}

func toBB(box BoundingBox) cp.BB {
	return cp.BB{L: box.UpLeft.X, B: box.UpLeft.Y, R: box.DownRight.X, T: box.DownRight.Y}
}

// groundProbe is a thin strip just under the feet, inset from the sides so
// a wall alongside does not count as support.
func groundProbe(box BoundingBox) cp.BB {
	return cp.BB{
		L: box.DownLeft.X + 1,
		B: box.DownLeft.Y,
		R: box.DownRight.X - 1,
		T: box.DownLeft.Y + groundProbeDepth,
	}
}

func overlapX(a, b cp.BB) float64 { return min(a.R, b.R) - max(a.L, b.L) }
func overlapY(a, b cp.BB) float64 { return min(a.T, b.T) - max(a.B, b.B) }
