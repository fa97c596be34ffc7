package obj

// Simulation owns one character in one collision world and advances them a
// frame at a time. Hazards and falling out of the world cost a life and
// send the character back to Spawn.
type Simulation struct {
	Character *Character
	World     *CollisionWorld
	Spawn     Point
	TimeScale float64

	frames int
	last   Contact
}

func NewSimulation(c *Character, cw *CollisionWorld, spawn Point) *Simulation {
	return &Simulation{Character: c, World: cw, Spawn: spawn, TimeScale: 1}
}

// Step runs one frame: horizontal then vertical movement, collision
// reconciliation, then the bounding box rebuild. A dead character does not move.
func (s *Simulation) Step(in InputState) Contact {
	c := s.Character
	if c.IsDead() {
		return Contact{}
	}
	dt := s.TimeScale
	if dt <= 0 {
		dt = 1
	}
	s.frames++

	c.AdvanceHorizontal(dt, in)
	c.AdvanceVertical(dt, in)
	contact := s.World.Reconcile(c, dt)
	if contact.Hazard || contact.OutOfWorld {
		c.LoseLife()
		if !c.IsDead() {
			c.Respawn(s.Spawn)
		}
	}
	c.RecomputeBoundingBox()

	s.last = contact
	return contact
}

// Restart refills health and returns the character to Spawn.
func (s *Simulation) Restart() {
	s.Character.RestoreHealth()
	s.Character.Respawn(s.Spawn)
	s.frames = 0
	s.last = Contact{}
}

// SpawnBlocked reports whether the respawn footprint overlaps solid tiles.
func (s *Simulation) SpawnBlocked() bool {
	t := s.Character.Tuning()
	at := Point{X: s.Spawn.X, Y: s.Spawn.Y - t.SpawnOffsetY}
	return s.World.IsSolidAt(NewBoundingBox(at, t.TileSize))
}

func (s *Simulation) Frames() int          { return s.frames }
func (s *Simulation) LastContact() Contact { return s.last }
