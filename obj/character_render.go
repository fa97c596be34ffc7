package obj

// Render draws the body outline and the face. Features sit on the right half
// of the face unless the character is moving left.
func (c *Character) Render(s Surface) {
	if s == nil {
		return
	}
	size := c.tuning.TileSize
	origin := c.bbox.UpLeft

	s.SetStrokeColor(c.tuning.Color)
	s.SetLineWidth(c.tuning.LineWidth)
	s.StrokeRect(origin.X, origin.Y, size, size)

	s.SetFillColor(c.tuning.Color)
	f := size / 6
	// column of the left eye and mouth, in feature units
	col := 2.0
	if c.FacingLeft() {
		col = 1
	}
	s.FillRect(origin.X+col*f, origin.Y+f, f, f)     // left eye
	s.FillRect(origin.X+(col+2)*f, origin.Y+f, f, f) // right eye
	s.FillRect(origin.X+col*f, origin.Y+3*f, 3*f, f) // mouth
}
