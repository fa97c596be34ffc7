package obj

import (
	"fmt"
	"image/color"

	"github.com/milk9111/chargejump/levels"
	"golang.org/x/image/colornames"
)

// LevelView draws a level's tiles onto a Surface.
type LevelView struct {
	level       *levels.Level
	tileSize    float64
	solidColor  color.Color
	hazardColor color.Color
}

func NewLevelView(level *levels.Level, tileSize float64) *LevelView {
	v := &LevelView{
		level:       level,
		tileSize:    tileSize,
		solidColor:  colornames.Steelblue,
		hazardColor: colornames.Crimson,
	}
	if level != nil {
		if c, ok := ParseHexColor(level.Color); ok {
			v.solidColor = c
		}
		if c, ok := ParseHexColor(level.HazardColor); ok {
			v.hazardColor = c
		}
	}
	return v
}

// Draw fills solid tiles and draws hazards as three spikes along the tile floor.
func (v *LevelView) Draw(s Surface) {
	if v == nil || v.level == nil || s == nil {
		return
	}
	size := v.tileSize
	spike := size / 3
	for y := 0; y < v.level.Height; y++ {
		for x := 0; x < v.level.Width; x++ {
			x0, y0 := float64(x)*size, float64(y)*size
			switch v.level.TileAt(x, y) {
			case levels.TileSolid:
				s.SetFillColor(v.solidColor)
				s.FillRect(x0, y0, size, size)
			case levels.TileHazard:
				s.SetFillColor(v.hazardColor)
				for i := 0; i < 3; i++ {
					s.FillRect(x0+float64(i)*spike+spike/4, y0+size/2, spike/2, size/2)
				}
			}
		}
	}
}

// ParseHexColor parses a color in the form #rrggbb.
func ParseHexColor(s string) (color.RGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
}
