package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Tile values stored in Level.Tiles.
const (
	TileEmpty  = 0
	TileSolid  = 1
	TileHazard = 2
)

// DefaultLevel is loaded when no level is requested.
const DefaultLevel = "meadow.json"

// Level is a single-layer tile map stored as JSON. Tiles is row-major with
// Width*Height entries; spawn coordinates are in tiles.
type Level struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Tiles       []int  `json:"tiles"`
	SpawnX      int    `json:"spawn_x"`
	SpawnY      int    `json:"spawn_y"`
	Color       string `json:"color,omitempty"`
	HazardColor string `json:"hazard_color,omitempty"`
}

// LoadLevelFromFS reads an embedded level by name (".json" optional).
func LoadLevelFromFS(name string) (*Level, error) {
	clean := cleanLevelName(name)
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return parse(clean, data)
}

// LoadLevel reads a level from disk, falling back to the embedded copy of
// the same base name.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if lvl, embedErr := LoadLevelFromFS(filepath.Base(path)); embedErr == nil {
			return lvl, nil
		}
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return parse(path, data)
}

func parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(name), ".json")
	}
	return &lvl, nil
}

// Validate checks dimensions, tile count, tile values and spawn bounds.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid level dimensions: %dx%d", l.Width, l.Height)
	}
	if len(l.Tiles) != l.Width*l.Height {
		return fmt.Errorf("expected %d tiles, got %d", l.Width*l.Height, len(l.Tiles))
	}
	for i, v := range l.Tiles {
		if v < TileEmpty || v > TileHazard {
			return fmt.Errorf("unknown tile value %d at index %d", v, i)
		}
	}
	if l.SpawnX < 0 || l.SpawnX >= l.Width || l.SpawnY < 0 || l.SpawnY >= l.Height {
		return fmt.Errorf("spawn (%d,%d) outside level", l.SpawnX, l.SpawnY)
	}
	return nil
}

// TileAt returns the tile at tile coordinates, or TileEmpty out of bounds.
func (l *Level) TileAt(x, y int) int {
	if l == nil || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return TileEmpty
	}
	return l.Tiles[y*l.Width+x]
}

// SpawnPoint returns the spawn's top-left corner in world units.
func (l *Level) SpawnPoint(tileSize float64) (float64, float64) {
	if l == nil {
		return 0, 0
	}
	return float64(l.SpawnX) * tileSize, float64(l.SpawnY) * tileSize
}

// PixelSize returns the level extent in world units.
func (l *Level) PixelSize(tileSize float64) (float64, float64) {
	if l == nil {
		return 0, 0
	}
	return float64(l.Width) * tileSize, float64(l.Height) * tileSize
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "levels/")
	if s == "" {
		s = DefaultLevel
	}
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
