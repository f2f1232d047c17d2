// Package level loads level layouts, either from the built-in literal or from
// YAML files on disk, and turns them into tile grids.
package level

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/tileworld/internal/core/geom"
	"chosenoffset.com/tileworld/internal/world/tile"
)

// Glyphs used in level files.
const (
	GlyphSolid = '#'
	GlyphEmpty = '.'
	GlyphSpawn = 'P'
)

var (
	// ErrEmpty is returned for a level without rows or columns.
	ErrEmpty = errors.New("level has no cells")
	// ErrRagged is returned when level rows differ in length.
	ErrRagged = errors.New("level rows have different lengths")
)

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}

// Level is a parsed, validated level layout.
type Level struct {
	Name     string
	TileSize int
	Solid    [][]bool
	Spawn    Cell
	HasSpawn bool
}

// fileData is the on-disk YAML representation.
type fileData struct {
	Name     string   `yaml:"name"`
	TileSize *int     `yaml:"tile_size"` // nil means tile.DefaultSize
	Rows     []string `yaml:"rows"` // '#' solid, '.' empty, 'P' spawn
}

// Load reads and parses a level file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level in %s: %w", path, err)
	}
	return lvl, nil
}

// Parse decodes a YAML level document.
func Parse(data []byte) (*Level, error) {
	var fd fileData
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	size := tile.DefaultSize
	if fd.TileSize != nil {
		size = *fd.TileSize
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid tile size: %d", size)
	}
	if len(fd.Rows) == 0 || strings.TrimRight(fd.Rows[0], " \t") == "" {
		return nil, ErrEmpty
	}

	lvl := &Level{
		Name:     fd.Name,
		TileSize: size,
		Solid:    make([][]bool, len(fd.Rows)),
	}

	width := len(strings.TrimRight(fd.Rows[0], " \t"))
	for y, row := range fd.Rows {
		row = strings.TrimRight(row, " \t")
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", y, len(row), width, ErrRagged)
		}
		lvl.Solid[y] = make([]bool, width)
		for x, glyph := range row {
			switch glyph {
			case GlyphSolid:
				lvl.Solid[y][x] = true
			case GlyphEmpty:
			case GlyphSpawn:
				if lvl.HasSpawn {
					return nil, fmt.Errorf("second spawn point at (%d, %d)", x, y)
				}
				lvl.Spawn = Cell{Col: x, Row: y}
				lvl.HasSpawn = true
			default:
				return nil, fmt.Errorf("unknown glyph %q at (%d, %d)", glyph, x, y)
			}
		}
	}

	return lvl, nil
}

// FromMatrix builds a level from a 0/1 matrix, 1 meaning solid.
func FromMatrix(name string, m [][]int) (*Level, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, ErrEmpty
	}

	lvl := &Level{
		Name:     name,
		TileSize: tile.DefaultSize,
		Solid:    make([][]bool, len(m)),
	}
	for y, row := range m {
		if len(row) != len(m[0]) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", y, len(row), len(m[0]), ErrRagged)
		}
		lvl.Solid[y] = make([]bool, len(row))
		for x, v := range row {
			lvl.Solid[y][x] = v == 1
		}
	}
	return lvl, nil
}

// Cols returns the level width in cells.
func (l *Level) Cols() int { return len(l.Solid[0]) }

// Rows returns the level height in cells.
func (l *Level) Rows() int { return len(l.Solid) }

// SpawnPoint returns the declared spawn cell, or the first empty cell in
// row-major order when none was declared.
func (l *Level) SpawnPoint() (Cell, bool) {
	if l.HasSpawn {
		return l.Spawn, true
	}
	for y, row := range l.Solid {
		for x, s := range row {
			if !s {
				return Cell{Col: x, Row: y}, true
			}
		}
	}
	return Cell{}, false
}

// SpawnPosition returns the world position of the spawn cell's top-left corner.
func (l *Level) SpawnPosition() (geom.Vec2, bool) {
	c, ok := l.SpawnPoint()
	if !ok {
		return geom.Vec2{}, false
	}
	return geom.Vec2{X: float64(c.Col * l.TileSize), Y: float64(c.Row * l.TileSize)}, true
}

// Grid builds the tile grid for the level.
func (l *Level) Grid() (*tile.Grid, error) {
	return tile.NewGrid(l.Solid, l.TileSize)
}

// Marshal renders the level back into its YAML file form.
func (l *Level) Marshal() ([]byte, error) {
	size := l.TileSize
	fd := fileData{Name: l.Name, TileSize: &size}
	for y, row := range l.Solid {
		var b strings.Builder
		for x, s := range row {
			switch {
			case l.HasSpawn && l.Spawn == (Cell{Col: x, Row: y}):
				b.WriteRune(GlyphSpawn)
			case s:
				b.WriteRune(GlyphSolid)
			default:
				b.WriteRune(GlyphEmpty)
			}
		}
		fd.Rows = append(fd.Rows, b.String())
	}
	return yaml.Marshal(&fd)
}
