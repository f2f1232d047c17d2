// Package tile implements the static tile grid that the level is built from.
// Tiles are both what gets drawn and what blocks movement.
package tile

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/tileworld/internal/core/geom"
)

// DefaultSize is the edge length of a tile in pixels.
const DefaultSize = 64

// DefaultColor is the fill used for solid tiles.
var DefaultColor = color.RGBA{200, 200, 200, 255}

var (
	// ErrEmpty is returned when a grid has no rows or no columns.
	ErrEmpty = errors.New("tile grid is empty")
	// ErrRagged is returned when grid rows differ in length.
	ErrRagged = errors.New("tile grid rows have different lengths")
)

// Tile is a static axis-aligned solid block.
type Tile struct {
	Col, Row int
	Rect     geom.Rect
	Color    color.RGBA
}

// Grid is a rectangular field of cells, some of which hold a solid tile.
type Grid struct {
	size  int
	cols  int
	rows  int
	solid [][]bool
	tiles []Tile
	color color.RGBA
}

// NewGrid builds a grid from a row-major solidity matrix.
func NewGrid(solid [][]bool, size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid tile size: %d", size)
	}
	if len(solid) == 0 || len(solid[0]) == 0 {
		return nil, ErrEmpty
	}

	cols := len(solid[0])
	g := &Grid{
		size:  size,
		cols:  cols,
		rows:  len(solid),
		solid: make([][]bool, len(solid)),
		color: DefaultColor,
	}

	for y, row := range solid {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", y, len(row), cols, ErrRagged)
		}
		g.solid[y] = append([]bool(nil), row...)
		for x, s := range row {
			if !s {
				continue
			}
			g.tiles = append(g.tiles, Tile{
				Col:   x,
				Row:   y,
				Rect:  geom.NewRect(float64(x*size), float64(y*size), float64(size), float64(size)),
				Color: g.color,
			})
		}
	}

	return g, nil
}

// Size returns the tile edge length in pixels.
func (g *Grid) Size() int { return g.size }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Width returns the level width in pixels.
func (g *Grid) Width() float64 { return float64(g.cols * g.size) }

// Height returns the level height in pixels.
func (g *Grid) Height() float64 { return float64(g.rows * g.size) }

// Bounds returns the level rectangle in world coordinates.
func (g *Grid) Bounds() geom.Rect {
	return geom.NewRect(0, 0, g.Width(), g.Height())
}

// Tiles returns every solid tile in row-major order.
func (g *Grid) Tiles() []Tile { return g.tiles }

// IsSolid reports whether the cell holds a tile. Cells outside the grid are empty.
func (g *Grid) IsSolid(col, row int) bool {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return false
	}
	return g.solid[row][col]
}

// CellAt returns the cell containing p.
func (g *Grid) CellAt(p geom.Vec2) (col, row int, ok bool) {
	col = int(math.Floor(p.X / float64(g.size)))
	row = int(math.Floor(p.Y / float64(g.size)))
	ok = col >= 0 && col < g.cols && row >= 0 && row < g.rows
	return col, row, ok
}

// Overlapping returns the solid tiles that strictly overlap r. Only the cells
// r covers are inspected.
func (g *Grid) Overlapping(r geom.Rect) []Tile {
	size := float64(g.size)
	minCol := max(int(math.Floor(r.X/size)), 0)
	minRow := max(int(math.Floor(r.Y/size)), 0)
	maxCol := min(int(math.Ceil(r.Right()/size))-1, g.cols-1)
	maxRow := min(int(math.Ceil(r.Bottom()/size))-1, g.rows-1)

	var hits []Tile
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !g.solid[row][col] {
				continue
			}
			t := g.tileAt(col, row)
			if t.Rect.Overlaps(r) {
				hits = append(hits, t)
			}
		}
	}
	return hits
}

// RectFree reports whether r overlaps no solid tile.
func (g *Grid) RectFree(r geom.Rect) bool {
	return len(g.Overlapping(r)) == 0
}

func (g *Grid) tileAt(col, row int) Tile {
	size := float64(g.size)
	return Tile{
		Col:   col,
		Row:   row,
		Rect:  geom.NewRect(float64(col)*size, float64(row)*size, size, size),
		Color: g.color,
	}
}
