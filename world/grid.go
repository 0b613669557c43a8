package world

import (
	"errors"
	"fmt"

	"github.com/milk9111/voxelsandbox/common"
)

var ErrInvalidSize = errors.New("world: invalid grid size")

// Grid is a fixed-size tile map stored row-major. Reads outside the grid
// return Air and writes outside it are dropped.
type Grid struct {
	width  int
	height int
	tiles  []TileType
}

// New allocates an all-air grid.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]TileType, width*height),
	}, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the tile at cell (x, y), or Air when out of bounds.
func (g *Grid) At(x, y int) TileType {
	if g == nil || !g.InBounds(x, y) {
		return Air
	}
	return g.tiles[y*g.width+x]
}

// Set writes t at cell (x, y). It reports false, and changes nothing, when
// the cell is out of bounds.
func (g *Grid) Set(x, y int, t TileType) bool {
	if g == nil || !g.InBounds(x, y) {
		return false
	}
	g.tiles[y*g.width+x] = t
	return true
}

// Tile returns the tile containing the world point (x, y).
func (g *Grid) Tile(x, y float64) TileType {
	return g.At(common.FloorInt(x), common.FloorInt(y))
}

// SetTile writes t into the cell containing the world point (x, y).
func (g *Grid) SetTile(x, y float64, t TileType) bool {
	return g.Set(common.FloorInt(x), common.FloorInt(y), t)
}

func (g *Grid) Solid(x, y int) bool {
	return g.At(x, y).Solid()
}

// SurfaceRow returns the first non-air row in column x, or -1.
func (g *Grid) SurfaceRow(x int) int {
	if g == nil || x < 0 || x >= g.width {
		return -1
	}
	for y := 0; y < g.height; y++ {
		if g.tiles[y*g.width+x] != Air {
			return y
		}
	}
	return -1
}

// Count returns how many cells hold t.
func (g *Grid) Count(t TileType) int {
	n := 0
	for _, v := range g.tiles {
		if v == t {
			n++
		}
	}
	return n
}

func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, tiles: make([]TileType, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}
