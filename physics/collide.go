package physics

import (
	"github.com/milk9111/voxelsandbox/common"
)

// TileSource answers solidity queries for grid cells. Out-of-range cells
// must report false. *world.Grid satisfies it.
type TileSource interface {
	Solid(x, y int) bool
	Width() int
	Height() int
}

// forEachSolid calls fn for every solid cell in the window around box: one
// cell of margin on every side of the cells the box covers. Cells are
// visited row by row, top to bottom and left to right.
func forEachSolid(box common.Rect, tiles TileSource, fn func(cell common.Rect)) {
	minX := common.FloorInt(box.X) - 1
	maxX := common.FloorInt(box.Right()) + 1
	minY := common.FloorInt(box.Y) - 1
	maxY := common.FloorInt(box.Bottom()) + 1

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if tiles.Solid(x, y) {
				fn(common.CellRect(x, y))
			}
		}
	}
}

// resolveX pushes the box out of every solid tile it overlaps after a
// horizontal move, against the direction of travel.
func resolveX(p *Player, tiles TileSource) bool {
	vx := p.Vel.X
	if vx == 0 {
		return false
	}
	hit := false
	forEachSolid(p.Box(), tiles, func(cell common.Rect) {
		if !p.Box().Intersects(cell) {
			return
		}
		if vx > 0 {
			p.Pos.X = cell.X - p.Width
		} else {
			p.Pos.X = cell.Right()
		}
		hit = true
	})
	if hit {
		p.Vel.X = 0
	}
	return hit
}

// resolveY is the vertical counterpart of resolveX. Landing on a tile sets
// Grounded.
func resolveY(p *Player, tiles TileSource) (ceiling, ground bool) {
	vy := p.Vel.Y
	if vy == 0 {
		return false, false
	}
	forEachSolid(p.Box(), tiles, func(cell common.Rect) {
		if !p.Box().Intersects(cell) {
			return
		}
		if vy > 0 {
			p.Pos.Y = cell.Y - p.Height
			p.Grounded = true
			ground = true
		} else {
			p.Pos.Y = cell.Bottom()
			ceiling = true
		}
	})
	if ground || ceiling {
		p.Vel.Y = 0
	}
	return ceiling, ground
}

// Overlaps reports whether box intersects any solid tile.
func Overlaps(box common.Rect, tiles TileSource) bool {
	found := false
	forEachSolid(box, tiles, func(cell common.Rect) {
		if box.Intersects(cell) {
			found = true
		}
	})
	return found
}
