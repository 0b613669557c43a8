package worldgen

import "github.com/milk9111/voxelsandbox/world"

// tileMap is the part of *world.Grid tree stamping needs.
type tileMap interface {
	InBounds(x, y int) bool
	At(x, y int) world.TileType
	Set(x, y int, t world.TileType) bool
}

// plantTrees walks the columns left to right and stamps a tree on grass with
// probability cfg.Chance, keeping cfg.Spacing columns between trunks.
// It returns the number of trees planted.
func plantTrees(grid tileMap, ground []int, cfg TreeConfig, rng Rand) int {
	if cfg.Chance <= 0 {
		return 0
	}
	planted := 0
	last := -cfg.Spacing
	for x, g := range ground {
		if planted > 0 && x-last < cfg.Spacing {
			continue
		}
		if rng.Float64() >= cfg.Chance {
			continue
		}
		if grid.At(x, g) != world.Grass {
			continue
		}
		trunk := cfg.TrunkMin + rng.IntN(cfg.TrunkMax-cfg.TrunkMin+1)
		stampTree(grid, x, g, trunk, cfg.CanopyRadius)
		last = x
		planted++
	}
	return planted
}

// stampTree writes a wood trunk of the given height on top of the ground row
// and a diamond of leaves around the trunk top. Leaves only fill air, and
// every write is clipped to the grid.
func stampTree(grid tileMap, x, ground, trunk, radius int) {
	top := ground - trunk
	for y := ground - 1; y >= top; y-- {
		if grid.InBounds(x, y) {
			grid.Set(x, y, world.Wood)
		}
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if abs(dx)+abs(dy) >= radius+1 {
				continue
			}
			cx, cy := x+dx, top+dy
			if !grid.InBounds(cx, cy) || grid.At(cx, cy) != world.Air {
				continue
			}
			grid.Set(cx, cy, world.Leaf)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
