package worldgen

import (
	"fmt"
	"math"

	"github.com/milk9111/voxelsandbox/world"
)

// Generate builds a new world from cfg, drawing all randomness from rng.
func Generate(cfg Config, rng Rand) (*world.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := world.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("worldgen: %w", err)
	}

	ground, err := groundRows(cfg, rng)
	if err != nil {
		return nil, err
	}

	for x, g := range ground {
		fillColumn(grid, x, g, cfg, rng)
	}
	plantTrees(grid, ground, cfg.Trees, rng)
	return grid, nil
}

// groundRows evaluates the configured profile and clamps every row into the
// grid.
func groundRows(cfg Config, rng Rand) ([]int, error) {
	shape := cfg.Shape
	if cfg.RandomPhase {
		shape.Phase += rng.Float64() * 2 * math.Pi
	}

	var profile Profile
	switch {
	case len(cfg.Script) > 0:
		p, err := NewScriptProfile(cfg.Script, shape)
		if err != nil {
			return nil, err
		}
		profile = p
	case shape.Roughness > 0:
		profile = NewNoiseProfile(shape, rng.Int64())
	default:
		profile = SineProfile{Shape: shape}
	}

	rows, err := profile.Rows(cfg.Width)
	if err != nil {
		return nil, err
	}
	if len(rows) != cfg.Width {
		return nil, fmt.Errorf("%w: profile returned %d rows for width %d", ErrInvalidConfig, len(rows), cfg.Width)
	}
	for x, r := range rows {
		rows[x] = min(max(r, 0), cfg.Height-1)
	}
	return rows, nil
}

// fillColumn lays down air, grass, dirt and stone for one column and
// scatters ore through the stone.
func fillColumn(grid *world.Grid, x, ground int, cfg Config, rng Rand) {
	stoneTop := ground + 1 + cfg.DirtDepth
	for y := 0; y < cfg.Height; y++ {
		switch {
		case y < ground:
			grid.Set(x, y, world.Air)
		case y == ground:
			grid.Set(x, y, world.Grass)
		case y < stoneTop:
			grid.Set(x, y, world.Dirt)
		default:
			grid.Set(x, y, oreAt(y-stoneTop, cfg.Ores, rng))
		}
	}
}

// oreAt rolls every ore rule independently; later rules win.
func oreAt(depth int, ores []OreRule, rng Rand) world.TileType {
	tile := world.Stone
	for _, ore := range ores {
		if depth < ore.MinDepth || ore.Chance <= 0 {
			continue
		}
		if rng.Float64() < ore.Chance {
			tile = ore.Tile
		}
	}
	return tile
}
