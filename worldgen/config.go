package worldgen

import (
	"errors"
	"fmt"

	"github.com/milk9111/voxelsandbox/world"
)

var ErrInvalidConfig = errors.New("worldgen: invalid config")

// Shape describes the ground height profile. Rows grow downward, so a larger
// Base means a lower horizon.
type Shape struct {
	Base       int
	Amplitude  float64
	Wavelength float64
	Phase      float64
	// Roughness adds simplex noise on top of the sine. 0 disables it.
	Roughness float64
}

// OreRule substitutes Tile for stone with probability Chance in cells at
// least MinDepth rows below the top of the stone layer.
type OreRule struct {
	Tile     world.TileType
	Chance   float64
	MinDepth int
}

type TreeConfig struct {
	Chance float64
	// Spacing is the minimum column distance between two trunks.
	Spacing      int
	TrunkMin     int
	TrunkMax     int
	CanopyRadius int
}

type Config struct {
	Width       int
	Height      int
	Shape       Shape
	RandomPhase bool
	DirtDepth   int
	Ores        []OreRule
	Trees       TreeConfig
	// Script is optional tengo source that assigns `height` for column `x`.
	Script []byte
}

// DefaultConfig mirrors the classic layout: a 200x100 world with the
// horizon around row 60, ten rows of dirt and coal and iron in the stone.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 100,
		Shape: Shape{
			Base:       60,
			Amplitude:  4,
			Wavelength: 48,
		},
		RandomPhase: true,
		DirtDepth:   10,
		Ores: []OreRule{
			{Tile: world.Coal, Chance: 0.02},
			{Tile: world.Iron, Chance: 0.015, MinDepth: 5},
		},
		Trees: TreeConfig{
			Chance:       0.15,
			Spacing:      5,
			TrunkMin:     4,
			TrunkMax:     5,
			CanopyRadius: 2,
		},
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Shape.Base < 0 || c.Shape.Base >= c.Height {
		return fmt.Errorf("%w: ground base %d outside [0,%d)", ErrInvalidConfig, c.Shape.Base, c.Height)
	}
	if c.Shape.Amplitude < 0 || c.Shape.Roughness < 0 {
		return fmt.Errorf("%w: negative amplitude or roughness", ErrInvalidConfig)
	}
	if (c.Shape.Amplitude > 0 || c.Shape.Roughness > 0) && c.Shape.Wavelength <= 0 {
		return fmt.Errorf("%w: wavelength must be positive", ErrInvalidConfig)
	}
	if c.DirtDepth < 0 {
		return fmt.Errorf("%w: dirt depth %d", ErrInvalidConfig, c.DirtDepth)
	}
	for i, ore := range c.Ores {
		if !ore.Tile.Valid() {
			return fmt.Errorf("%w: ore %d has unknown tile", ErrInvalidConfig, i)
		}
		if ore.Chance < 0 || ore.Chance > 1 {
			return fmt.Errorf("%w: ore %s chance %v", ErrInvalidConfig, ore.Tile, ore.Chance)
		}
		if ore.MinDepth < 0 {
			return fmt.Errorf("%w: ore %s min depth %d", ErrInvalidConfig, ore.Tile, ore.MinDepth)
		}
	}
	t := c.Trees
	if t.Chance < 0 || t.Chance > 1 {
		return fmt.Errorf("%w: tree chance %v", ErrInvalidConfig, t.Chance)
	}
	if t.Spacing < 0 || t.CanopyRadius < 0 {
		return fmt.Errorf("%w: negative tree spacing or canopy radius", ErrInvalidConfig)
	}
	if t.Chance > 0 && (t.TrunkMin < 1 || t.TrunkMax < t.TrunkMin) {
		return fmt.Errorf("%w: trunk range [%d,%d]", ErrInvalidConfig, t.TrunkMin, t.TrunkMax)
	}
	return nil
}
