package sandbox

import (
	"errors"
	"fmt"

	"github.com/milk9111/voxelsandbox/camera"
	"github.com/milk9111/voxelsandbox/common"
	"github.com/milk9111/voxelsandbox/physics"
	"github.com/milk9111/voxelsandbox/prefabs"
	"github.com/milk9111/voxelsandbox/world"
	"github.com/milk9111/voxelsandbox/worldgen"
)

var ErrInvalidConfig = errors.New("sandbox: invalid config")

// Config gathers everything a session needs. Sizes are in tiles.
type Config struct {
	World       worldgen.Config
	Physics     physics.Params
	Camera      camera.Config
	Viewport    camera.Viewport
	SpawnColumn int
	Selected    world.TileType
}

func DefaultConfig() Config {
	return Config{
		World:       worldgen.DefaultConfig(),
		Physics:     physics.DefaultParams(),
		Camera:      camera.Config{CenterOnBox: true},
		Viewport:    camera.Viewport{Width: 800.0 / common.TileSize, Height: 600.0 / common.TileSize},
		SpawnColumn: 10,
		Selected:    world.Dirt,
	}
}

func (c Config) Validate() error {
	if err := c.World.Validate(); err != nil {
		return err
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	}
	if c.SpawnColumn < 0 || c.SpawnColumn >= c.World.Width {
		return fmt.Errorf("%w: spawn column %d outside [0,%d)", ErrInvalidConfig, c.SpawnColumn, c.World.Width)
	}
	if !placeable(c.Selected) {
		return fmt.Errorf("%w: %s cannot be placed", ErrInvalidConfig, c.Selected)
	}
	p := c.Physics
	if p.Gravity < 0 || p.MoveSpeed < 0 || p.JumpSpeed < 0 || p.MaxFallSpeed < 0 {
		return fmt.Errorf("%w: negative physics parameter", ErrInvalidConfig)
	}
	if c.Camera.Smoothness < 0 || c.Camera.Smoothness > 1 {
		return fmt.Errorf("%w: camera smoothness %v", ErrInvalidConfig, c.Camera.Smoothness)
	}
	return nil
}

// ConfigFromSpec converts a loaded sandbox spec, reading the height script
// it names.
func ConfigFromSpec(spec *prefabs.SandboxSpec) (Config, error) {
	w := spec.World
	cfg := Config{
		World: worldgen.Config{
			Width:  w.Width,
			Height: w.Height,
			Shape: worldgen.Shape{
				Base:       w.GroundBase,
				Amplitude:  w.Amplitude,
				Wavelength: w.Wavelength,
				Phase:      w.Phase,
				Roughness:  w.Roughness,
			},
			RandomPhase: w.RandomPhase,
			DirtDepth:   w.DirtDepth,
			Trees: worldgen.TreeConfig{
				Chance:       w.Trees.Chance,
				Spacing:      w.Trees.Spacing,
				TrunkMin:     w.Trees.TrunkMin,
				TrunkMax:     w.Trees.TrunkMax,
				CanopyRadius: w.Trees.CanopyRadius,
			},
		},
		Physics: physics.Params{
			Gravity:      spec.Player.Gravity,
			MoveSpeed:    spec.Player.MoveSpeed,
			JumpSpeed:    spec.Player.JumpSpeed,
			MaxFallSpeed: spec.Player.MaxFallSpeed,
			ClampToWorld: spec.Player.ClampToWorld,
		},
		Camera: camera.Config{
			CenterOnBox:  spec.Camera.CenterOnPlayer,
			Smoothness:   spec.Camera.Smoothness,
			ClampToWorld: spec.Camera.ClampToWorld,
		},
		Viewport: camera.Viewport{
			Width:  float64(spec.Display.Width) / common.TileSize,
			Height: float64(spec.Display.Height) / common.TileSize,
		},
		SpawnColumn: spec.Player.SpawnColumn,
		Selected:    spec.Player.SelectedBlock,
	}
	for _, ore := range w.Ores {
		cfg.World.Ores = append(cfg.World.Ores, worldgen.OreRule{
			Tile:     ore.Tile,
			Chance:   ore.Chance,
			MinDepth: ore.MinDepth,
		})
	}
	if w.HeightScript != "" {
		src, err := prefabs.LoadScript(w.HeightScript)
		if err != nil {
			return Config{}, fmt.Errorf("sandbox: load height script %s: %w", w.HeightScript, err)
		}
		cfg.World.Script = src
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
