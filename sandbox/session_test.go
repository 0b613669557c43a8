package sandbox

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/milk9111/voxelsandbox/camera"
	"github.com/milk9111/voxelsandbox/physics"
	"github.com/milk9111/voxelsandbox/prefabs"
	"github.com/milk9111/voxelsandbox/world"
	"github.com/milk9111/voxelsandbox/worldgen"
)

// flatGrid is 20x12 with stone from row 8 down.
func flatGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.New(20, 12)
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	for y := 8; y < 12; y++ {
		for x := 0; x < 20; x++ {
			g.Set(x, y, world.Stone)
		}
	}
	return g
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Viewport = camera.Viewport{Width: 10, Height: 8}
	cfg.SpawnColumn = 3
	return cfg
}

func newFlatSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewWithGrid(testConfig(), flatGrid(t))
	if err != nil {
		t.Fatalf("NewWithGrid: %v", err)
	}
	return s
}

func TestNewIsDeterministicPerSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World.Width = 64
	cfg.World.Height = 40
	cfg.World.Shape.Base = 20

	a, err := New(cfg, worldgen.NewRand(42))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(cfg, worldgen.NewRand(42))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct session IDs")
	}
	for y := 0; y < 40; y++ {
		for x := 0; x < 64; x++ {
			if a.Grid().At(x, y) != b.Grid().At(x, y) {
				t.Fatalf("grids differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		target error
	}{
		{"spawn_outside", func(c *Config) { c.SpawnColumn = 500 }, ErrInvalidConfig},
		{"no_viewport", func(c *Config) { c.Viewport = camera.Viewport{} }, ErrInvalidConfig},
		{"air_selected", func(c *Config) { c.Selected = world.Air }, ErrInvalidConfig},
		{"negative_gravity", func(c *Config) { c.Physics.Gravity = -1 }, ErrInvalidConfig},
		{"zero_width", func(c *Config) { c.World.Width = 0 }, worldgen.ErrInvalidConfig},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			if _, err := New(cfg, worldgen.NewRand(1)); !errors.Is(err, c.target) {
				t.Fatalf("expected %v, got %v", c.target, err)
			}
		})
	}
}

func TestPlayerLandsOnGround(t *testing.T) {
	s := newFlatSession(t)
	for i := 0; i < 120; i++ {
		s.Tick(Input{})
	}
	p := s.Player()
	if !p.Grounded {
		t.Fatalf("expected the player to be grounded, pos %v", p.Pos)
	}
	if p.Pos.Y != 6 {
		t.Fatalf("expected feet on row 8, got y=%v", p.Pos.Y)
	}
	if s.Frames() != 120 {
		t.Fatalf("expected 120 frames, got %d", s.Frames())
	}
	want := camera.Follow(p.Box(), camera.Viewport{Width: 10, Height: 8}, true)
	if s.CameraOffset() != want {
		t.Fatalf("camera %v, want %v", s.CameraOffset(), want)
	}
}

func TestShippedConfigLeavesGravityUncapped(t *testing.T) {
	spec, err := prefabs.LoadSandboxSpec("")
	if err != nil {
		t.Fatalf("LoadSandboxSpec: %v", err)
	}
	cfg, err := ConfigFromSpec(spec)
	if err != nil {
		t.Fatalf("ConfigFromSpec: %v", err)
	}
	g, err := world.New(10, 400)
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	cfg.SpawnColumn = 4
	s, err := NewWithGrid(cfg, g)
	if err != nil {
		t.Fatalf("NewWithGrid: %v", err)
	}

	prev := s.Player().Vel.Y
	for tick := 0; tick < 150; tick++ {
		s.Tick(Input{})
		vy := s.Player().Vel.Y
		if d := vy - prev; math.Abs(d-cfg.Physics.Gravity) > 1e-9 {
			t.Fatalf("tick %d: velocity grew by %v, want %v (vy=%v)", tick, d, cfg.Physics.Gravity, vy)
		}
		prev = vy
	}
}

func TestRespawnAfterFallingOut(t *testing.T) {
	g, err := world.New(20, 12)
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	s, err := NewWithGrid(testConfig(), g)
	if err != nil {
		t.Fatalf("NewWithGrid: %v", err)
	}
	for i := 0; i < 500 && s.Respawns() == 0; i++ {
		s.Tick(Input{})
	}
	if s.Respawns() != 1 {
		t.Fatalf("expected one respawn, got %d", s.Respawns())
	}
	p := s.Player()
	if p.Pos.X != 3 || p.Pos.Y != 0 || p.Vel.Y != 0 {
		t.Fatalf("expected a fresh player at the spawn, got pos %v vel %v", p.Pos, p.Vel)
	}
}

func TestSpawnLiftsPlayerOutOfTerrain(t *testing.T) {
	g := flatGrid(t)
	g.Set(3, 1, world.Stone)
	s, err := NewWithGrid(testConfig(), g)
	if err != nil {
		t.Fatalf("NewWithGrid: %v", err)
	}
	if got := s.Player().Pos.Y; got != -1 {
		t.Fatalf("expected the player on top of row 1, got y=%v", got)
	}
	if physics.Overlaps(s.Player().Box(), g) {
		t.Fatalf("spawned player overlaps terrain")
	}
}

func TestPlaceBlock(t *testing.T) {
	s := newFlatSession(t)
	s.Grid().Set(6, 2, world.Leaf)

	cases := []struct {
		name string
		x, y float64
		ok   bool
	}{
		{"inside_player", 3.5, 1.2, false},
		{"free_air", 5.2, 1.7, true},
		{"already_filled", 5.9, 1.1, false},
		{"over_leaves", 6.5, 2.5, true},
		{"stone", 2, 9, false},
		{"outside", -1, 0, false},
		{"below_world", 4, 12, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := s.PlaceBlock(c.x, c.y); got != c.ok {
				t.Fatalf("PlaceBlock(%v,%v) = %v, want %v", c.x, c.y, got, c.ok)
			}
		})
	}
	if s.Grid().At(5, 1) != world.Dirt || s.Grid().At(6, 2) != world.Dirt {
		t.Fatalf("expected dirt at placed cells")
	}
}

func TestBreakBlock(t *testing.T) {
	s := newFlatSession(t)
	cases := []struct {
		name string
		x, y float64
		want world.TileType
		ok   bool
	}{
		{"stone", 0.5, 10.5, world.Stone, true},
		{"again", 0.5, 10.5, world.Air, false},
		{"air", 5, 1, world.Air, false},
		{"outside", 25, 10, world.Air, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := s.BreakBlock(c.x, c.y)
			if got != c.want || ok != c.ok {
				t.Fatalf("BreakBlock(%v,%v) = %v,%v want %v,%v", c.x, c.y, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestSelectNextCyclesPlaceableBlocks(t *testing.T) {
	s := newFlatSession(t)
	want := []world.TileType{world.Stone, world.Coal, world.Iron, world.Wood, world.Leaf, world.Grass, world.Dirt}
	for i, w := range want {
		if got := s.SelectNext(); got != w {
			t.Fatalf("step %d: got %v, want %v", i, got, w)
		}
	}
}

func TestTickSelectsOnPressOnly(t *testing.T) {
	s := newFlatSession(t)
	s.Tick(Input{SelectNext: true})
	s.Tick(Input{SelectNext: true})
	if got := s.Player().Selected; got != world.Stone {
		t.Fatalf("holding select should advance once, got %v", got)
	}
	s.Tick(Input{})
	s.Tick(Input{SelectNext: true})
	if got := s.Player().Selected; got != world.Coal {
		t.Fatalf("second press should advance again, got %v", got)
	}
}

func TestApplyTuningAndRegenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World.Width = 48
	cfg.World.Height = 32
	cfg.World.Shape.Base = 16
	s, err := New(cfg, worldgen.NewRand(3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.SelectNext()
	before := s.Grid()

	tuned := cfg
	tuned.Physics.Gravity = 0.05
	changed, err := s.ApplyTuning(tuned)
	if err != nil || changed {
		t.Fatalf("physics tuning: changed=%v err=%v", changed, err)
	}
	if s.Config().Physics.Gravity != 0.05 {
		t.Fatalf("gravity not applied")
	}

	reshaped := tuned
	reshaped.World.Width = 64
	changed, err = s.ApplyTuning(reshaped)
	if err != nil || !changed {
		t.Fatalf("world tuning: changed=%v err=%v", changed, err)
	}
	if s.Grid() != before {
		t.Fatalf("ApplyTuning must not replace the world")
	}

	if _, err := s.ApplyTuning(Config{}); err == nil {
		t.Fatalf("expected an invalid config to be rejected")
	}

	if err := s.Regenerate(worldgen.NewRand(4)); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if s.Grid() == before || s.Grid().Width() != 64 {
		t.Fatalf("expected a new 64-wide world, got width %d", s.Grid().Width())
	}
	if s.Player().Selected != world.Stone {
		t.Fatalf("selection should survive regeneration, got %v", s.Player().Selected)
	}
}

func TestConfigFromSpec(t *testing.T) {
	spec, err := prefabs.LoadSandboxSpec("")
	if err != nil {
		t.Fatalf("LoadSandboxSpec: %v", err)
	}
	cfg, err := ConfigFromSpec(spec)
	if err != nil {
		t.Fatalf("ConfigFromSpec: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("embedded config should match the defaults:\n%+v\n%+v", cfg, DefaultConfig())
	}

	spec.World.HeightScript = "flat.tengo"
	cfg, err = ConfigFromSpec(spec)
	if err != nil {
		t.Fatalf("ConfigFromSpec with script: %v", err)
	}
	if len(cfg.World.Script) == 0 {
		t.Fatalf("expected script source to be loaded")
	}

	spec.World.HeightScript = "missing.tengo"
	if _, err := ConfigFromSpec(spec); err == nil {
		t.Fatalf("expected an error for a missing script")
	}

	spec.World.HeightScript = ""
	spec.Player.SpawnColumn = 1000
	if _, err := ConfigFromSpec(spec); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
