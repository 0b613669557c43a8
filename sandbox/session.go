package sandbox

import (
	"fmt"
	"log"
	"math"
	"reflect"

	"github.com/google/uuid"
	"github.com/milk9111/voxelsandbox/camera"
	"github.com/milk9111/voxelsandbox/common"
	"github.com/milk9111/voxelsandbox/physics"
	"github.com/milk9111/voxelsandbox/world"
	"github.com/milk9111/voxelsandbox/worldgen"
)

// Input is one frame of player intent.
type Input struct {
	Left       bool
	Right      bool
	Jump       bool
	SelectNext bool
}

// Session owns one world, its player and the camera following it. It is
// not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	cfg      Config
	grid     *world.Grid
	player   *physics.Player
	cam      *camera.Camera
	contacts physics.Contacts

	frames     uint64
	respawns   int
	selectHeld bool
}

// New generates a world from cfg and spawns the player in it.
func New(cfg Config, rng worldgen.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := worldgen.Generate(cfg.World, rng)
	if err != nil {
		return nil, fmt.Errorf("sandbox: generate: %w", err)
	}
	return newSession(cfg, grid), nil
}

// NewWithGrid starts a session on an existing grid. Only the non-world
// parts of cfg are checked.
func NewWithGrid(cfg Config, grid *world.Grid) (*Session, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidConfig)
	}
	cfg.World.Width = grid.Width()
	cfg.World.Height = grid.Height()
	if cfg.SpawnColumn < 0 || cfg.SpawnColumn >= grid.Width() {
		return nil, fmt.Errorf("%w: spawn column %d outside [0,%d)", ErrInvalidConfig, cfg.SpawnColumn, grid.Width())
	}
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		return nil, fmt.Errorf("%w: viewport %vx%v", ErrInvalidConfig, cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if !placeable(cfg.Selected) {
		cfg.Selected = world.Dirt
	}
	return newSession(cfg, grid), nil
}

func newSession(cfg Config, grid *world.Grid) *Session {
	s := &Session{
		ID:   uuid.New(),
		cfg:  cfg,
		grid: grid,
		cam:  camera.New(cfg.Camera, cfg.Viewport),
	}
	s.spawn()
	log.Printf("sandbox: session %s: %dx%d world, %d solid tiles", s.ID, grid.Width(), grid.Height(), grid.Width()*grid.Height()-grid.Count(world.Air)-grid.Count(world.Leaf))
	return s
}

// spawn places a fresh player at the spawn column and snaps the camera to it.
func (s *Session) spawn() {
	selected := s.cfg.Selected
	if s.player != nil {
		selected = s.player.Selected
	}
	col := min(s.cfg.SpawnColumn, s.grid.Width()-1)
	s.player = physics.NewPlayer(float64(col), 0)
	s.player.Selected = selected

	// Lift the player clear of anything solid at the top of the world.
	if physics.Overlaps(s.player.Box(), s.grid) {
		top := s.grid.Height()
		for x := col; x < col+int(math.Ceil(s.player.Width)); x++ {
			for y := 0; y < top; y++ {
				if s.grid.Solid(x, y) {
					top = y
					break
				}
			}
		}
		s.player.Pos.Y = float64(top) - s.player.Height
	}

	s.cam.SetWorldBounds(s.grid.Width(), s.grid.Height())
	s.cam.SnapTo(s.player.Box())
}

// Tick advances the session by one fixed frame.
func (s *Session) Tick(in Input) {
	if in.SelectNext && !s.selectHeld {
		s.SelectNext()
	}
	s.selectHeld = in.SelectNext

	s.contacts = physics.Step(s.player, s.grid, physics.Input{Left: in.Left, Right: in.Right, Jump: in.Jump}, s.cfg.Physics)
	if s.player.Pos.Y > float64(s.grid.Height()) {
		s.respawns++
		log.Printf("sandbox: session %s: player fell out of the world at frame %d, respawning", s.ID, s.frames)
		s.spawn()
	} else {
		s.cam.Update(s.player.Box())
	}
	s.frames++
}

// PlaceBlock puts the selected block at the cell containing (x, y). Only air
// and leaves can be replaced, and never a cell the player occupies.
func (s *Session) PlaceBlock(x, y float64) bool {
	cx, cy := common.FloorInt(x), common.FloorInt(y)
	if !s.grid.InBounds(cx, cy) {
		return false
	}
	if cur := s.grid.At(cx, cy); cur != world.Air && cur != world.Leaf {
		return false
	}
	if common.CellRect(cx, cy).Intersects(s.player.Box()) {
		return false
	}
	return s.grid.Set(cx, cy, s.player.Selected)
}

// BreakBlock clears the cell containing (x, y) and returns what was there.
func (s *Session) BreakBlock(x, y float64) (world.TileType, bool) {
	cx, cy := common.FloorInt(x), common.FloorInt(y)
	prev := s.grid.At(cx, cy)
	if prev == world.Air || !s.grid.Set(cx, cy, world.Air) {
		return world.Air, false
	}
	return prev, true
}

// SelectNext cycles the selected block through every placeable type.
func (s *Session) SelectNext() world.TileType {
	types := placeableTypes()
	next := types[0]
	for i, t := range types {
		if t == s.player.Selected {
			next = types[(i+1)%len(types)]
			break
		}
	}
	s.player.Selected = next
	return next
}

// Regenerate replaces the world with a freshly generated one and respawns
// the player.
func (s *Session) Regenerate(rng worldgen.Rand) error {
	grid, err := worldgen.Generate(s.cfg.World, rng)
	if err != nil {
		return fmt.Errorf("sandbox: regenerate: %w", err)
	}
	s.grid = grid
	s.spawn()
	log.Printf("sandbox: session %s: regenerated world", s.ID)
	return nil
}

// ApplyTuning swaps in new physics, camera and viewport settings without
// touching the current world. New world settings are kept for the next
// Regenerate; worldChanged reports whether they differ from the old ones.
func (s *Session) ApplyTuning(cfg Config) (worldChanged bool, err error) {
	if err := cfg.Validate(); err != nil {
		return false, err
	}
	worldChanged = !reflect.DeepEqual(s.cfg.World, cfg.World)
	s.cfg = cfg
	s.cam.SetConfig(cfg.Camera)
	s.cam.SetViewport(cfg.Viewport)
	return worldChanged, nil
}

func (s *Session) Grid() *world.Grid {
	return s.grid
}

func (s *Session) Player() *physics.Player {
	return s.player
}

func (s *Session) CameraOffset() camera.Offset {
	return s.cam.Offset()
}

func (s *Session) Viewport() camera.Viewport {
	return s.cam.Viewport()
}

// Contacts reports what the player touched during the last tick.
func (s *Session) Contacts() physics.Contacts {
	return s.contacts
}

func (s *Session) Frames() uint64 {
	return s.frames
}

func (s *Session) Respawns() int {
	return s.respawns
}

func (s *Session) Config() Config {
	return s.cfg
}

func placeable(t world.TileType) bool {
	return t.Valid() && t != world.Air
}

func placeableTypes() []world.TileType {
	var out []world.TileType
	for _, t := range world.TileTypes() {
		if placeable(t) {
			out = append(out, t)
		}
	}
	return out
}
