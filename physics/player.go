package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/voxelsandbox/common"
	"github.com/milk9111/voxelsandbox/world"
)

// Player is the controllable box. Positions and sizes are in tile units and
// Pos is the top-left corner of the box.
type Player struct {
	Pos      cp.Vector
	Vel      cp.Vector
	Width    float64
	Height   float64
	Grounded bool

	// Gameplay fields carried for the HUD; nothing consumes them yet.
	Health    int
	Hunger    int
	Inventory map[world.TileType]int

	// Selected is the block placed by the next placement action.
	Selected world.TileType
}

func NewPlayer(x, y float64) *Player {
	return &Player{
		Pos:       cp.Vector{X: x, Y: y},
		Width:     1,
		Height:    2,
		Health:    10,
		Hunger:    10,
		Inventory: make(map[world.TileType]int),
		Selected:  world.Dirt,
	}
}

func (p *Player) Box() common.Rect {
	return common.Rect{X: p.Pos.X, Y: p.Pos.Y, Width: p.Width, Height: p.Height}
}
