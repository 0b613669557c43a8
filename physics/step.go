package physics

import "github.com/jakecoffman/cp"

// Input is the per-frame movement intent.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// Params holds the per-frame movement constants, in tiles and frames.
type Params struct {
	Gravity   float64
	MoveSpeed float64
	JumpSpeed float64
	// MaxFallSpeed optionally caps downward velocity. 0, the default, leaves
	// gravity uncapped.
	MaxFallSpeed float64
	// ClampToWorld treats the left and right grid edges as walls.
	ClampToWorld bool
}

func DefaultParams() Params {
	return Params{
		Gravity:      0.02,
		MoveSpeed:    0.12,
		JumpSpeed:    0.36,
		MaxFallSpeed: 0,
		ClampToWorld: true,
	}
}

// Contacts reports which sides of the player were stopped by tiles during a
// step.
type Contacts struct {
	Wall    bool
	Ceiling bool
	Ground  bool
}

// Step advances p by one frame: input sets horizontal speed and may start a
// jump, gravity is applied, and the box is moved and resolved against solid
// tiles one axis at a time, horizontal first.
func Step(p *Player, tiles TileSource, in Input, params Params) Contacts {
	switch {
	case in.Left:
		p.Vel.X = -params.MoveSpeed
	case in.Right:
		p.Vel.X = params.MoveSpeed
	default:
		p.Vel.X = 0
	}

	if in.Jump && p.Grounded {
		p.Vel.Y = -params.JumpSpeed
		p.Grounded = false
	}

	p.Vel.Y += params.Gravity
	if params.MaxFallSpeed > 0 && p.Vel.Y > params.MaxFallSpeed {
		p.Vel.Y = params.MaxFallSpeed
	}

	var c Contacts

	p.Pos = p.Pos.Add(cp.Vector{X: p.Vel.X})
	c.Wall = resolveX(p, tiles)
	if params.ClampToWorld && clampToWorld(p, tiles) {
		c.Wall = true
	}

	p.Grounded = false
	p.Pos = p.Pos.Add(cp.Vector{Y: p.Vel.Y})
	c.Ceiling, c.Ground = resolveY(p, tiles)
	return c
}

func clampToWorld(p *Player, tiles TileSource) bool {
	maxX := float64(tiles.Width()) - p.Width
	switch {
	case p.Pos.X < 0:
		p.Pos.X = 0
	case p.Pos.X > maxX:
		p.Pos.X = maxX
	default:
		return false
	}
	p.Vel.X = 0
	return true
}
