package camera

import (
	"github.com/milk9111/voxelsandbox/common"
)

// Viewport is the visible area in tile units.
type Viewport struct {
	Width  float64
	Height float64
}

// Offset is the world position, in tiles, drawn at the top-left corner of
// the screen.
type Offset struct {
	X float64
	Y float64
}

// ToScreen converts a world point to screen pixels at the given tile size.
func (o Offset) ToScreen(wx, wy, tileSize float64) (float64, float64) {
	return (wx - o.X) * tileSize, (wy - o.Y) * tileSize
}

// ToWorld converts screen pixels back to a world point.
func (o Offset) ToWorld(sx, sy, tileSize float64) (float64, float64) {
	return sx/tileSize + o.X, sy/tileSize + o.Y
}

// Follow places the target at the middle of the viewport. The target is the
// box's top-left corner, or its center when centerOnBox is set.
func Follow(box common.Rect, view Viewport, centerOnBox bool) Offset {
	x, y := box.X, box.Y
	if centerOnBox {
		x += box.Width / 2
		y += box.Height / 2
	}
	return Offset{X: x - view.Width/2, Y: y - view.Height/2}
}

type Config struct {
	CenterOnBox bool
	// Smoothness is the fraction of the remaining distance covered per
	// update, in (0, 1]. 0 snaps straight to the target.
	Smoothness float64
	// ClampToWorld keeps the view inside the world once bounds are set.
	ClampToWorld bool
}

// Camera keeps the last offset so it can ease toward the target.
type Camera struct {
	cfg    Config
	view   Viewport
	worldW float64
	worldH float64

	offset Offset
	primed bool
}

func New(cfg Config, view Viewport) *Camera {
	return &Camera{cfg: cfg, view: view}
}

func (c *Camera) SetConfig(cfg Config) {
	c.cfg = cfg
}

func (c *Camera) SetViewport(view Viewport) {
	if view.Width <= 0 || view.Height <= 0 {
		return
	}
	c.view = view
}

func (c *Camera) Viewport() Viewport {
	return c.view
}

// SetWorldBounds sets the world size in tiles used for clamping. Zero
// disables clamping on that axis.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

func (c *Camera) Offset() Offset {
	return c.offset
}

// Update moves the camera toward the target box and returns the new offset.
func (c *Camera) Update(box common.Rect) Offset {
	target := Follow(box, c.view, c.cfg.CenterOnBox)
	if !c.primed || c.cfg.Smoothness <= 0 || c.cfg.Smoothness >= 1 {
		c.offset = target
	} else {
		c.offset.X = common.Lerp(c.offset.X, target.X, c.cfg.Smoothness)
		c.offset.Y = common.Lerp(c.offset.Y, target.Y, c.cfg.Smoothness)
	}
	c.primed = true
	c.clamp()
	return c.offset
}

// SnapTo places the camera on the target immediately, ignoring smoothing.
func (c *Camera) SnapTo(box common.Rect) Offset {
	c.offset = Follow(box, c.view, c.cfg.CenterOnBox)
	c.primed = true
	c.clamp()
	return c.offset
}

func (c *Camera) clamp() {
	if !c.cfg.ClampToWorld {
		return
	}
	c.offset.X = clampAxis(c.offset.X, c.view.Width, c.worldW)
	c.offset.Y = clampAxis(c.offset.Y, c.view.Height, c.worldH)
}

// clampAxis keeps [v, v+view] inside [0, world]; a world narrower than the
// view is centered instead.
func clampAxis(v, view, world float64) float64 {
	if world <= 0 {
		return v
	}
	if world < view {
		return (world - view) / 2
	}
	return common.Clamp(v, 0, world-view)
}
