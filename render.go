package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/voxelsandbox/common"
	"github.com/milk9111/voxelsandbox/palette"
	"github.com/milk9111/voxelsandbox/prefabs"
	"github.com/milk9111/voxelsandbox/sandbox"
	"github.com/milk9111/voxelsandbox/world"
)

// worldRenderer draws the visible part of the grid with one cached square
// image per tile type.
type worldRenderer struct {
	palette *palette.Palette
	tileImg map[world.TileType]*ebiten.Image
	player  *ebiten.Image
	playerW float64
	playerH float64
}

func newWorldRenderer(overrides map[string]prefabs.YAMLColor) (*worldRenderer, error) {
	r := &worldRenderer{}
	if err := r.SetPalette(overrides); err != nil {
		return nil, err
	}
	return r, nil
}

// SetPalette rebuilds the cached tile images from the default palette plus
// overrides.
func (r *worldRenderer) SetPalette(overrides map[string]prefabs.YAMLColor) error {
	p := palette.Default()
	for name, c := range overrides {
		if c.Color == nil {
			continue
		}
		if err := p.Override(name, c.Color); err != nil {
			return err
		}
	}
	r.palette = p
	r.tileImg = make(map[world.TileType]*ebiten.Image)
	for _, t := range world.TileTypes() {
		r.tileImg[t] = filledImage(common.TileSize, common.TileSize, p.Tile(t))
	}
	r.player = nil
	return nil
}

func filledImage(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(c)
	return img
}

func (r *worldRenderer) Draw(screen *ebiten.Image, s *sandbox.Session) {
	screen.Fill(r.palette.Tile(world.Air))

	grid := s.Grid()
	off := s.CameraOffset()
	view := s.Viewport()

	minX := max(common.FloorInt(off.X), 0)
	minY := max(common.FloorInt(off.Y), 0)
	maxX := min(int(math.Ceil(off.X+view.Width)), grid.Width()-1)
	maxY := min(int(math.Ceil(off.Y+view.Height)), grid.Height()-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			t := grid.At(x, y)
			if t == world.Air {
				continue
			}
			img := r.tileImg[t]
			if img == nil {
				continue
			}
			sx, sy := off.ToScreen(float64(x), float64(y), common.TileSize)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(math.Floor(sx), math.Floor(sy))
			screen.DrawImage(img, op)
		}
	}

	p := s.Player()
	if r.player == nil || r.playerW != p.Width || r.playerH != p.Height {
		r.player = filledImage(int(p.Width*common.TileSize), int(p.Height*common.TileSize), r.palette.Player)
		r.playerW, r.playerH = p.Width, p.Height
	}
	sx, sy := off.ToScreen(p.Pos.X, p.Pos.Y, common.TileSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Floor(sx), math.Floor(sy))
	screen.DrawImage(r.player, op)
}
