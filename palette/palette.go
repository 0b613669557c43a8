// Package palette maps tile types to display colors. It is used only by
// renderers; the simulation never looks at colors.
package palette

import (
	"fmt"
	"image"
	"image/color"

	"github.com/milk9111/voxelsandbox/world"
	"golang.org/x/image/colornames"
)

// Missing is drawn for tile types without an entry.
var Missing = color.RGBA{R: 0xff, A: 0xff}

var defaults = map[world.TileType]color.RGBA{
	world.Air:   colornames.Skyblue,
	world.Grass: {R: 0x3b, G: 0xb1, B: 0x43, A: 0xff},
	world.Dirt:  colornames.Saddlebrown,
	world.Stone: {R: 0x77, G: 0x77, B: 0x77, A: 0xff},
	world.Coal:  {R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	world.Iron:  {R: 0xd4, G: 0xaf, B: 0x37, A: 0xff},
	world.Wood:  colornames.Sienna,
	world.Leaf:  colornames.Forestgreen,
}

type Palette struct {
	tiles  map[world.TileType]color.RGBA
	Player color.RGBA
}

func Default() *Palette {
	p := &Palette{
		tiles:  make(map[world.TileType]color.RGBA, len(defaults)),
		Player: colornames.Gold,
	}
	for t, c := range defaults {
		p.tiles[t] = c
	}
	return p
}

func (p *Palette) Tile(t world.TileType) color.RGBA {
	if c, ok := p.tiles[t]; ok {
		return c
	}
	return Missing
}

// Override replaces the color for a tile name or "player".
func (p *Palette) Override(name string, c color.Color) error {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if name == "player" {
		p.Player = rgba
		return nil
	}
	t, err := world.ParseTileType(name)
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	p.tiles[t] = rgba
	return nil
}

// Image renders g with scale x scale pixels per tile.
func (p *Palette) Image(g *world.Grid, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Width()*scale, g.Height()*scale))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := p.Tile(g.At(x, y))
			for py := 0; py < scale; py++ {
				for px := 0; px < scale; px++ {
					img.SetRGBA(x*scale+px, y*scale+py, c)
				}
			}
		}
	}
	return img
}
