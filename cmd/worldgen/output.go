package main

import (
	"fmt"
	"io"
	"time"

	"github.com/milk9111/voxelsandbox/sandbox"
	"github.com/milk9111/voxelsandbox/world"
)

var asciiTiles = map[world.TileType]byte{
	world.Air:   '.',
	world.Grass: '"',
	world.Dirt:  ':',
	world.Stone: '#',
	world.Coal:  'c',
	world.Iron:  'i',
	world.Wood:  '|',
	world.Leaf:  '*',
}

func asciiTile(t world.TileType) byte {
	if b, ok := asciiTiles[t]; ok {
		return b
	}
	return '?'
}

func writeASCII(w io.Writer, g *world.Grid) {
	line := make([]byte, g.Width()+1)
	line[g.Width()] = '\n'
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			line[x] = asciiTile(g.At(x, y))
		}
		_, _ = w.Write(line)
	}
}

func writeStats(w io.Writer, g *world.Grid) {
	fmt.Fprintf(w, "world %dx%d\n", g.Width(), g.Height())
	for _, t := range world.TileTypes() {
		fmt.Fprintf(w, "  %-6s %d\n", t, g.Count(t))
	}
}

type walkResult struct {
	Ticks    int
	X, Y     float64
	Grounded bool
	Jumps    int
	Respawns int
}

// simulateWalk holds right for the given number of frames, jumping whenever
// a wall stops the player.
func simulateWalk(s *sandbox.Session, tps, frames int) walkResult {
	d := sandbox.NewDriver(s, tps)
	in := sandbox.Input{Right: true}
	res := walkResult{}
	for res.Ticks < frames {
		res.Ticks += d.Advance(d.Step, in)
		in.Jump = s.Contacts().Wall
		if in.Jump {
			res.Jumps++
		}
	}
	p := s.Player()
	res.X, res.Y, res.Grounded = p.Pos.X, p.Pos.Y, p.Grounded
	res.Respawns = s.Respawns()
	return res
}

func writeSimulation(w io.Writer, r walkResult, tps int) {
	if tps <= 0 {
		tps = 60
	}
	fmt.Fprintf(w, "simulated %d frames (%s at %d TPS): player at (%.2f, %.2f) grounded=%v jumps=%d respawns=%d\n",
		r.Ticks, time.Duration(r.Ticks)*time.Second/time.Duration(tps), tps, r.X, r.Y, r.Grounded, r.Jumps, r.Respawns)
}
