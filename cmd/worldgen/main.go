// Command worldgen generates a sandbox world without opening a window. It
// can write the world as a PNG or ASCII art, print tile statistics and run
// the player for a number of frames.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/milk9111/voxelsandbox/palette"
	"github.com/milk9111/voxelsandbox/prefabs"
	"github.com/milk9111/voxelsandbox/sandbox"
	"github.com/milk9111/voxelsandbox/worldgen"
)

func main() {
	configPath := flag.String("config", "", "sandbox config file (default: prefabs/sandbox.yaml or the embedded copy)")
	seed := flag.Int64("seed", 0, "world seed; 0 uses the config seed")
	width := flag.Int("width", 0, "override world width in tiles")
	height := flag.Int("height", 0, "override world height in tiles")
	script := flag.String("script", "", "height script in prefabs/scripts (overrides the config)")
	pngPath := flag.String("png", "", "write the world to this PNG file")
	scale := flag.Int("scale", 4, "pixels per tile in the PNG")
	ascii := flag.Bool("ascii", false, "print the world as ASCII art")
	stats := flag.Bool("stats", true, "print tile counts")
	simulate := flag.Int("simulate", 0, "run this many frames with the player walking right")
	flag.Parse()

	spec, err := prefabs.LoadSandboxSpec(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		spec.Seed = *seed
	}
	if *width > 0 {
		spec.World.Width = *width
	}
	if *height > 0 {
		spec.World.Height = *height
	}
	if *script != "" {
		spec.World.HeightScript = *script
	}

	cfg, err := sandbox.ConfigFromSpec(spec)
	if err != nil {
		log.Fatal(err)
	}
	session, err := sandbox.New(cfg, worldgen.NewRand(spec.Seed))
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if *stats {
		writeStats(out, session.Grid())
	}
	if *simulate > 0 {
		writeSimulation(out, simulateWalk(session, spec.Display.TPS, *simulate), spec.Display.TPS)
	}
	if *ascii {
		writeASCII(out, session.Grid())
	}
	if *pngPath != "" {
		if err := writePNG(*pngPath, session, spec, *scale); err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(out, "wrote %s\n", *pngPath)
	}
}

func writePNG(path string, s *sandbox.Session, spec *prefabs.SandboxSpec, scale int) error {
	p := palette.Default()
	for name, c := range spec.Palette {
		if c.Color == nil {
			continue
		}
		if err := p.Override(name, c.Color); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("worldgen: create %s: %w", path, err)
	}
	if err := png.Encode(f, p.Image(s.Grid(), scale)); err != nil {
		_ = f.Close()
		return fmt.Errorf("worldgen: encode %s: %w", path, err)
	}
	return f.Close()
}
