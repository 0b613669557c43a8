package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/voxelsandbox/prefabs"
)

func main() {
	configPath := flag.String("config", "", "sandbox config file (default: prefabs/sandbox.yaml or the embedded copy)")
	seed := flag.Int64("seed", 0, "world seed; 0 uses the config seed, or a random world if that is 0 too")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", true, "reload the config when it changes on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	spec, err := prefabs.LoadSandboxSpec(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		spec.Seed = *seed
	}

	game, err := NewGame(spec, *configPath, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *watch {
		if dirs := prefabs.WatchDirs(*configPath); len(dirs) > 0 {
			w, err := prefabs.NewWatcher(dirs...)
			if err != nil {
				log.Printf("config watcher disabled: %v", err)
			} else {
				game.watcher = w
			}
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.Display.Width, spec.Display.Height)
	ebiten.SetWindowTitle("voxel sandbox")
	ebiten.SetTPS(game.tps)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
