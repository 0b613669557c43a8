package main

import (
	"log"

	"github.com/milk9111/voxelsandbox/prefabs"
	"github.com/milk9111/voxelsandbox/sandbox"
)

// pollReload applies config changes reported by the watcher. Failed reloads
// are logged and the running settings are kept.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	changed := false
	for drained := false; !drained; {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !g.changes.Changed(name) {
				continue
			}
			log.Printf("reload: %s changed", name)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("reload: watcher: %v", err)
		default:
			drained = true
		}
	}
	if changed {
		g.reload()
	}
}

func (g *Game) reload() {
	spec, err := prefabs.LoadSandboxSpec(g.configPath)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	cfg, err := sandbox.ConfigFromSpec(spec)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if err := g.renderer.SetPalette(spec.Palette); err != nil {
		log.Printf("reload: palette: %v", err)
	}
	worldChanged, err := g.session.ApplyTuning(cfg)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if spec.Seed != 0 {
		g.seed = spec.Seed
	}
	if worldChanged {
		g.newWorld()
	}
	log.Printf("reload: applied (world regenerated: %v)", worldChanged)
}
