package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/voxelsandbox/common"
	"github.com/milk9111/voxelsandbox/prefabs"
	"github.com/milk9111/voxelsandbox/sandbox"
	"github.com/milk9111/voxelsandbox/worldgen"
)

type Game struct {
	frames int
	debug  bool

	configPath string
	seed       int64
	worlds     int64

	session  *sandbox.Session
	driver   *sandbox.Driver
	renderer *worldRenderer
	tps      int
	width    int
	height   int

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
	changes *prefabs.ChangeTracker
}

func NewGame(spec *prefabs.SandboxSpec, configPath string, debug bool) (*Game, error) {
	cfg, err := sandbox.ConfigFromSpec(spec)
	if err != nil {
		return nil, err
	}
	session, err := sandbox.New(cfg, worldgen.NewRand(spec.Seed))
	if err != nil {
		return nil, err
	}
	renderer, err := newWorldRenderer(spec.Palette)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:      debug,
		configPath: configPath,
		seed:       spec.Seed,
		session:    session,
		driver:     sandbox.NewDriver(session, spec.Display.TPS),
		renderer:   renderer,
		tps:        max(spec.Display.TPS, 1),
		width:      spec.Display.Width,
		height:     spec.Display.Height,
		changes:    prefabs.NewChangeTracker(),
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollReload()

	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	g.handleMouse()
	g.driver.Advance(time.Second/time.Duration(g.tps), readInput())
	return nil
}

// handleMouse breaks blocks with the left button and places them with the
// right one.
func (g *Game) handleMouse() {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	sx, sy := ebiten.CursorPosition()
	wx, wy := g.session.CameraOffset().ToWorld(float64(sx), float64(sy), common.TileSize)
	if left {
		if prev, ok := g.session.BreakBlock(wx, wy); ok && g.debug {
			log.Printf("broke %s at (%.0f, %.0f)", prev, wx, wy)
		}
	}
	if right {
		g.session.PlaceBlock(wx, wy)
	}
}

// newWorld regenerates the world. A fixed seed steps forward each time so
// "New world" never repeats the last one.
func (g *Game) newWorld() {
	g.worlds++
	seed := g.seed
	if seed != 0 {
		seed += g.worlds
	}
	if err := g.session.Regenerate(worldgen.NewRand(seed)); err != nil {
		log.Printf("new world: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)

	p := g.session.Player()
	hud := fmt.Sprintf("Block: %s", p.Selected)
	if g.debug {
		hud = fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f\nSession: %s\nPos: (%.2f, %.2f)  Vel: (%.3f, %.3f)  Grounded: %v\n%s",
			g.session.Frames(), ebiten.ActualFPS(), ebiten.ActualTPS(), g.session.ID,
			p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Grounded, hud)
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
