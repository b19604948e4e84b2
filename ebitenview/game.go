package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tether"
)

// Game adapts a tether.Scheduler to ebiten.Game. Update polls input and runs
// one frame; Draw paints the latest snapshot.
type Game struct {
	sched   *tether.Scheduler
	cfg     RunConfig
	view    tether.Viewport
	input   pointer
	painter *painter
	debug   *overlay

	frame tether.Frame
}

// NewGame wraps sim in a scheduler driven by ebiten's update loop.
func NewGame(sim tether.Simulation, cfg RunConfig) (*Game, error) {
	cfg = cfg.withDefaults()
	p, err := newPainter()
	if err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg, painter: p}
	g.sched = tether.NewScheduler(sim, tether.RendererFunc(g.capture))
	g.view = tether.FitViewport(cfg.CanvasWidth, cfg.CanvasHeight, float64(cfg.Width), float64(cfg.Height))
	if cfg.ShowFPS {
		g.debug = newOverlay()
	}
	return g, nil
}

// Scheduler returns the scheduler driving the simulation, for scripted input
// or visibility control.
func (g *Game) Scheduler() *tether.Scheduler { return g.sched }

func (g *Game) capture(f *tether.Frame) {
	f.CopyTo(&g.frame)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.sched.SetVisible(!g.cfg.PauseUnfocused || (ebiten.IsFocused() && !ebiten.IsWindowMinimized()))
	g.input.poll(g.view, &g.sched.Pointers)

	dt := 1 / float64(ebiten.TPS())
	if err := g.sched.Tick(dt); err != nil {
		return err
	}
	if g.debug != nil {
		g.debug.update(dt, &g.frame)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.draw(screen, &g.frame, g.view)
	if g.debug != nil {
		g.debug.draw(screen)
	}
}

// Layout implements ebiten.Game. The screen is sized in device pixels and
// the canvas is letterboxed inside it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	g.view = tether.FitViewport(g.cfg.CanvasWidth, g.cfg.CanvasHeight, float64(outsideWidth), float64(outsideHeight))
	g.view.PixelRatio = scale
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}
