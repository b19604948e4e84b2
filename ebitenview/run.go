package ebitenview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tether"
)

// RunConfig holds optional settings for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size. Defaults to 800x600 if zero.
	Width, Height int
	// CanvasWidth and CanvasHeight are the simulation's logical size.
	// Defaults to 800x600 if zero.
	CanvasWidth, CanvasHeight float64
	// ShowFPS enables a small FPS/TPS widget in the top-left corner.
	ShowFPS bool
	// PauseUnfocused hides the simulation while the window is minimized or
	// unfocused, so it stops evolving.
	PauseUnfocused bool
	// Script, if non-nil, replays scripted input.
	Script *tether.ScriptRunner
}

// DefaultRunConfig returns an 800x600 window for an 800x600 canvas.
func DefaultRunConfig() RunConfig {
	return RunConfig{Width: 800, Height: 600, CanvasWidth: 800, CanvasHeight: 600}
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = 800, 600
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		c.CanvasWidth, c.CanvasHeight = 800, 600
	}
	return c
}

// Run opens a window and drives sim until the window is closed.
//
// For full control, use NewGame and pass it to ebiten.RunGame yourself.
func Run(sim tether.Simulation, cfg RunConfig) error {
	g, err := NewGame(sim, cfg)
	if err != nil {
		return err
	}
	if cfg.Script != nil {
		g.Scheduler().SetScript(cfg.Script)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenview: %w", err)
	}
	return nil
}
