package termview

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/tether"
)

// Run draws sim on screen until ctx is cancelled or the user presses Esc,
// q or Ctrl-C. screen must already be initialised; Run enables the mouse
// but does not call Fini.
func Run(ctx context.Context, screen tcell.Screen, sim tether.Simulation, canvasW, canvasH float64) error {
	screen.EnableMouse()
	defer screen.DisableMouse()
	screen.EnableFocus()
	defer screen.DisableFocus()

	r := NewRenderer(screen, canvasW, canvasH)
	sched := tether.NewScheduler(sim, r)
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("termview: %w", err)
	}
	defer sched.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		// Wake PollEvent so the loop below can exit.
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	var in Input
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventResize:
			r.Resize()
			screen.Sync()
		case *tcell.EventMouse:
			in.HandleMouse(ev, r.Viewport(), &sched.Pointers)
		case *tcell.EventFocus:
			sched.SetVisible(ev.Focused)
		}
	}
}
