package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/tether"
)

// Input turns tcell mouse events into pointer events. Button 1 drags.
type Input struct {
	down bool
	last tether.Vec2
}

// HandleMouse queues the pointer events for ev. Positions are mapped
// through view from cell centres to canvas coordinates.
func (in *Input) HandleMouse(ev *tcell.EventMouse, view tether.Viewport, q *tether.PointerQueue) {
	cx, cy := ev.Position()
	at := view.ScreenToCanvas(float64(cx)+0.5, float64(cy)+0.5)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !in.down:
		in.down = true
		q.Press(at)
	case !pressed && in.down:
		in.down = false
		q.Release(at)
	case at != in.last:
		q.Move(at)
	}
	in.last = at
}
