package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/tether"
)

// pointer tracks a single pointer (the mouse, or the first touch) and turns
// per-tick samples into press/move/release events.
type pointer struct {
	down  bool
	last  tether.Vec2
	touch ebiten.TouchID

	touching bool
	touchIDs []ebiten.TouchID
}

// sample runs the pointer state machine for one tick.
func (p *pointer) sample(pressed bool, at tether.Vec2, q *tether.PointerQueue) {
	switch {
	case pressed && !p.down:
		p.down = true
		q.Press(at)
	case !pressed && p.down:
		p.down = false
		q.Release(at)
	case at != p.last:
		// Hover moves count too, so pointer velocity is current at press.
		q.Move(at)
	}
	p.last = at
}

// poll reads the mouse and touch state and feeds the queue. Touch wins over
// the mouse while a finger is down.
func (p *pointer) poll(view tether.Viewport, q *tether.PointerQueue) {
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if !p.touching && len(p.touchIDs) > 0 {
		p.touching = true
		p.touch = p.touchIDs[0]
	}
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touch) {
			p.touching = false
			p.sample(false, p.last, q)
			return
		}
		tx, ty := ebiten.TouchPosition(p.touch)
		p.sample(true, view.ScreenToCanvas(float64(tx), float64(ty)), q)
		return
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.sample(pressed, view.ScreenToCanvas(float64(mx), float64(my)), q)
}
