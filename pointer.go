package tether

import "sync"

// PointerAction is the kind of a queued pointer event.
type PointerAction uint8

const (
	PointerPressed  PointerAction = iota // button or touch went down
	PointerMoved                         // pointer moved
	PointerReleased                      // button or touch went up
)

// PointerEvent is one pointer sample in canvas coordinates.
type PointerEvent struct {
	Action PointerAction
	Pos    Vec2
}

// Interactive is implemented by simulations that accept pointer input.
// Positions are canvas coordinates; hosts translate with a Viewport first.
type Interactive interface {
	PointerDown(at Vec2) bool
	PointerMove(at Vec2)
	PointerUp(at Vec2)
}

// Dispatch feeds ev to in.
func Dispatch(in Interactive, ev PointerEvent) {
	switch ev.Action {
	case PointerPressed:
		in.PointerDown(ev.Pos)
	case PointerMoved:
		in.PointerMove(ev.Pos)
	case PointerReleased:
		in.PointerUp(ev.Pos)
	}
}

// PointerQueue buffers pointer events between frames. Input producers may
// push from any goroutine; the scheduler drains the whole queue once at the
// start of each frame so a frame never sees input change mid-step.
type PointerQueue struct {
	mu     sync.Mutex
	events []PointerEvent
}

// Push queues ev for the next frame.
func (q *PointerQueue) Push(ev PointerEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Press queues a press at canvas position at.
func (q *PointerQueue) Press(at Vec2) { q.Push(PointerEvent{PointerPressed, at}) }

// Move queues a move to canvas position at.
func (q *PointerQueue) Move(at Vec2) { q.Push(PointerEvent{PointerMoved, at}) }

// Release queues a release at canvas position at.
func (q *PointerQueue) Release(at Vec2) { q.Push(PointerEvent{PointerReleased, at}) }

// Drain appends every queued event to dst in arrival order, empties the
// queue, and returns the extended slice.
func (q *PointerQueue) Drain(dst []PointerEvent) []PointerEvent {
	q.mu.Lock()
	dst = append(dst, q.events...)
	q.events = q.events[:0]
	q.mu.Unlock()
	return dst
}

// Len returns the number of queued events.
func (q *PointerQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
