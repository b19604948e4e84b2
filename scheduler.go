package tether

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrRunning is returned when a scheduler that is already looping is started
// again or ticked from outside.
var ErrRunning = errors.New("tether: scheduler already running")

// Simulation is one physics widget driven by a Scheduler.
type Simulation interface {
	// Step advances one frame. dt is the wall-clock time since the previous
	// frame in seconds.
	Step(dt float64)
	// Snapshot appends the current state to f.
	Snapshot(f *Frame)
}

// Visibility is implemented by simulations that react to being shown or
// hidden. SetVisible is called on the frame goroutine when the scheduler's
// visibility flag changes.
type Visibility interface {
	SetVisible(visible bool)
}

// Scheduler owns a simulation and runs its frame loop: pointer input,
// Step, Snapshot, Render, strictly in that order, one frame at a time.
//
// Frames run either on a goroutine started with Start, or from a host loop
// (such as an ebiten.Game) calling Tick. Only the frame goroutine touches the
// simulation; other goroutines talk to it through Pointers and SetVisible.
type Scheduler struct {
	// Pointers receives input for the next frame.
	Pointers PointerQueue

	sim      Simulation
	renderer Renderer
	interval time.Duration

	visible     atomic.Bool
	lastVisible bool
	primed      bool

	frame  Frame
	events []PointerEvent
	script *ScriptRunner

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a visible scheduler for sim. renderer may be nil.
func NewScheduler(sim Simulation, renderer Renderer) *Scheduler {
	s := &Scheduler{sim: sim, renderer: renderer, interval: DefaultFrameInterval}
	s.visible.Store(true)
	s.frame.reset()
	return s
}

// SetInterval sets the goroutine loop's frame period. It takes effect on the
// next Start.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// SetVisible shows or hides the simulation. Hidden frames are skipped
// entirely: no input, no Step, no Render, so the state does not evolve.
// Safe to call from any goroutine.
func (s *Scheduler) SetVisible(v bool) {
	s.visible.Store(v)
}

// Visible reports the visibility flag.
func (s *Scheduler) Visible() bool {
	return s.visible.Load()
}

// SetScript attaches a scripted input runner. It feeds the pointer queue
// one step per frame. Pass nil to detach.
func (s *Scheduler) SetScript(r *ScriptRunner) {
	s.script = r
}

// Frame returns the most recent snapshot. Only valid on the frame goroutine
// or after Stop.
func (s *Scheduler) Frame() *Frame {
	return &s.frame
}

// Start runs frames on a new goroutine until ctx is cancelled or Stop is
// called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return ErrRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.interval, s.done)
	return nil
}

// Stop cancels the loop and waits for the in-flight frame to finish. Stop on
// a scheduler that is not running is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the goroutine loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Tick runs a single frame on the caller's goroutine. Hosts with their own
// loop call it once per update.
func (s *Scheduler) Tick(dt float64) error {
	if s.Running() {
		return ErrRunning
	}
	s.step(dt)
	return nil
}

func (s *Scheduler) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)
	defer s.finish(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.step(dt)
		}
	}
}

// finish clears the loop state when the goroutine exits on its own, so a
// cancelled parent context leaves the scheduler stopped. Stop has already
// cleared it when it started the shutdown.
func (s *Scheduler) finish(done chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != done {
		return
	}
	s.cancel()
	s.cancel, s.done = nil, nil
}

// step is one frame. Visibility and input are each read once.
func (s *Scheduler) step(dt float64) {
	if s.script != nil {
		s.script.step(s)
	}

	visible := s.visible.Load()
	if !s.primed || visible != s.lastVisible {
		s.primed = true
		s.lastVisible = visible
		if v, ok := s.sim.(Visibility); ok {
			v.SetVisible(visible)
		}
	}
	if !visible {
		s.events = s.Pointers.Drain(s.events[:0])
		return
	}

	s.events = s.Pointers.Drain(s.events[:0])
	if in, ok := s.sim.(Interactive); ok {
		for _, ev := range s.events {
			Dispatch(in, ev)
		}
	}

	s.sim.Step(dt)

	seq, t := s.frame.Seq+1, s.frame.Time+dt
	s.frame.reset()
	s.frame.Seq, s.frame.Time = seq, t
	s.sim.Snapshot(&s.frame)

	if s.renderer != nil {
		s.renderer.Render(&s.frame)
	}
}
