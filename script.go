package tether

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script. Coordinates are canvas
// coordinates.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted interaction against a Scheduler, feeding
// at most one pointer event per frame. Attach with Scheduler.SetScript.
//
// Actions: "press", "move", "release" (x, y); "drag" (fromX, fromY, toX,
// toY, frames); "wait" (frames); "show"; "hide".
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	pending   []PointerEvent
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("tether: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("tether: parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "press", "move", "release", "drag", "wait", "show", "hide":
		default:
			return nil, fmt.Errorf("tether: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(s *Scheduler) {
	if r.done {
		return
	}
	if len(r.pending) > 0 {
		s.Pointers.Push(r.pending[0])
		r.pending = r.pending[1:]
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.Pointers.Press(Vec2{st.X, st.Y})
	case "move":
		s.Pointers.Move(Vec2{st.X, st.Y})
	case "release":
		s.Pointers.Release(Vec2{st.X, st.Y})
	case "drag":
		r.pending = dragEvents(Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}, st.Frames)
		s.Pointers.Push(r.pending[0])
		r.pending = r.pending[1:]
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "show":
		s.SetVisible(true)
	case "hide":
		s.SetVisible(false)
	}
	r.checkDone()
}

func (r *ScriptRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.pending) == 0 {
		r.done = true
	}
}

// dragEvents spreads a drag over frames events: a press at from, evenly
// spaced moves ending on to, and a release at to. Fewer than two frames is
// treated as two.
func dragEvents(from, to Vec2, frames int) []PointerEvent {
	if frames < 2 {
		frames = 2
	}
	evs := make([]PointerEvent, 0, frames)
	evs = append(evs, PointerEvent{PointerPressed, from})
	moves := frames - 2
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves)
		evs = append(evs, PointerEvent{PointerMoved, from.Lerp(to, t)})
	}
	return append(evs, PointerEvent{PointerReleased, to})
}
