package tether

// Event carries interaction data out of a controller. Controllers emit on
// the scheduler's goroutine during PointerDown/Move/Up or Step.
type Event struct {
	Type EventType
	Node int  // node index the event concerns, or -1
	Pos  Vec2 // canvas position of that node or the pointer

	// Link is set for rope events.
	Link Link

	// Posture is set for EventPosture.
	Posture PostureState
}

// EventSink receives controller events. Set one on a Ragdoll or RopeChain to
// forward interactions elsewhere (for example the Donburi bridge in
// tether/ecs).
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// EmitEvent calls fn(event).
func (fn EventSinkFunc) EmitEvent(event Event) { fn(event) }

// emitter is embedded by controllers.
type emitter struct {
	sink EventSink
}

// SetEventSink sets the sink that receives this controller's events. Pass
// nil to disable.
func (e *emitter) SetEventSink(sink EventSink) {
	e.sink = sink
}

func (e *emitter) emit(ev Event) {
	if e.sink != nil {
		e.sink.EmitEvent(ev)
	}
}
