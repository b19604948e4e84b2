package tether

import (
	"math"
	"math/rand/v2"
)

// Link is the payload of a rope node: the icon label, where it points, and
// its accent color.
type Link struct {
	Label string
	URL   string
	Color Color
}

// DefaultLinks returns the stock social chain.
func DefaultLinks() []Link {
	return []Link{
		{Label: "GitHub", URL: "#", Color: MustHex("#495e33")},
		{Label: "LinkedIn", URL: "#", Color: MustHex("#6b7a5a")},
		{Label: "Email", URL: "#", Color: MustHex("#8b947f")},
		{Label: "Twitter", URL: "#", Color: MustHex("#3a472a")},
		{Label: "Instagram", URL: "#", Color: MustHex("#a2a899")},
	}
}

// RopeConfig configures a RopeChain. Start with DefaultRopeConfig.
type RopeConfig struct {
	Links  []Link
	Anchor Vec2 // fixed position of node 0
	Top    float64
	// Spacing is the vertical gap between nodes at construction.
	Spacing       float64
	SegmentLength float64
	Stiffness     float64
	Damping       float64
	Gravity       float64

	// GrabHalfSize is half the side of each node's square hit box.
	GrabHalfSize float64
	Goal         GoalZone

	JerkX, JerkY       float64
	ImpulseX, ImpulseY float64
	ImpulseChance      float64
	ImpulseInterval    float64 // seconds; <= 0 disables periodic impulses

	// Rand drives the periodic impulses. Nil seeds a PCG from fixed values.
	Rand *rand.Rand
}

// DefaultRopeConfig returns the stock five-link chain.
func DefaultRopeConfig() RopeConfig {
	return RopeConfig{
		Links:           DefaultLinks(),
		Anchor:          Vec2{RopeAnchorX, RopeAnchorY},
		Top:             50,
		Spacing:         RopeSpacing,
		SegmentLength:   RopeSegmentLength,
		Stiffness:       RopeStiffness,
		Damping:         RopeDamping,
		Gravity:         RopeGravity,
		GrabHalfSize:    RopeGrabHalfSize,
		Goal:            DefaultGoalZone(RopeContainerHeight),
		JerkX:           RopeJerkX,
		JerkY:           RopeJerkY,
		ImpulseX:        RopeImpulseX,
		ImpulseY:        RopeImpulseY,
		ImpulseChance:   RopeImpulseChance,
		ImpulseInterval: RopeImpulseInterval.Seconds(),
	}
}

// RopeChain is a hanging chain of link icons. Node 0 is anchored; every
// other node is a damped spring pulled by its neighbours. Nodes can be
// dragged and dropped onto a goal zone to trigger their link.
type RopeChain struct {
	emitter

	// OnDrop is called once per release that ends inside the goal zone.
	OnDrop func(Link)

	cfg  RopeConfig
	body Body
	rng  *rand.Rand

	dragged   int
	pointer   Vec2
	lit       bool
	visible   bool
	jerked    bool
	impulseAt float64

	snap []Vec2
	dv   []Vec2
}

// NewRopeChain lays the chain out vertically below cfg.Anchor.
func NewRopeChain(cfg RopeConfig) *RopeChain {
	rc := &RopeChain{cfg: cfg, dragged: -1, rng: cfg.Rand}
	if rc.rng == nil {
		rc.rng = rand.New(rand.NewPCG(1, 2))
	}
	for i := range cfg.Links {
		rc.body.AddPoint(cfg.Anchor.X, cfg.Top+float64(i)*cfg.Spacing)
	}
	for i := 1; i < len(cfg.Links); i++ {
		s := rc.body.ConnectElastic(i-1, i, cfg.Stiffness, true)
		rc.body.Sticks[s].Rest = cfg.SegmentLength
	}
	rc.snap = make([]Vec2, len(cfg.Links))
	rc.dv = make([]Vec2, len(cfg.Links))
	return rc
}

// Body exposes the chain. Callers must not add points or sticks.
func (rc *RopeChain) Body() *Body { return &rc.body }

// Dragged returns the node held by the pointer, or -1.
func (rc *RopeChain) Dragged() int { return rc.dragged }

// Lit reports whether the goal zone is highlighted.
func (rc *RopeChain) Lit() bool { return rc.lit }

// SetVisible records visibility. Becoming visible applies the initial jerk
// once; hiding resets the latch so the next reveal jerks again. Hiding also
// lets go of a dragged node without firing a drop, since the release may
// never arrive.
func (rc *RopeChain) SetVisible(v bool) {
	rc.visible = v
	if !v {
		rc.jerked = false
		rc.endDrag()
		return
	}
	if rc.jerked {
		return
	}
	rc.jerked = true
	for i := range rc.body.Points {
		kick := Vec2{rc.cfg.JerkX, -rc.cfg.JerkY}
		if i%2 == 1 {
			kick.X = -rc.cfg.JerkX
		}
		rc.body.Points[i].Push(kick)
	}
}

// Step advances one frame. Spring forces read a snapshot taken at the start
// of the frame, so node order does not bias the result.
func (rc *RopeChain) Step(dt float64) {
	rc.impulse(dt)

	pts := rc.body.Points
	for i := range pts {
		rc.snap[i] = pts[i].Pos
		rc.dv[i] = Vec2{}
	}
	for _, s := range rc.body.Sticks {
		f := s.spring(rc.snap)
		rc.dv[s.A] = rc.dv[s.A].Add(f)
		rc.dv[s.B] = rc.dv[s.B].Sub(f)
	}

	for i := range pts {
		p := &pts[i]
		switch {
		case i == rc.dragged:
			p.Pos = rc.pointer
			p.Prev = rc.pointer
			continue
		case i == 0:
			p.Pos = rc.cfg.Anchor
			p.Prev = rc.cfg.Anchor
			p.Pinned = true
			continue
		}

		v := p.Velocity()
		v.Y += rc.cfg.Gravity
		v = v.Add(rc.dv[i])
		p.Advance(v.Scale(rc.cfg.Damping))
	}
}

// impulse kicks random nodes every ImpulseInterval seconds of frame time.
func (rc *RopeChain) impulse(dt float64) {
	if rc.cfg.ImpulseInterval <= 0 {
		return
	}
	rc.impulseAt += dt
	if rc.impulseAt < rc.cfg.ImpulseInterval {
		return
	}
	rc.impulseAt = 0
	for i := range rc.body.Points {
		if rc.rng.Float64() >= rc.cfg.ImpulseChance {
			continue
		}
		rc.body.Points[i].Push(Vec2{
			X: (rc.rng.Float64() - 0.5) * rc.cfg.ImpulseX,
			Y: (rc.rng.Float64() - 0.5) * rc.cfg.ImpulseY,
		})
	}
}

// hit returns the node whose square hit box contains at, or -1. Later
// nodes are on top.
func (rc *RopeChain) hit(at Vec2) int {
	h := rc.cfg.GrabHalfSize
	for i := len(rc.body.Points) - 1; i >= 0; i-- {
		p := rc.body.Points[i].Pos
		if math.Abs(at.X-p.X) <= h && math.Abs(at.Y-p.Y) <= h {
			return i
		}
	}
	return -1
}

// PointerDown starts dragging the node under the pointer.
func (rc *RopeChain) PointerDown(at Vec2) bool {
	rc.endDrag()
	i := rc.hit(at)
	if i < 0 {
		return false
	}
	rc.dragged = i
	rc.pointer = at
	rc.body.Points[i].Pinned = true
	rc.emit(Event{Type: EventGrab, Node: i, Pos: at, Link: rc.cfg.Links[i]})
	rc.updateGoal()
	return true
}

// PointerMove moves the dragged node and refreshes the goal highlight.
func (rc *RopeChain) PointerMove(at Vec2) {
	if rc.dragged < 0 {
		return
	}
	rc.pointer = at
	rc.body.Points[rc.dragged].Pos = at
	rc.updateGoal()
}

// PointerUp ends the drag. If the dragged node sits inside the goal zone the
// link fires exactly once.
func (rc *RopeChain) PointerUp(at Vec2) {
	i := rc.endDrag()
	if i < 0 {
		return
	}
	p := rc.body.Points[i].Pos
	if rc.cfg.Goal.Inside(p) {
		link := rc.cfg.Links[i]
		rc.emit(Event{Type: EventDrop, Node: i, Pos: p, Link: link})
		if rc.OnDrop != nil {
			rc.OnDrop(link)
		}
	}
}

// endDrag lets go of the dragged node and returns its index, or -1 when
// nothing was dragged. The node keeps no velocity from the drag.
func (rc *RopeChain) endDrag() int {
	i := rc.dragged
	if i < 0 {
		return -1
	}
	rc.dragged = -1
	p := &rc.body.Points[i]
	p.Pinned = i == 0
	p.Prev = p.Pos
	link := rc.cfg.Links[i]
	rc.emit(Event{Type: EventRelease, Node: i, Pos: p.Pos, Link: link})

	if rc.lit {
		rc.lit = false
		rc.emit(Event{Type: EventGoalLeave, Node: i, Pos: p.Pos, Link: link})
	}
	return i
}

func (rc *RopeChain) updateGoal() {
	near := rc.cfg.Goal.Near(rc.pointer)
	if near == rc.lit {
		return
	}
	rc.lit = near
	typ := EventGoalLeave
	if near {
		typ = EventGoalEnter
	}
	rc.emit(Event{Type: typ, Node: rc.dragged, Pos: rc.pointer, Link: rc.cfg.Links[rc.dragged]})
}

// Snapshot writes the chain, its payload and the goal zone into f.
func (rc *RopeChain) Snapshot(f *Frame) {
	rc.body.snapshot(f)
	for i := range f.Nodes {
		f.Nodes[i].Color = rc.cfg.Links[i].Color
		f.Nodes[i].Label = rc.cfg.Links[i].Label
	}
	f.Grabbed = rc.dragged
	f.Goal = GoalFrame{
		Active: rc.dragged >= 0,
		Bounds: rc.cfg.Goal.Bounds,
		Lit:    rc.lit,
	}
	if rc.lit && rc.dragged >= 0 {
		f.Goal.Highlight = rc.cfg.Links[rc.dragged].Color
	}
}
