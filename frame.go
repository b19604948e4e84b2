package tether

// Frame is the per-frame snapshot a Simulation hands to a Renderer. The
// scheduler reuses one Frame between frames; renderers that keep state past
// Render must copy it.
type Frame struct {
	Seq  uint64  // frame counter, starts at 1
	Time float64 // accumulated simulated seconds

	Nodes    []FrameNode
	Segments []FrameSegment

	Head    int     // ragdoll head node, or -1
	Grabbed int     // node held by the pointer, or -1
	Ground  float64 // ground line y; 0 when the simulation has none
	Width   float64 // canvas width
	Height  float64 // canvas height

	Bubble BubbleFrame
	Goal   GoalFrame
}

// FrameNode is one point of the snapshot.
type FrameNode struct {
	Pos   Vec2
	Color Color
	Label string
}

// FrameSegment references two nodes of the same frame.
type FrameSegment struct {
	A, B    int
	Visible bool
}

// BubbleFrame is the speech bubble overlay. Empty Text means no bubble.
type BubbleFrame struct {
	Text   string
	Alpha  float64
	Anchor Vec2
}

// GoalFrame describes the rope drop zone.
type GoalFrame struct {
	Active    bool // shown only while a node is dragged
	Bounds    Rect
	Lit       bool
	Highlight Color
}

// Copy returns a deep copy of f.
func (f *Frame) Copy() Frame {
	var c Frame
	f.CopyTo(&c)
	return c
}

// CopyTo deep-copies f into dst, reusing dst's slices.
func (f *Frame) CopyTo(dst *Frame) {
	nodes, segs := dst.Nodes[:0], dst.Segments[:0]
	*dst = *f
	dst.Nodes = append(nodes, f.Nodes...)
	dst.Segments = append(segs, f.Segments...)
}

func (f *Frame) reset() {
	f.Nodes = f.Nodes[:0]
	f.Segments = f.Segments[:0]
	f.Head = -1
	f.Grabbed = -1
	f.Ground = 0
	f.Width = 0
	f.Height = 0
	f.Bubble = BubbleFrame{}
	f.Goal = GoalFrame{}
}

// Renderer draws a frame. Render is called on the scheduler's goroutine.
type Renderer interface {
	Render(f *Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f *Frame)

// Render calls fn(f).
func (fn RendererFunc) Render(f *Frame) { fn(f) }
