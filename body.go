package tether

// Body is a fixed graph of point masses joined by sticks. Points live in an
// arena slice and sticks refer to them by index, so iteration order is the
// slice order and the shape never changes after construction.
type Body struct {
	Points []Point
	Sticks []Stick
}

// AddPoint appends a point at rest and returns its index.
func (b *Body) AddPoint(x, y float64) int {
	b.Points = append(b.Points, NewPoint(x, y))
	return len(b.Points) - 1
}

// Connect joins points a and b with a rigid stick whose rest length is their
// current distance.
func (b *Body) Connect(a, c int, visible bool) int {
	return b.ConnectElastic(a, c, 1, visible)
}

// ConnectElastic is like Connect with an explicit stiffness.
func (b *Body) ConnectElastic(a, c int, stiffness float64, visible bool) int {
	s := Stick{A: a, B: c, Stiffness: stiffness, Visible: visible}
	s.Rest = s.Length(b.Points)
	b.Sticks = append(b.Sticks, s)
	return len(b.Sticks) - 1
}

// Integrate advances every free point one frame.
func (b *Body) Integrate(friction, gravity float64) {
	for i := range b.Points {
		b.Points[i].Integrate(friction, gravity)
	}
}

// Relax resolves every stick in order, repeated iterations times. Stiffness
// comes from repetition rather than an exact solve.
func (b *Body) Relax(iterations int) {
	for range iterations {
		for i := range b.Sticks {
			b.Sticks[i].resolve(b.Points)
		}
	}
}

// Push adds impulse to the velocity of every point.
func (b *Body) Push(impulse Vec2) {
	for i := range b.Points {
		b.Points[i].Push(impulse)
	}
}

// Nearest returns the index of the point closest to at whose squared
// distance is below maxDistSq, or -1.
func (b *Body) Nearest(at Vec2, maxDistSq float64) int {
	best, bestD := -1, maxDistSq
	for i := range b.Points {
		if d := b.Points[i].Pos.DistSq(at); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// Finite reports whether every point position is a finite number.
func (b *Body) Finite() bool {
	for i := range b.Points {
		if !b.Points[i].Pos.finite() || !b.Points[i].Prev.finite() {
			return false
		}
	}
	return true
}

// snapshot appends the body's geometry to f.
func (b *Body) snapshot(f *Frame) {
	for i := range b.Points {
		f.Nodes = append(f.Nodes, FrameNode{Pos: b.Points[i].Pos, Color: ColorWhite})
	}
	for _, s := range b.Sticks {
		f.Segments = append(f.Segments, FrameSegment{A: s.A, B: s.B, Visible: s.Visible})
	}
}
