package tether

// Point is a verlet point mass. Velocity is implicit: Pos - Prev.
type Point struct {
	Pos  Vec2
	Prev Vec2

	// Pinned points are skipped by Integrate and never moved by stick
	// resolution. Held points and rope anchors are pinned.
	Pinned bool
}

// NewPoint returns a point at rest at (x, y).
func NewPoint(x, y float64) Point {
	p := Vec2{x, y}
	return Point{Pos: p, Prev: p}
}

// Velocity returns the implicit per-frame velocity.
func (p *Point) Velocity() Vec2 {
	return p.Pos.Sub(p.Prev)
}

// Integrate advances a free point one frame:
//
//	v    = (Pos - Prev) * friction
//	Prev = Pos
//	Pos  = Pos + v + (0, gravity)
//
// Pinned points are left untouched; gravity does not act on them.
func (p *Point) Integrate(friction, gravity float64) {
	if p.Pinned {
		return
	}
	v := p.Pos.Sub(p.Prev).Scale(friction)
	p.Prev = p.Pos
	p.Pos = Vec2{p.Pos.X + v.X, p.Pos.Y + v.Y + gravity}
}

// Advance moves the point by an explicit velocity, keeping Prev one step
// behind. Used by controllers that compute velocity themselves.
func (p *Point) Advance(v Vec2) {
	p.Prev = p.Pos
	p.Pos = p.Pos.Add(v)
}

// Hold pins the point at the pointer and back-computes Prev so that the
// implicit velocity equals vel. Releasing the hold keeps that velocity.
func (p *Point) Hold(at, vel Vec2) {
	p.Pos = at
	p.Prev = at.Sub(vel)
	p.Pinned = true
}

// Push adds impulse to the implicit velocity.
func (p *Point) Push(impulse Vec2) {
	p.Prev = p.Prev.Sub(impulse)
}

// SetVelocity replaces the implicit velocity.
func (p *Point) SetVelocity(v Vec2) {
	p.Prev = p.Pos.Sub(v)
}
