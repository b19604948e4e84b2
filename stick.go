package tether

import "math"

// Stick is a distance constraint between two points of a Body. A and B are
// indices into Body.Points.
type Stick struct {
	A, B int

	// Rest is the target distance, fixed when the stick is created.
	Rest float64

	// Stiffness is the fraction of the length error corrected per
	// resolution pass, in (0, 1]. 1 is rigid.
	Stiffness float64

	// Visible is a rendering hint. Invisible sticks still constrain.
	Visible bool
}

// resolve moves the endpoints toward the rest length. The correction is
// split evenly between free endpoints; a single free endpoint takes all of
// it. Coincident endpoints are skipped for this pass.
func (s *Stick) resolve(points []Point) {
	a, b := &points[s.A], &points[s.B]
	if a.Pinned && b.Pinned {
		return
	}
	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return
	}

	k := (s.Rest - dist) / dist * s.Stiffness
	ox, oy := dx*k, dy*k

	switch {
	case a.Pinned:
		b.Pos.X += ox
		b.Pos.Y += oy
	case b.Pinned:
		a.Pos.X -= ox
		a.Pos.Y -= oy
	default:
		ox, oy = ox/2, oy/2
		a.Pos.X -= ox
		a.Pos.Y -= oy
		b.Pos.X += ox
		b.Pos.Y += oy
	}
}

// Length returns the current endpoint distance.
func (s *Stick) Length(points []Point) float64 {
	return points[s.B].Pos.Sub(points[s.A].Pos).Len()
}

// spring returns the velocity change a spring-like stick applies to its A
// endpoint, reading positions from pos; B receives the negation. The pull is
// proportional to the stretch and to Stiffness. Coincident endpoints yield
// zero.
func (s *Stick) spring(pos []Vec2) Vec2 {
	d := pos[s.B].Sub(pos[s.A])
	dist := math.Sqrt(d.X*d.X + d.Y*d.Y)
	if dist == 0 {
		return Vec2{}
	}
	return d.Scale((dist - s.Rest) / dist * s.Stiffness)
}
