package tether

import "testing"

func TestPointIntegrate(t *testing.T) {
	p := Point{Pos: Vec2{10, 10}, Prev: Vec2{8, 11}}
	p.Integrate(0.99, 0.5)

	// v = (2, -1) * 0.99
	want := Vec2{10 + 2*0.99, 10 - 0.99 + 0.5}
	if !near(p.Pos.X, want.X, 1e-12) || !near(p.Pos.Y, want.Y, 1e-12) {
		t.Errorf("Pos = %v, want %v", p.Pos, want)
	}
	if p.Prev != (Vec2{10, 10}) {
		t.Errorf("Prev = %v, want {10 10}", p.Prev)
	}
}

func TestPointIntegrate_Deterministic(t *testing.T) {
	a := Point{Pos: Vec2{3.25, 7.5}, Prev: Vec2{3, 7}}
	b := a
	for range 1000 {
		a.Integrate(0.99, 0.5)
		b.Integrate(0.99, 0.5)
	}
	if a != b {
		t.Errorf("identical inputs diverged: %v vs %v", a, b)
	}
}

func TestPointIntegrate_PinnedIgnoresGravity(t *testing.T) {
	p := NewPoint(5, 5)
	p.Pinned = true
	p.Integrate(0.99, 0.5)
	if p.Pos != (Vec2{5, 5}) {
		t.Errorf("pinned point moved to %v", p.Pos)
	}
}

func TestPointHold(t *testing.T) {
	p := NewPoint(0, 0)
	p.Hold(Vec2{100, 50}, Vec2{4, -2})
	if !p.Pinned {
		t.Error("Hold should pin")
	}
	if p.Velocity() != (Vec2{4, -2}) {
		t.Errorf("Velocity = %v, want {4 -2}", p.Velocity())
	}
}

func TestPointPushAndSetVelocity(t *testing.T) {
	p := NewPoint(0, 0)
	p.Push(Vec2{1, 2})
	p.Push(Vec2{1, 0})
	if p.Velocity() != (Vec2{2, 2}) {
		t.Errorf("Velocity after pushes = %v", p.Velocity())
	}
	p.SetVelocity(Vec2{-3, 0})
	if p.Velocity() != (Vec2{-3, 0}) {
		t.Errorf("Velocity after set = %v", p.Velocity())
	}
}
