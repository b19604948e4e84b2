package tether

import (
	"math"
	"testing"
)

func TestBodyConnect_RestFromLayout(t *testing.T) {
	var b Body
	b.AddPoint(0, 0)
	b.AddPoint(30, 40)
	s := b.Connect(0, 1, false)
	if b.Sticks[s].Rest != 50 {
		t.Errorf("Rest = %v, want 50", b.Sticks[s].Rest)
	}
	if b.Sticks[s].Stiffness != 1 {
		t.Errorf("Stiffness = %v, want 1", b.Sticks[s].Stiffness)
	}
}

func TestBodyNearest(t *testing.T) {
	var b Body
	b.AddPoint(0, 0)
	b.AddPoint(100, 0)
	b.AddPoint(200, 0)

	tests := []struct {
		name  string
		at    Vec2
		maxSq float64
		want  int
	}{
		{"closest first", Vec2{10, 0}, 1e6, 0},
		{"closest middle", Vec2{110, 5}, 1e6, 1},
		{"out of range", Vec2{150, 80}, 100, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Nearest(tt.at, tt.maxSq); got != tt.want {
				t.Errorf("Nearest(%v) = %d, want %d", tt.at, got, tt.want)
			}
		})
	}
}

func TestBodyFinite(t *testing.T) {
	var b Body
	b.AddPoint(1, 1)
	if !b.Finite() {
		t.Fatal("expected finite")
	}
	b.Points[0].Prev.X = math.NaN()
	if b.Finite() {
		t.Error("NaN not detected")
	}
}

func TestBodySnapshot(t *testing.T) {
	var b Body
	b.AddPoint(1, 2)
	b.AddPoint(3, 4)
	b.Connect(0, 1, true)

	var f Frame
	f.reset()
	b.snapshot(&f)
	if len(f.Nodes) != 2 || len(f.Segments) != 1 {
		t.Fatalf("got %d nodes, %d segments", len(f.Nodes), len(f.Segments))
	}
	if f.Nodes[1].Pos != (Vec2{3, 4}) || !f.Segments[0].Visible {
		t.Errorf("unexpected snapshot %+v", f)
	}

	c := f.Copy()
	c.Nodes[0].Pos = Vec2{}
	if f.Nodes[0].Pos != (Vec2{1, 2}) {
		t.Error("Copy shares node storage")
	}
}
