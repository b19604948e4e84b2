package tether

import (
	"math/rand/v2"
	"testing"
)

func quietRopeConfig() RopeConfig {
	cfg := DefaultRopeConfig()
	cfg.ImpulseInterval = 0
	return cfg
}

func settle(rc *RopeChain, frames int) {
	for range frames {
		rc.Step(testDT)
	}
}

func TestRopeChain_HangsInOrder(t *testing.T) {
	cfg := quietRopeConfig()
	rc := NewRopeChain(cfg)
	settle(rc, 600)

	pts := rc.Body().Points
	if len(pts) != 5 {
		t.Fatalf("nodes = %d, want 5", len(pts))
	}
	if pts[0].Pos != cfg.Anchor {
		t.Errorf("anchor at %v, want %v", pts[0].Pos, cfg.Anchor)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Pos.Y <= pts[i-1].Pos.Y {
			t.Errorf("node %d y=%v not below node %d y=%v", i, pts[i].Pos.Y, i-1, pts[i-1].Pos.Y)
		}
		if !near(pts[i].Pos.X, cfg.Anchor.X, 1e-6) {
			t.Errorf("node %d drifted to x=%v", i, pts[i].Pos.X)
		}
	}
	// Each segment sags a little past its rest length under the weight below.
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Pos.Y - pts[i-1].Pos.Y
		if seg < cfg.SegmentLength || seg > cfg.SegmentLength+40 {
			t.Errorf("segment %d length %v, want just over %v", i, seg, cfg.SegmentLength)
		}
	}
}

func TestRopeChain_DropFiresOnce(t *testing.T) {
	rc := NewRopeChain(quietRopeConfig())
	settle(rc, 120)

	var drops []Link
	var types []EventType
	rc.OnDrop = func(l Link) { drops = append(drops, l) }
	rc.SetEventSink(EventSinkFunc(func(e Event) { types = append(types, e.Type) }))

	last := len(rc.Body().Points) - 1
	if !rc.PointerDown(rc.Body().Points[last].Pos) {
		t.Fatal("expected to grab the last node")
	}
	center := DefaultGoalZone(RopeContainerHeight).Bounds.Center()
	rc.PointerMove(center)
	for range 10 {
		rc.Step(testDT)
		if !rc.Lit() {
			t.Fatal("goal should stay lit while held over its centre")
		}
	}
	if len(drops) != 0 {
		t.Fatalf("drop fired while still held: %v", drops)
	}
	rc.PointerUp(center)
	settle(rc, 30)

	if len(drops) != 1 || drops[0].Label != "Instagram" {
		t.Fatalf("drops = %v, want one Instagram drop", drops)
	}
	want := []EventType{EventGrab, EventGoalEnter, EventRelease, EventGoalLeave, EventDrop}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestRopeChain_HideLetsGoWithoutDrop(t *testing.T) {
	rc := NewRopeChain(quietRopeConfig())
	settle(rc, 60)
	dropped := false
	rc.OnDrop = func(Link) { dropped = true }

	center := DefaultGoalZone(RopeContainerHeight).Bounds.Center()
	rc.PointerDown(rc.Body().Points[3].Pos)
	rc.PointerMove(center)
	rc.Step(testDT)

	rc.SetVisible(false)
	if rc.Dragged() != -1 || rc.Lit() {
		t.Fatalf("dragged=%d lit=%v after hide", rc.Dragged(), rc.Lit())
	}
	if rc.Body().Points[3].Pinned {
		t.Error("node 3 still pinned after hide")
	}
	if dropped {
		t.Error("hiding fired a drop")
	}
}

func TestRopeChain_SecondPressLetsGoOfFirst(t *testing.T) {
	rc := NewRopeChain(quietRopeConfig())
	settle(rc, 60)

	rc.PointerDown(rc.Body().Points[2].Pos)
	rc.PointerMove(Vec2{300, 200})
	rc.Step(testDT)
	if !rc.PointerDown(rc.Body().Points[4].Pos) {
		t.Fatal("expected to grab node 4")
	}
	if rc.Body().Points[2].Pinned {
		t.Error("node 2 still pinned after a new press")
	}
	rc.PointerUp(rc.Body().Points[4].Pos)

	start := rc.Body().Points[2].Pos
	settle(rc, 120)
	if rc.Body().Points[2].Pos == start {
		t.Error("node 2 frozen after both drags ended")
	}
}

func TestRopeChain_ReleaseOutsideGoal(t *testing.T) {
	rc := NewRopeChain(quietRopeConfig())
	dropped := false
	rc.OnDrop = func(Link) { dropped = true }

	rc.PointerDown(rc.Body().Points[1].Pos)
	rc.PointerMove(Vec2{600, 100})
	rc.Step(testDT)
	rc.PointerUp(Vec2{600, 100})
	if dropped {
		t.Error("drop fired outside the goal")
	}
	if rc.Dragged() != -1 {
		t.Errorf("Dragged = %d after release", rc.Dragged())
	}
}

func TestRopeChain_DraggedNodeFollowsPointer(t *testing.T) {
	rc := NewRopeChain(quietRopeConfig())
	settle(rc, 60)

	rc.PointerDown(rc.Body().Points[4].Pos)
	target := Vec2{300, 500}
	rc.PointerMove(target)
	for range 10 {
		rc.Step(testDT)
		if got := rc.Body().Points[4].Pos; got != target {
			t.Fatalf("dragged node at %v, want %v", got, target)
		}
	}
	if rc.Body().Points[0].Pos != rc.cfg.Anchor {
		t.Error("anchor moved while another node was dragged")
	}
}

func TestRopeChain_PointerMiss(t *testing.T) {
	rc := NewRopeChain(quietRopeConfig())
	if rc.PointerDown(Vec2{700, 700}) {
		t.Error("expected miss")
	}
	rc.PointerMove(Vec2{10, 10})
	rc.PointerUp(Vec2{10, 10})
}

func TestRopeChain_JerkLatch(t *testing.T) {
	cfg := quietRopeConfig()
	rc := NewRopeChain(cfg)

	rc.SetVisible(true)
	v0 := rc.Body().Points[2].Velocity()
	if v0 != (Vec2{cfg.JerkX, -cfg.JerkY}) {
		t.Errorf("even node jerk = %v", v0)
	}
	if v1 := rc.Body().Points[1].Velocity(); v1 != (Vec2{-cfg.JerkX, -cfg.JerkY}) {
		t.Errorf("odd node jerk = %v", v1)
	}

	rc.SetVisible(true)
	if v := rc.Body().Points[2].Velocity(); v != v0 {
		t.Errorf("second SetVisible(true) jerked again: %v", v)
	}

	rc.SetVisible(false)
	rc.SetVisible(true)
	if v := rc.Body().Points[2].Velocity(); v != v0.Scale(2) {
		t.Errorf("reveal after hide should jerk again, velocity %v", v)
	}
}

func TestRopeChain_ImpulseUsesInjectedRand(t *testing.T) {
	run := func() []Vec2 {
		cfg := DefaultRopeConfig()
		cfg.Rand = rand.New(rand.NewPCG(42, 42))
		cfg.ImpulseChance = 1
		rc := NewRopeChain(cfg)
		for range 2 * 60 * 3 {
			rc.Step(testDT)
		}
		var out []Vec2
		for _, p := range rc.Body().Points {
			out = append(out, p.Pos)
		}
		return out
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("node %d diverged: %v vs %v", i, a[i], b[i])
		}
	}

	quiet := NewRopeChain(quietRopeConfig())
	settle(quiet, 360)
	moved := false
	for i, p := range quiet.Body().Points {
		if p.Pos.X != a[i].X {
			moved = true
		}
	}
	if !moved {
		t.Error("impulses had no effect")
	}
}

func TestRopeChain_Snapshot(t *testing.T) {
	rc := NewRopeChain(quietRopeConfig())
	var f Frame
	f.reset()
	rc.Snapshot(&f)
	if len(f.Nodes) != 5 || len(f.Segments) != 4 {
		t.Fatalf("nodes=%d segments=%d", len(f.Nodes), len(f.Segments))
	}
	if f.Nodes[0].Label != "GitHub" || f.Nodes[0].Color != MustHex("#495e33") {
		t.Errorf("node 0 = %+v", f.Nodes[0])
	}
	if f.Goal.Active {
		t.Error("goal active without a drag")
	}

	rc.PointerDown(rc.Body().Points[3].Pos)
	rc.PointerMove(rc.cfg.Goal.Bounds.Center())
	f.reset()
	rc.Snapshot(&f)
	if !f.Goal.Active || !f.Goal.Lit || f.Goal.Highlight != rc.cfg.Links[3].Color {
		t.Errorf("goal frame = %+v", f.Goal)
	}
}

func TestGoalZone(t *testing.T) {
	g := DefaultGoalZone(800)
	if g.Bounds != (Rect{20, 304, 192, 192}) {
		t.Fatalf("bounds = %v", g.Bounds)
	}
	tests := []struct {
		name         string
		p            Vec2
		near, inside bool
	}{
		{"centre", Vec2{116, 400}, true, true},
		{"edge", Vec2{20, 400}, true, false},
		{"corner inside", Vec2{25, 310}, false, true},
		{"far", Vec2{500, 400}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Near(tt.p); got != tt.near {
				t.Errorf("Near(%v) = %v, want %v", tt.p, got, tt.near)
			}
			if got := g.Inside(tt.p); got != tt.inside {
				t.Errorf("Inside(%v) = %v, want %v", tt.p, got, tt.inside)
			}
		})
	}
}
