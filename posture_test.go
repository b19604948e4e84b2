package tether

import (
	"math"
	"testing"
)

// liftHips moves the whole body, velocity included, so the hips sit h above
// the ground.
func liftHips(r *Ragdoll, h float64) {
	dy := r.cfg.Ground - h - r.Joint(JointHips).Pos.Y
	for i := range r.Body().Points {
		p := &r.Body().Points[i]
		p.Pos.Y += dy
		p.Prev.Y += dy
	}
}

func TestRagdoll_PostureStandsHeadOverHips(t *testing.T) {
	r := NewRagdoll(DefaultRagdollConfig())
	for range 300 {
		r.Step(testDT)
	}

	// Knock the head sideways and let the controller recover over enough
	// idle frames.
	r.Joint(JointHead).Pos.X += 20
	idle := 0
	for frame := 0; idle < 600; frame++ {
		if frame == 5000 {
			t.Fatalf("only %d idle frames in %d", idle, frame)
		}
		r.Step(testDT)
		if r.Posture() == PostureIdle {
			idle++
		}
	}

	head, hips := r.Joint(JointHead).Pos, r.Joint(JointHips).Pos
	if d := math.Abs(head.X - hips.X); d >= 3 {
		t.Errorf("|head.x - hips.x| = %v, want < 3", d)
	}
	if head.Y >= hips.Y {
		t.Errorf("head y=%v not above hips y=%v", head.Y, hips.Y)
	}
}

func TestRagdoll_PostureClassify(t *testing.T) {
	cfg := DefaultRagdollConfig()
	clearance := cfg.Posture.AirborneClearance
	tests := []struct {
		name  string
		setup func(r *Ragdoll)
		want  PostureState
	}{
		{"resting", func(r *Ragdoll) { liftHips(r, 100) }, PostureIdle},
		{"just under clearance", func(r *Ragdoll) { liftHips(r, clearance-25) }, PostureIdle},
		{"at clearance", func(r *Ragdoll) { liftHips(r, clearance) }, PostureIdle},
		{"just over clearance", func(r *Ragdoll) { liftHips(r, clearance+25) }, PostureDynamic},
		{"grabbed", func(r *Ragdoll) { liftHips(r, 100); r.grab.index = JointHead }, PostureDynamic},
		{"fast", func(r *Ragdoll) { liftHips(r, 100); r.Joint(JointHips).SetVelocity(Vec2{8, 5}) }, PostureDynamic},
		{"airborne", func(r *Ragdoll) { liftHips(r, 400) }, PostureDynamic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRagdoll(cfg)
			tt.setup(r)
			if got := r.classify(); got != tt.want {
				t.Errorf("classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRagdoll_AirborneClearance(t *testing.T) {
	if PostureAirborneClearance != 150 {
		t.Fatalf("PostureAirborneClearance = %v, want 150", PostureAirborneClearance)
	}
	r := NewRagdoll(DefaultRagdollConfig())
	liftHips(r, 175)
	if got := r.classify(); got != PostureDynamic {
		t.Errorf("hips 175 above ground classified %v, want dynamic", got)
	}
}

func TestRagdoll_PostureEvents(t *testing.T) {
	r := NewRagdoll(DefaultRagdollConfig())
	var states []PostureState
	r.SetEventSink(EventSinkFunc(func(e Event) {
		if e.Type == EventPosture {
			states = append(states, e.Posture)
		}
	}))

	// The spawn pose is above the clearance; the body settles before the
	// controller takes over.
	for frame := 0; len(states) == 0; frame++ {
		if frame == 600 {
			t.Fatal("never went idle")
		}
		r.Step(testDT)
	}
	if states[0] != PostureIdle {
		t.Fatalf("first posture event = %v, want idle", states[0])
	}

	r.PointerDown(r.Joint(JointHead).Pos)
	r.Step(testDT)
	if last := states[len(states)-1]; last != PostureDynamic || r.Posture() != PostureDynamic {
		t.Errorf("after grab: last event %v, posture %v, want dynamic", last, r.Posture())
	}
}

func TestPull_SkipsPinned(t *testing.T) {
	p := NewPoint(0, 0)
	p.Pinned = true
	pull(&p, 100, 100, 0.5)
	if p.Pos != (Vec2{}) {
		t.Errorf("pinned point pulled to %v", p.Pos)
	}
	p.Pinned = false
	pull(&p, 100, 100, 0.5)
	if p.Pos != (Vec2{50, 50}) {
		t.Errorf("pull = %v, want {50 50}", p.Pos)
	}
}
