package tether

import "math"

// PostureState is the ragdoll's controller state.
type PostureState uint8

const (
	// PostureDynamic leaves the ragdoll to pure physics: it is held, moving
	// fast, or airborne.
	PostureDynamic PostureState = iota
	// PostureIdle applies damping and the standing pulls.
	PostureIdle
)

func (s PostureState) String() string {
	if s == PostureIdle {
		return "idle"
	}
	return "dynamic"
}

// PostureConfig tunes the standing controller. Heights are measured up from
// the ground line; pulls are per-frame interpolation factors.
type PostureConfig struct {
	SpeedThreshold    float64 // hip |dx|+|dy| above which posture is off
	AirborneClearance float64 // hips higher than this above ground are airborne
	IdleDamping       float64 // fraction of velocity kept per idle frame

	StandClearance float64 // target hip height
	HeadRise       float64 // head target above hip target
	WaistRise      float64 // waist target above hip target
	FootSpread     float64
	HandSpread     float64
	HandDrop       float64
	HandLift       float64

	CorePull float64
	FootPull float64
	HandPull float64
}

// DefaultPostureConfig returns the stock standing pose.
func DefaultPostureConfig() PostureConfig {
	return PostureConfig{
		SpeedThreshold:    PostureSpeedThreshold,
		AirborneClearance: PostureAirborneClearance,
		IdleDamping:       PostureIdleDamping,
		StandClearance:    PostureStandClearance,
		HeadRise:          PostureHeadRise,
		WaistRise:         PostureWaistRise,
		FootSpread:        PostureFootSpread,
		HandSpread:        PostureHandSpread,
		HandDrop:          PostureHandDrop,
		HandLift:          PostureHandLift,
		CorePull:          PostureCorePull,
		FootPull:          PostureFootPull,
		HandPull:          PostureHandPull,
	}
}

// classify picks the posture state from the grab and the hip motion.
func (r *Ragdoll) classify() PostureState {
	hips := &r.body.Points[JointHips]
	v := hips.Velocity()
	speed := math.Abs(v.X) + math.Abs(v.Y)
	pc := &r.cfg.Posture
	if r.grab.index >= 0 || speed > pc.SpeedThreshold || hips.Pos.Y < r.cfg.Ground-pc.AirborneClearance {
		return PostureDynamic
	}
	return PostureIdle
}

func (r *Ragdoll) updatePosture() {
	state := r.classify()
	if state != r.posture {
		r.posture = state
		r.emit(Event{Type: EventPosture, Node: JointHips, Pos: r.body.Points[JointHips].Pos, Posture: state})
	}
	if state == PostureIdle {
		r.applyPosture()
	}
}

// applyPosture damps every joint, then nudges hips, torso, head, feet and
// hands toward a standing pose centred on the hips.
func (r *Ragdoll) applyPosture() {
	pc := &r.cfg.Posture
	pts := r.body.Points

	for i := range pts {
		p := &pts[i]
		p.Prev = p.Pos.Add(p.Prev.Sub(p.Pos).Scale(pc.IdleDamping))
	}

	ground := r.cfg.Ground
	stand := ground - pc.StandClearance
	hips := &pts[JointHips].Pos

	pull(&pts[JointLHand], hips.X-pc.HandSpread, hips.Y+pc.HandLift, pc.HandPull)
	pull(&pts[JointRHand], hips.X+pc.HandSpread, hips.Y+pc.HandLift, pc.HandPull)

	pull(&pts[JointHips], hips.X, stand, pc.CorePull)
	pull(&pts[JointHead], hips.X, stand-pc.HeadRise, pc.CorePull)
	pull(&pts[JointWaist], hips.X, stand-pc.WaistRise, pc.CorePull)

	pull(&pts[JointLFoot], hips.X-pc.FootSpread, ground, pc.FootPull)
	pull(&pts[JointRFoot], hips.X+pc.FootSpread, ground, pc.FootPull)

	pull(&pts[JointLHand], hips.X-pc.HandSpread, hips.Y+pc.HandDrop, pc.HandPull)
	pull(&pts[JointRHand], hips.X+pc.HandSpread, hips.Y+pc.HandDrop, pc.HandPull)
}

// pull moves p toward (x, y) by the fraction strength without touching
// Prev, so the nudge also shows up as velocity.
func pull(p *Point, x, y, strength float64) {
	if p.Pinned {
		return
	}
	p.Pos.X += (x - p.Pos.X) * strength
	p.Pos.Y += (y - p.Pos.Y) * strength
}
