package tether

// Ragdoll skeleton joints, in Body.Points order.
const (
	JointHead = iota
	JointNeck
	JointWaist
	JointHips
	JointLShoulder
	JointRShoulder
	JointLElbow
	JointRElbow
	JointLHand
	JointRHand
	JointLHip
	JointRHip
	JointLKnee
	JointRKnee
	JointLFoot
	JointRFoot
	jointCount
)

// Skeleton layout offsets relative to the neck at construction.
var jointLayout = [jointCount]Vec2{
	JointHead:      {0, -75},
	JointNeck:      {0, 0},
	JointWaist:     {0, 90},
	JointHips:      {0, 135},
	JointLShoulder: {-30, 15},
	JointRShoulder: {30, 15},
	JointLElbow:    {-60, 60},
	JointRElbow:    {60, 60},
	JointLHand:     {-75, 105},
	JointRHand:     {75, 105},
	JointLHip:      {-25, 135},
	JointRHip:      {25, 135},
	JointLKnee:     {-30, 225},
	JointRKnee:     {30, 225},
	JointLFoot:     {-30, 315},
	JointRFoot:     {30, 315},
}

// skeletonBones are drawn; skeletonBraces are invisible and only stop the
// torso from folding.
var (
	skeletonBones = [][2]int{
		{JointHead, JointNeck},
		{JointNeck, JointWaist},
		{JointWaist, JointHips},
		{JointNeck, JointLShoulder},
		{JointNeck, JointRShoulder},
		{JointLShoulder, JointLElbow},
		{JointLElbow, JointLHand},
		{JointRShoulder, JointRElbow},
		{JointRElbow, JointRHand},
		{JointHips, JointLHip},
		{JointHips, JointRHip},
		{JointLHip, JointLKnee},
		{JointLKnee, JointLFoot},
		{JointRHip, JointRKnee},
		{JointRKnee, JointRFoot},
	}
	skeletonBraces = [][2]int{
		{JointLShoulder, JointWaist},
		{JointRShoulder, JointWaist},
		{JointLHip, JointRHip},
		{JointLShoulder, JointRShoulder},
		{JointHead, JointWaist},
	}
)

// RagdollConfig configures a Ragdoll. Start with DefaultRagdollConfig.
type RagdollConfig struct {
	Width  float64 // canvas width; walls sit at 0 and Width
	Height float64
	Ground float64 // ground line y
	Start  Vec2    // neck position at construction

	Gravity    float64
	Friction   float64
	Iterations int

	GroundBounce   float64
	GroundFriction float64
	WallBounce     float64

	GrabRadiusSq float64
	ReleaseForce float64

	Posture PostureConfig
	Bubble  BubbleConfig
}

// DefaultRagdollConfig returns the stock 800x600 stickman.
func DefaultRagdollConfig() RagdollConfig {
	return RagdollConfig{
		Width:          RagdollWidth,
		Height:         RagdollHeight,
		Ground:         RagdollGround,
		Start:          Vec2{400, 250},
		Gravity:        RagdollGravity,
		Friction:       RagdollFriction,
		Iterations:     RagdollIterations,
		GroundBounce:   RagdollGroundBounce,
		GroundFriction: RagdollGroundFriction,
		WallBounce:     RagdollWallBounce,
		GrabRadiusSq:   RagdollGrabRadiusSq,
		ReleaseForce:   RagdollReleaseForce,
		Posture:        DefaultPostureConfig(),
		Bubble:         DefaultBubbleConfig(),
	}
}

// grab is the pointer interaction state. index is -1 when nothing is held.
type grab struct {
	index    int
	pointer  Vec2
	velocity Vec2
}

// Ragdoll is a draggable stickman: a 16-joint skeleton driven by gravity,
// pointer drags, ground and wall collision, and a posture controller that
// stands it back up when left alone.
type Ragdoll struct {
	emitter

	cfg     RagdollConfig
	body    Body
	grab    grab
	posture PostureState
	bubble  *Bubble
	time    float64
}

// NewRagdoll builds the skeleton around cfg.Start.
func NewRagdoll(cfg RagdollConfig) *Ragdoll {
	r := &Ragdoll{
		cfg:    cfg,
		grab:   grab{index: -1},
		bubble: NewBubble(cfg.Bubble),
	}
	for _, off := range jointLayout {
		r.body.AddPoint(cfg.Start.X+off.X, cfg.Start.Y+off.Y)
	}
	for _, b := range skeletonBones {
		r.body.Connect(b[0], b[1], true)
	}
	for _, b := range skeletonBraces {
		r.body.Connect(b[0], b[1], false)
	}
	return r
}

// Body exposes the skeleton. Callers must not add points or sticks.
func (r *Ragdoll) Body() *Body { return &r.body }

// Joint returns the point for a Joint* index.
func (r *Ragdoll) Joint(j int) *Point { return &r.body.Points[j] }

// Grabbed returns the held joint, or -1.
func (r *Ragdoll) Grabbed() int { return r.grab.index }

// Posture returns the posture state chosen on the last Step.
func (r *Ragdoll) Posture() PostureState { return r.posture }

// Step advances one frame: posture, integration, stick relaxation, then
// collision. dt only drives the speech bubble timer; the physics is tuned
// per frame.
func (r *Ragdoll) Step(dt float64) {
	r.time += dt

	r.updatePosture()

	if r.grab.index >= 0 {
		r.body.Points[r.grab.index].Hold(r.grab.pointer, r.grab.velocity)
	}
	r.body.Integrate(r.cfg.Friction, r.cfg.Gravity)
	r.body.Relax(r.cfg.Iterations)
	r.collide()

	r.bubble.Update(dt, r.grab.index >= 0)
}

// collide clamps every joint to the ground line and the side walls.
func (r *Ragdoll) collide() {
	ground, width := r.cfg.Ground, r.cfg.Width
	for i := range r.body.Points {
		p := &r.body.Points[i]
		v := p.Velocity()
		if p.Pos.Y > ground {
			p.Pos.Y = ground
			p.Prev.Y = ground + v.Y*r.cfg.GroundBounce
			p.Prev.X = p.Pos.X - v.X*r.cfg.GroundFriction
		}
		if p.Pos.X < 0 {
			p.Pos.X = 0
			p.Prev.X = v.X * r.cfg.WallBounce
		}
		if p.Pos.X > width {
			p.Pos.X = width
			p.Prev.X = width + v.X*r.cfg.WallBounce
		}
	}
}

// PointerDown grabs the nearest joint within the pick radius. It reports
// whether a joint was grabbed; a miss starts no drag. A joint still held
// from an earlier press is let go first.
func (r *Ragdoll) PointerDown(at Vec2) bool {
	r.drop()
	r.grab.pointer = at
	r.grab.velocity = Vec2{}
	i := r.body.Nearest(at, r.cfg.GrabRadiusSq)
	if i < 0 {
		return false
	}
	r.grab.index = i
	r.emit(Event{Type: EventGrab, Node: i, Pos: at})
	return true
}

// PointerMove records the pointer and its velocity as the delta from the
// previous pointer position.
func (r *Ragdoll) PointerMove(at Vec2) {
	r.grab.velocity = at.Sub(r.grab.pointer)
	r.grab.pointer = at
}

// PointerUp releases the held joint and flings the whole body with the last
// pointer velocity scaled by ReleaseForce.
func (r *Ragdoll) PointerUp(at Vec2) {
	i := r.grab.index
	if i >= 0 {
		r.body.Points[i].Pinned = false
		r.body.Push(r.grab.velocity.Scale(r.cfg.ReleaseForce))
		r.emit(Event{Type: EventRelease, Node: i, Pos: r.body.Points[i].Pos})
	}
	r.grab = grab{index: -1, pointer: at}
}

// SetVisible lets go of a held joint when the ragdoll is hidden. The
// scheduler drops input while hidden, so the matching release never comes.
func (r *Ragdoll) SetVisible(v bool) {
	if !v {
		r.drop()
	}
}

// drop releases the held joint without the release fling.
func (r *Ragdoll) drop() {
	if i := r.grab.index; i >= 0 {
		r.body.Points[i].Pinned = false
		r.emit(Event{Type: EventRelease, Node: i, Pos: r.body.Points[i].Pos})
	}
	r.grab = grab{index: -1, pointer: r.grab.pointer}
}

// Snapshot writes the skeleton, bubble and ground line into f.
func (r *Ragdoll) Snapshot(f *Frame) {
	r.body.snapshot(f)
	if r.grab.index >= 0 {
		for i := range f.Nodes {
			f.Nodes[i].Color = ColorRose
		}
	}
	f.Head = JointHead
	f.Grabbed = r.grab.index
	f.Ground = r.cfg.Ground
	f.Width = r.cfg.Width
	f.Height = r.cfg.Height

	dragging := r.grab.index >= 0
	head := r.body.Points[JointHead].Pos
	f.Bubble = BubbleFrame{
		Text:   r.bubble.Text(dragging),
		Alpha:  r.bubble.Alpha(),
		Anchor: Vec2{head.X, head.Y - BubbleRise},
	}
}
