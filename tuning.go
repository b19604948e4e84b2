package tether

import "time"

// Ragdoll tuning. Values are per frame at the nominal 60 Hz frame rate.
const (
	RagdollGravity    = 0.5
	RagdollFriction   = 0.99
	RagdollIterations = 5

	RagdollWidth  = 800.0
	RagdollHeight = 600.0
	RagdollGround = 580.0

	// Vertical velocity kept, reflected, when a node hits the ground.
	RagdollGroundBounce = 0.5
	// Horizontal velocity kept by a node touching the ground.
	RagdollGroundFriction = 0.8
	// Horizontal velocity kept, reflected, when a node hits a wall.
	RagdollWallBounce = 0.5

	// Squared pick radius for pointer grabs (~32px).
	RagdollGrabRadiusSq = 1000.0
	// Multiplier on the last pointer velocity applied to every node on release.
	RagdollReleaseForce = 1.5
)

// Posture tuning.
const (
	PostureSpeedThreshold    = 10.0
	PostureAirborneClearance = 150.0
	PostureIdleDamping       = 0.6
	PostureStandClearance    = 160.0
	PostureHeadRise          = 110.0
	PostureWaistRise         = 45.0
	PostureFootSpread        = 30.0
	PostureHandSpread        = 50.0
	PostureHandDrop          = 30.0
	PostureHandLift          = 20.0

	PostureCorePull = 0.1
	PostureFootPull = 0.2
	PostureHandPull = 0.05
)

// Rope chain tuning.
const (
	RopeGravity       = 0.55
	RopeStiffness     = 0.14
	RopeDamping       = 0.9
	RopeSegmentLength = 140.0
	RopeSpacing       = 160.0
	RopeAnchorX       = 40.0
	RopeAnchorY       = 100.0

	RopeGrabHalfSize    = 40.0
	RopeHighlightRadius = 120.0
	RopeJerkX           = 10.0
	RopeJerkY           = 5.0
	RopeImpulseX        = 10.0
	RopeImpulseY        = 5.0
	RopeImpulseChance   = 0.3
	RopeImpulseInterval = 2 * time.Second
	RopeGoalSize        = 192.0
	RopeGoalLeft        = 20.0
	RopeContainerHeight = 800.0
)

// Bubble tuning.
const (
	BubbleInterval = 4 * time.Second
	BubbleFade     = 330 * time.Millisecond
	BubbleRise     = 80.0
)

// DefaultFrameInterval is the scheduler tick for the goroutine loop.
const DefaultFrameInterval = time.Second / 60
