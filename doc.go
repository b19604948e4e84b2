// Package tether is a small verlet physics core for decorative widgets: a
// draggable ragdoll stickman and a hanging rope chain of links.
//
// Both widgets are built from the same pieces. A [Body] owns an arena of
// [Point] masses and the [Stick] distance constraints between them, referenced
// by index. Controllers ([Ragdoll], [RopeChain]) step a body once per frame
// and write a [Frame] snapshot for a [Renderer].
//
// # Quick start
//
// The simplest host is ebitenview, which opens a window and drives the
// scheduler from Ebitengine's update loop:
//
//	doll := tether.NewRagdoll(tether.DefaultRagdollConfig())
//	ebitenview.Run(doll, ebitenview.RunConfig{Title: "ragdoll"})
//
// For full control, wrap a simulation in a [Scheduler] and either call
// [Scheduler.Start] to run it on its own goroutine or [Scheduler.Tick] from
// an existing loop:
//
//	sched := tether.NewScheduler(doll, tether.RendererFunc(func(f *tether.Frame) {
//		// draw f.Nodes and f.Segments
//	}))
//	if err := sched.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer sched.Stop()
//
// # Input
//
// Pointer input from any goroutine goes through [Scheduler.Pointers]. The
// scheduler drains the queue once per frame and dispatches to simulations
// that implement [Interactive]. Hosts convert screen coordinates with a
// [Viewport] first.
//
// # Visibility
//
// While [Scheduler.SetVisible] is false the scheduler skips whole frames and
// drops queued input, so nothing evolves off screen. Both widgets let go of
// a held node when hidden, since its release may be among the dropped
// input. A rope chain shows it is alive again with a one-off jerk when it
// becomes visible.
//
// # Events
//
// Controllers report grabs, releases, goal zone changes, drops and posture
// changes to an [EventSink]. The ecs sub-module forwards them to a Donburi
// world.
//
// # Extras
//
// [Timeline] and [Cursor] step through timed lyric cues; the audio
// sub-package clocks them from a beep stream. [Project] and [Carousel] model
// the portfolio catalog shown beside the widgets.
package tether
