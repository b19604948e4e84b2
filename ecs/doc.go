// Package ecs provides ECS adapters for tether's interaction events.
//
// The primary adapter is [NewDonburiSink], which bridges controller events
// (grab, release, goal enter/leave, drop, posture) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them, or call [TrackDrops] for a ready-made drop counter.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	rope.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
