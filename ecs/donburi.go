// Package ecs provides ECS adapters for tether.
package ecs

import (
	"github.com/phanxgames/tether"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for tether interaction
// events. Subscribe to this in your ECS systems to receive grab, release,
// goal and drop events.
var InteractionEventType = events.NewEventType[tether.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to InteractionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tether.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tether.Event) {
	InteractionEventType.Publish(s.world, event)
}

// DropStats counts rope drops per link label.
type DropStats struct {
	Drops map[string]int
	Last  string
}

// DropStatsComponent stores DropStats on the entity created by TrackDrops.
var DropStatsComponent = donburi.NewComponentType[DropStats]()

// TrackDrops creates an entity holding DropStats and subscribes it to drop
// events. The stats update when the world's events are processed.
func TrackDrops(world donburi.World) donburi.Entity {
	entity := world.Create(DropStatsComponent)
	DropStatsComponent.Get(world.Entry(entity)).Drops = make(map[string]int)

	InteractionEventType.Subscribe(world, func(w donburi.World, e tether.Event) {
		if e.Type != tether.EventDrop || !w.Valid(entity) {
			return
		}
		stats := DropStatsComponent.Get(w.Entry(entity))
		stats.Drops[e.Link.Label]++
		stats.Last = e.Link.Label
	})
	return entity
}
