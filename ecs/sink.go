package ecs

import (
	"github.com/phanxgames/radial"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MenuEventType is the Donburi event type for radial menu events.
// Subscribe to this in your ECS systems to react to selections and actions.
var MenuEventType = events.NewEventType[radial.MenuEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Menu events are published to MenuEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) radial.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event radial.MenuEvent) {
	MenuEventType.Publish(s.world, event)
}
