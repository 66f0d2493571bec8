package ecs

import (
	"github.com/phanxgames/carousel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CarouselEventType is the Donburi event type for carousel events.
var CarouselEventType = events.NewEventType[carousel.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are queued on CarouselEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) carousel.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event carousel.Event) {
	CarouselEventType.Publish(s.world, event)
}
