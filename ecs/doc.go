// Package ecs provides ECS adapters for carousel events.
//
// The primary adapter is [NewDonburiStore], which bridges carousel events
// (scroll, gesture start and end, image loaded and failed) into a [Donburi]
// world as typed events. Subscribe to [CarouselEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	c.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
