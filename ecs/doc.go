// Package ecs provides ECS adapters for radial menu events.
//
// The primary adapter is [NewDonburiSink], which bridges radial menu events
// (hover, commit, cancel, completion, actions, partition pushes) into a
// [Donburi] world as typed events. Subscribe to [MenuEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	wizard, _ := radial.NewWizard(cfg, vocab, radial.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
