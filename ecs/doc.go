// Package ecs provides ECS adapters for dragdrop.
//
// [NewDonburiStore] bridges dragdrop drag events (drag start, enter, leave,
// drop, rejected drop, drag end) into a [Donburi] world as typed events.
// Subscribe to [DragEventType] in your ECS systems to receive them.
//
// [Position] and [BindPosition] keep an entity's position in step with an
// element's accepted drops:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
//	card := world.Create(ecs.Position)
//	scene.AddElement("card", size, dragdrop.ElementProps{
//		OnDropped: ecs.BindPosition(world, card),
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
