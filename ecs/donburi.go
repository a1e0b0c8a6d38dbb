package ecs

import (
	"github.com/phanxgames/dragdrop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragEventType is the Donburi event type for dragdrop drag events.
var DragEventType = events.NewEventType[dragdrop.DragEvent]()

// Position is the component holding an entity's surface-relative position.
var Position = donburi.NewComponentType[dragdrop.Point]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Drag events are published to DragEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dragdrop.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dragdrop.DragEvent) {
	DragEventType.Publish(s.world, event)
}

// BindPosition returns a drop callback that writes the dropped position
// into entity's Position component. Drops for an entity that no longer
// exists, or lacks the component, are ignored.
func BindPosition(world donburi.World, entity donburi.Entity) func(dragdrop.Point) {
	return func(p dragdrop.Point) {
		if !world.Valid(entity) {
			return
		}
		entry := world.Entry(entity)
		if !entry.HasComponent(Position) {
			return
		}
		Position.SetValue(entry, p)
	}
}
