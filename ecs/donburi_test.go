package ecs

import (
	"testing"

	"github.com/phanxgames/dragdrop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []dragdrop.DragEvent
	DragEventType.Subscribe(world, func(w donburi.World, e dragdrop.DragEvent) {
		received = append(received, e)
	})

	store.EmitEvent(dragdrop.DragEvent{
		Type:      dragdrop.EventDragStart,
		ElementID: "3",
		EntityID:  42,
		Pointer:   dragdrop.Point{X: 100, Y: 200},
	})
	store.EmitEvent(dragdrop.DragEvent{
		Type:     dragdrop.EventDrop,
		Position: dragdrop.Point{X: 45, Y: 45},
	})

	// Events are queued; process them.
	DragEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != dragdrop.EventDragStart || e0.ElementID != "3" || e0.EntityID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Pointer != (dragdrop.Point{X: 100, Y: 200}) {
		t.Errorf("event 0 pointer: %v", e0.Pointer)
	}
	e1 := received[1]
	if e1.Type != dragdrop.EventDrop || e1.Position != (dragdrop.Point{X: 45, Y: 45}) {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	DragEventType.Subscribe(world, func(w donburi.World, e dragdrop.DragEvent) {
		count1++
	})
	DragEventType.Subscribe(world, func(w donburi.World, e dragdrop.DragEvent) {
		count2++
	})

	store.EmitEvent(dragdrop.DragEvent{Type: dragdrop.EventDragEnd})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestBindPosition(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create(Position)

	cb := BindPosition(world, entity)
	cb(dragdrop.Point{X: 30, Y: 40})

	got := *Position.Get(world.Entry(entity))
	if got != (dragdrop.Point{X: 30, Y: 40}) {
		t.Errorf("Position = %v, want (30,40)", got)
	}
}

func TestBindPosition_RemovedEntity(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create(Position)
	cb := BindPosition(world, entity)
	world.Remove(entity)

	// Must not panic.
	cb(dragdrop.Point{X: 1, Y: 1})
}

func TestBindPosition_SceneDrop(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create(Position)

	scene := dragdrop.NewScene(dragdrop.SceneConfig{
		Surface: dragdrop.Rect{Width: 200, Height: 100},
	})
	scene.SetEntityStore(NewDonburiStore(world))
	scene.AddElement("card", dragdrop.Size{Width: 20, Height: 10}, dragdrop.ElementProps{
		OnDropped: BindPosition(world, entity),
	})

	var drops int
	DragEventType.Subscribe(world, func(w donburi.World, e dragdrop.DragEvent) {
		if e.Type == dragdrop.EventDrop {
			drops++
		}
	})

	// Grab at (5,5) inside the element, release at (50,50).
	scene.InjectDrag(5, 5, 50, 50, 4)
	for scene.Pending() > 0 {
		scene.Update()
	}
	DragEventType.ProcessEvents(world)

	got := *Position.Get(world.Entry(entity))
	if got != (dragdrop.Point{X: 45, Y: 45}) {
		t.Errorf("Position = %v, want (45,45)", got)
	}
	if drops != 1 {
		t.Errorf("drop events = %d, want 1", drops)
	}
}
