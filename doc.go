// Package dragdrop makes boxes inside a bounded surface draggable and
// re-droppable at arbitrary positions, for [Ebitengine] games and tools.
//
// The core is independent of Ebitengine:
//
//   - [TopicStore] holds a value and notifies only the listeners whose
//     topics a change touches, so the cost of a drag is proportional to the
//     elements it affects.
//   - [Coordinator] owns the single active drag and the per-element drop
//     callbacks ([Coordinator.BeginDrag], [Coordinator.EndDrag],
//     [Coordinator.RegisterDropCallback], [Coordinator.DispatchDrop]).
//   - [Surface] turns a pointer release into a surface-relative position and
//     rejects drops that do not fit entirely inside it.
//   - [Element] is one draggable participant, either controlled (the host
//     supplies its position) or uncontrolled (it keeps its own).
//
// # Quick start
//
// [Scene] wires the core to a node tree, mouse input, and drawing:
//
//	scene := dragdrop.NewScene(dragdrop.SceneConfig{
//		Surface: dragdrop.Rect{X: 20, Y: 20, Width: 600, Height: 440},
//	})
//	el := scene.AddElement("card", dragdrop.Size{Width: 80, Height: 50}, dragdrop.ElementProps{
//		OnDropped: func(p dragdrop.Point) { log.Printf("dropped at %v", p) },
//	})
//	scene.Node(el).Color = dragdrop.Color{R: 0.3, G: 0.7, B: 1, A: 1}
//	dragdrop.Run(scene, dragdrop.RunConfig{Title: "Cards", Width: 640, Height: 480})
//
// # Errors
//
// Contract violations by the integrating code, such as dropping on an
// unmounted surface, dropping with no active drag, or a controlled element
// without a position, panic with a [*UsageError]. Props that have no effect
// in an element's mode are reported to the [WarningHandler] and ignored.
// Out-of-bounds drops and drops for unregistered elements are silent no-ops.
//
// # ECS
//
// The dragdrop/ecs module forwards [DragEvent]s into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package dragdrop
