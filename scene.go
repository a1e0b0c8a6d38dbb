package dragdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EventStore is the interface for optional ECS integration.
// When set on a Scene, drag events are forwarded to the store.
type EventStore interface {
	EmitEvent(event DragEvent)
}

// DragEvent carries drag gesture data for the ECS bridge.
type DragEvent struct {
	Type      EventType
	ElementID string
	// EntityID is copied from the element node's EntityID.
	EntityID uint32
	// Pointer is the pointer position in screen coordinates.
	Pointer Point
	// Position is the surface-relative drop position (EventDrop and
	// EventDropReject only).
	Position Point
}

// SceneConfig holds optional Scene settings. Zero values select defaults.
type SceneConfig struct {
	// Surface is the drop surface's box in screen coordinates.
	Surface Rect
	// DragDeadZone is the pointer travel in pixels before a press becomes
	// a drag. Defaults to 4.
	DragDeadZone float64
	// DragAlpha is the alpha an element fades to while dragged.
	// Defaults to 0.5.
	DragAlpha float64
	// HighlightDuration is the fade duration in seconds. Defaults to 0.15.
	HighlightDuration float32
	// RaiseOnDrop brings an element above its siblings after an accepted drop.
	RaiseOnDrop bool
}

const (
	defaultDragDeadZone      = 4.0
	defaultDragAlpha         = 0.5
	defaultHighlightDuration = 0.15
)

func (c SceneConfig) withDefaults() SceneConfig {
	if c.DragDeadZone <= 0 {
		c.DragDeadZone = defaultDragDeadZone
	}
	if c.DragAlpha <= 0 {
		c.DragAlpha = defaultDragAlpha
	}
	if c.HighlightDuration <= 0 {
		c.HighlightDuration = defaultHighlightDuration
	}
	return c
}

// elementEntry ties an Element to the node that renders it.
type elementEntry struct {
	el   *Element
	node *Node
	sub  Subscription
	fade *fade
}

// Scene hosts one drop surface and its draggable elements inside an
// Ebitengine game loop. It owns the node tree, the Coordinator, and the
// pointer state that turns mouse input into drag gestures.
type Scene struct {
	root        *Node
	surfaceNode *Node
	coord       *Coordinator
	surface     *Surface
	store       EventStore
	debug       bool
	cfg         SceneConfig

	entries []*elementEntry
	byID    map[string]*elementEntry

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// Input state
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// NewScene creates a scene with a mounted drop surface.
func NewScene(cfg SceneConfig) *Scene {
	cfg = cfg.withDefaults()

	root := NewNode("root", 0, 0)
	surfaceNode := NewNode("surface", cfg.Surface.Width, cfg.Surface.Height)
	surfaceNode.SetPosition(cfg.Surface.X, cfg.Surface.Y)
	root.AddChild(surfaceNode)

	coord := NewCoordinator()
	surface := NewSurface(coord)
	surface.Mount(surfaceNode)

	return &Scene{
		root:        root,
		surfaceNode: surfaceNode,
		coord:       coord,
		surface:     surface,
		cfg:         cfg,
		byID:        make(map[string]*elementEntry),
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// SurfaceNode returns the node bounding the drop surface. Moving or
// resizing it takes effect on the next drop.
func (s *Scene) SurfaceNode() *Node {
	return s.surfaceNode
}

// Coordinator returns the scene's drag coordinator.
func (s *Scene) Coordinator() *Coordinator {
	return s.coord
}

// AddElement creates a draggable element of the given size on the surface.
func (s *Scene) AddElement(name string, size Size, props ElementProps) *Element {
	node := NewNode(name, size.Width, size.Height)
	s.surfaceNode.AddChild(node)

	el := NewElement(s.coord, props)
	el.Mount(node)
	node.SetPosition(el.Position().X, el.Position().Y)

	entry := &elementEntry{
		el:   el,
		node: node,
		fade: &fade{node: node, duration: s.cfg.HighlightDuration},
	}
	entry.sub = s.coord.Subscribe([]string{el.ID()}, func(st DragDropState) {
		id, ok := st.DraggedID()
		if ok && id == el.ID() {
			entry.fade.to(s.cfg.DragAlpha)
		} else {
			entry.fade.to(1)
		}
	})

	s.entries = append(s.entries, entry)
	s.byID[el.ID()] = entry
	return el
}

// RemoveElement releases el and disposes its node. Drops dispatched to el
// afterwards are no-ops.
func (s *Scene) RemoveElement(el *Element) {
	entry, ok := s.byID[el.ID()]
	if !ok {
		return
	}
	el.Release()
	entry.sub.Remove()
	entry.node.Dispose()
	delete(s.byID, el.ID())
	for i, e := range s.entries {
		if e == entry {
			copy(s.entries[i:], s.entries[i+1:])
			s.entries[len(s.entries)-1] = nil
			s.entries = s.entries[:len(s.entries)-1]
			break
		}
	}
	if s.pointer.hit == entry {
		s.pointer.hit = nil
		if s.pointer.dragging {
			s.coord.EndDrag()
			s.pointer.dragging = false
		}
	}
}

// Node returns the node rendering el, or nil if el is not in the scene.
func (s *Scene) Node(el *Element) *Node {
	if entry, ok := s.byID[el.ID()]; ok {
		return entry.node
	}
	return nil
}

// Elements returns the scene's elements in insertion order.
func (s *Scene) Elements() []*Element {
	out := make([]*Element, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.el
	}
	return out
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EventStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and gesture traces are printed to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// Update processes input, repositions element nodes, and advances the
// drag highlight fades. Call it once per tick.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.syncElements()

	dt := float32(1.0 / float64(ebiten.TPS()))
	for _, e := range s.entries {
		e.fade.update(dt)
	}
}

// syncElements copies each element's position onto its node.
func (s *Scene) syncElements() {
	for _, e := range s.entries {
		p := e.el.Position()
		e.node.SetPosition(p.X, p.Y)
	}
}

func (s *Scene) emit(typ EventType, entry *elementEntry, pointer, position Point) {
	var id string
	var entityID uint32
	if entry != nil {
		id = entry.el.ID()
		entityID = entry.node.EntityID
	}
	s.debugLog("%s id=%s pointer=(%.1f,%.1f) position=(%.1f,%.1f)",
		typ, id, pointer.X, pointer.Y, position.X, position.Y)
	if s.store == nil {
		return
	}
	s.store.EmitEvent(DragEvent{
		Type:      typ,
		ElementID: id,
		EntityID:  entityID,
		Pointer:   pointer,
		Position:  position,
	})
}
