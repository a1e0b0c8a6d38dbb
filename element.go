package dragdrop

// ElementProps are the host-supplied properties of a draggable element.
//
// An element is controlled when Position is non-nil at construction: the
// host then owns the position and must keep supplying it. Otherwise the
// element is uncontrolled and keeps its own position, seeded from
// DefaultPosition (or the origin) and moved only by its own drops.
type ElementProps struct {
	Position        *Point
	DefaultPosition *Point

	// OnDropped is called with the new position after every accepted drop.
	OnDropped func(position Point)

	// OnDragChange is called when this element starts or stops being the
	// dragged element.
	OnDragChange func(dragged bool)
}

// Element is one draggable participant. It registers its drop callback
// with the Coordinator on Mount and must be released with Release.
type Element struct {
	id         string
	coord      *Coordinator
	controlled bool
	props      ElementProps

	position Point // uncontrolled only
	box      Measurer
	sub      Subscription
	dropped  DropCallback
	dragged  bool
	mounted  bool
}

// NewElement creates an element with a fresh ID from coord. The position
// mode is fixed here and never changes.
func NewElement(coord *Coordinator, props ElementProps) *Element {
	e := &Element{
		id:         coord.NewElementID(),
		coord:      coord,
		controlled: props.Position != nil,
		props:      props,
	}
	if !e.controlled && props.DefaultPosition != nil {
		e.position = *props.DefaultPosition
	}
	// Bound once per element so every registration hands out the same handler.
	e.dropped = e.onDropped
	return e
}

// ID returns the element's unique ID.
func (e *Element) ID() string {
	return e.id
}

// Controlled reports whether the host owns the element's position.
func (e *Element) Controlled() bool {
	return e.controlled
}

// Mounted reports whether the element is registered with its Coordinator.
func (e *Element) Mounted() bool {
	return e.mounted
}

// IsDragged reports whether this element is the active drag.
func (e *Element) IsDragged() bool {
	return e.dragged
}

// Mount binds the element to its measurable box, registers its drop
// callback and subscribes to its own topic. Mounting twice is a no-op.
func (e *Element) Mount(box Measurer) {
	if e.mounted {
		return
	}
	e.validate(e.props, "Element.Mount")
	e.box = box
	e.coord.RegisterDropCallback(e.id, e.dropped)
	e.sub = e.coord.Subscribe([]string{e.id}, e.onDragState)
	e.mounted = true
}

// Release deregisters the element. After Release, drops dispatched to its
// ID are no-ops. Releasing twice is a no-op.
func (e *Element) Release() {
	if !e.mounted {
		return
	}
	e.coord.RegisterDropCallback(e.id, nil)
	e.sub.Remove()
	e.sub = Subscription{}
	e.box = nil
	e.mounted = false
}

// Update replaces the element's props. The position mode is not
// re-evaluated.
func (e *Element) Update(props ElementProps) {
	e.validate(props, "Element.Update")
	e.props = props
}

// Position returns the element's current surface-relative position.
// It panics with a *UsageError if a controlled element lost its Position.
func (e *Element) Position() Point {
	if !e.controlled {
		return e.position
	}
	if e.props.Position == nil {
		fatal("Element.Position", KindMissingPosition, ErrMissingPosition)
	}
	return *e.props.Position
}

// DragStart handles the start of a native drag gesture with the pointer at
// client coordinates. It measures the element's box and begins a drag on
// the Coordinator with the pointer offset inside the element.
//
// DragStart panics with a *UsageError if the element is not mounted.
func (e *Element) DragStart(pointer Point) {
	if e.box == nil {
		fatal("Element.DragStart", KindUnmounted, ErrNotMounted)
	}
	rect := e.box.Bounds()
	e.coord.BeginDrag(e.id, pointer.Sub(rect.Origin()), rect.Size())
}

// DragEnd handles the end of a native drag gesture, whether or not a drop
// was accepted.
func (e *Element) DragEnd() {
	e.coord.EndDrag()
}

func (e *Element) onDropped(position Point) {
	if !e.controlled {
		e.position = position
	}
	if e.props.OnDropped != nil {
		e.props.OnDropped(position)
	}
}

func (e *Element) onDragState(state DragDropState) {
	id, ok := state.DraggedID()
	dragged := ok && id == e.id
	if dragged == e.dragged {
		return
	}
	e.dragged = dragged
	if e.props.OnDragChange != nil {
		e.props.OnDragChange(dragged)
	}
}

// validate checks props against the element's mode. A controlled element
// without a position is fatal; props ignored by the mode only warn.
func (e *Element) validate(props ElementProps, op string) {
	if e.controlled {
		if props.Position == nil {
			fatal(op, KindMissingPosition, ErrMissingPosition)
		}
		if props.DefaultPosition != nil {
			warn(op, KindIgnoredProp, ErrIgnoredDefault)
		}
		return
	}
	if props.Position != nil {
		warn(op, KindIgnoredProp, ErrIgnoredPosition)
	}
}
