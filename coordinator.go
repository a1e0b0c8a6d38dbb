package dragdrop

import "strconv"

// DragState records the element currently being dragged. DragPosition is
// the pointer's offset inside the element at drag start, not a surface
// coordinate.
type DragState struct {
	ID           string
	DragPosition Point
	ElementSize  Size
}

// DragDropState is the broadcast state of a Coordinator. Dragged is nil
// while no drag is active.
type DragDropState struct {
	Dragged *DragState
}

// DraggedID returns the dragged element's ID and whether a drag is active.
func (s DragDropState) DraggedID() (string, bool) {
	if s.Dragged == nil {
		return "", false
	}
	return s.Dragged.ID, true
}

// DropCallback receives the validated, surface-relative drop position.
type DropCallback func(position Point)

// DragTopics is the topic diff policy for drag state. Only a change of the
// dragged element's identity is a topic change: the previous and the next
// dragged IDs, whichever are present and differ. Re-dragging the same
// element with a new offset changes nothing.
func DragTopics(prev, next DragDropState) []Topic {
	prevID, hadPrev := prev.DraggedID()
	nextID, hasNext := next.DraggedID()

	switch {
	case hadPrev == hasNext && prevID == nextID:
		return nil
	case !hadPrev:
		return []Topic{Topic(nextID)}
	case !hasNext:
		return []Topic{Topic(prevID)}
	default:
		return []Topic{Topic(prevID), Topic(nextID)}
	}
}

// Coordinator owns the single drag slot and the per-element drop callbacks.
// At most one drag is active at a time; a second BeginDrag replaces the
// first. All mutation goes through BeginDrag, EndDrag, RegisterDropCallback
// and DispatchDrop.
type Coordinator struct {
	store     *TopicStore[DragDropState]
	callbacks map[string]DropCallback

	// nextElementID is a plain counter (no atomic, single-threaded host).
	nextElementID uint64
}

// NewCoordinator creates an idle coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		store:     NewTopicStore(DragDropState{}, DragTopics),
		callbacks: make(map[string]DropCallback),
	}
}

// NewElementID returns a fresh element ID. IDs are assigned in increasing
// order starting at "0" and are never reused by this coordinator.
func (c *Coordinator) NewElementID() string {
	id := strconv.FormatUint(c.nextElementID, 10)
	c.nextElementID++
	return id
}

// State returns the current broadcast state.
func (c *Coordinator) State() DragDropState {
	return c.store.State()
}

// Dragged returns a copy of the active drag and whether one exists.
func (c *Coordinator) Dragged() (DragState, bool) {
	d := c.store.State().Dragged
	if d == nil {
		return DragState{}, false
	}
	return *d, true
}

// Subscribe registers fn for changes touching any of the given element IDs.
func (c *Coordinator) Subscribe(ids []string, fn func(DragDropState)) Subscription {
	topics := make([]Topic, len(ids))
	for i, id := range ids {
		topics[i] = Topic(id)
	}
	return c.store.Subscribe(topics, fn)
}

// SubscribeAll registers fn for every drag state change.
func (c *Coordinator) SubscribeAll(fn func(DragDropState)) Subscription {
	return c.store.SubscribeAll(fn)
}

// BeginDrag makes id the active drag. Any drag already active is replaced.
func (c *Coordinator) BeginDrag(id string, dragPosition Point, elementSize Size) {
	c.store.Publish(DragDropState{Dragged: &DragState{
		ID:           id,
		DragPosition: dragPosition,
		ElementSize:  elementSize,
	}})
}

// EndDrag clears the active drag. Calling it while idle notifies nobody.
func (c *Coordinator) EndDrag() {
	c.store.Publish(DragDropState{})
}

// RegisterDropCallback sets the drop callback for id. A nil callback clears
// the entry. Registration is bookkeeping only and notifies no subscriber.
func (c *Coordinator) RegisterDropCallback(id string, cb DropCallback) {
	if cb == nil {
		delete(c.callbacks, id)
		return
	}
	c.callbacks[id] = cb
}

// DispatchDrop invokes the callback registered for id with position and
// reports whether one ran. It does not end the drag.
func (c *Coordinator) DispatchDrop(id string, position Point) bool {
	cb, ok := c.callbacks[id]
	if !ok {
		return false
	}
	cb(position)
	return true
}
