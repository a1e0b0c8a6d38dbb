package dragdrop

// Measurer reports a box's current bounding rectangle in client (screen)
// coordinates.
type Measurer interface {
	Bounds() Rect
}

// DropPosition converts a pointer release at client coordinates into a
// position relative to rect, given the active drag. The result is accepted
// only if the whole element fits inside rect; edges are inclusive.
// Out-of-bounds drops are rejected, never clamped.
func DropPosition(pointer Point, drag DragState, rect Rect) (Point, bool) {
	x := pointer.X - drag.DragPosition.X - rect.X
	y := pointer.Y - drag.DragPosition.Y - rect.Y
	pos := Point{X: x, Y: y}

	size := drag.ElementSize
	if x < 0 || x+size.Width > rect.Width ||
		y < 0 || y+size.Height > rect.Height {
		return pos, false
	}
	return pos, true
}

// Surface is the bounded drop container. It validates drops against its
// box and forwards accepted positions to the Coordinator.
type Surface struct {
	coord *Coordinator
	box   Measurer
}

// NewSurface creates an unmounted surface dispatching into coord.
func NewSurface(coord *Coordinator) *Surface {
	return &Surface{coord: coord}
}

// Mount binds the surface to its measurable box.
func (s *Surface) Mount(box Measurer) {
	s.box = box
}

// Unmount detaches the surface from its box.
func (s *Surface) Unmount() {
	s.box = nil
}

// Mounted reports whether a box is bound.
func (s *Surface) Mounted() bool {
	return s.box != nil
}

// Drop handles a drop gesture at client coordinates (clientX, clientY).
// The box is re-measured on every call. It returns the computed position
// and whether it was accepted and dispatched.
//
// Drop panics with a *UsageError if the surface is unmounted or no drag is
// active.
func (s *Surface) Drop(clientX, clientY float64) (Point, bool) {
	if s.box == nil {
		fatal("Surface.Drop", KindUnmounted, ErrNotMounted)
	}
	drag, ok := s.coord.Dragged()
	if !ok {
		fatal("Surface.Drop", KindNoDrag, ErrNoActiveDrag)
	}

	pos, ok := DropPosition(Point{X: clientX, Y: clientY}, drag, s.box.Bounds())
	if !ok {
		return pos, false
	}
	s.coord.DispatchDrop(drag.ID, pos)
	return pos, true
}

// DragOver handles a drag-over gesture. The surface is a drop target, so
// the host's default handling is always suppressed; the result is true.
func (s *Surface) DragOver() bool { return true }

// DragEnter is like DragOver.
func (s *Surface) DragEnter() bool { return true }

// DragLeave is like DragOver.
func (s *Surface) DragLeave() bool { return true }
