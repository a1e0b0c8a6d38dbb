package dragdrop

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Pointer state ---

// pointerState tracks the mouse pointer across frames. Only the primary
// button starts a drag.
type pointerState struct {
	down        bool
	startX      float64
	startY      float64
	lastX       float64
	lastY       float64
	hit         *elementEntry // element pressed on, if any
	dragging    bool
	overSurface bool
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.cfg.DragDeadZone = pixels
}

// --- Hit testing ---

// elementAt returns the topmost element whose node contains (x, y).
func (s *Scene) elementAt(x, y float64) *elementEntry {
	var n *Node
	n, s.hitBuf = hitTest(s.surfaceNode, x, y, s.hitBuf, func(n *Node) bool {
		return n != s.surfaceNode
	})
	if n == nil {
		return nil
	}
	for _, e := range s.entries {
		if e.node == n {
			return e
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update. Injected events take priority
// over the real mouse, one per frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(float64(mx), float64(my), pressed)
}

// processPointer runs the pointer state machine and translates it into
// native drag gestures: drag start once the press leaves the dead zone,
// enter/over/leave while the pointer crosses the surface, drop when
// released over the surface, and drag end on every release after a drag.
func (s *Scene) processPointer(x, y float64, pressed bool) {
	ps := &s.pointer

	switch {
	case pressed && !ps.down:
		// Just pressed.
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hit = s.elementAt(x, y)
		ps.dragging = false
		ps.overSurface = false

	case !pressed && ps.down:
		// Just released.
		if ps.dragging {
			s.finishDrag(x, y)
		}
		ps.down = false
		ps.hit = nil
		ps.dragging = false
		ps.overSurface = false

	case pressed && ps.down:
		// Held down, possibly moved.
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging && ps.hit != nil {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.cfg.DragDeadZone {
					ps.dragging = true
					s.startDrag()
				}
			}
			if ps.dragging {
				s.trackSurface(x, y)
			}
		}
		ps.lastX, ps.lastY = x, y
	}
}

// startDrag begins a drag on the pressed element. The pointer offset is
// taken at the press point, where the element was grabbed.
func (s *Scene) startDrag() {
	ps := &s.pointer
	grab := Point{X: ps.startX, Y: ps.startY}
	ps.hit.el.DragStart(grab)
	s.emit(EventDragStart, ps.hit, grab, Point{})
}

// trackSurface fires enter/leave when the pointer crosses the surface
// boundary and drag-over while it stays inside.
func (s *Scene) trackSurface(x, y float64) {
	ps := &s.pointer
	inside := s.surfaceNode.Visible && s.surfaceNode.Bounds().Contains(x, y)
	if inside != ps.overSurface {
		ps.overSurface = inside
		if inside {
			s.surface.DragEnter()
			s.emit(EventDragEnter, ps.hit, Point{X: x, Y: y}, Point{})
		} else {
			s.surface.DragLeave()
			s.emit(EventDragLeave, ps.hit, Point{X: x, Y: y}, Point{})
		}
	}
	if inside {
		s.surface.DragOver()
	}
}

// finishDrag drops onto the surface if the pointer is over it, then ends
// the drag unconditionally.
func (s *Scene) finishDrag(x, y float64) {
	ps := &s.pointer
	entry := ps.hit
	pointer := Point{X: x, Y: y}

	s.trackSurface(x, y)
	if ps.overSurface {
		if _, active := s.coord.Dragged(); active {
			pos, ok := s.surface.Drop(x, y)
			if ok {
				s.emit(EventDrop, entry, pointer, pos)
				if s.cfg.RaiseOnDrop && entry != nil && !entry.node.IsDisposed() {
					entry.node.BringToFront()
				}
			} else {
				s.emit(EventDropReject, entry, pointer, pos)
			}
		}
	}

	if entry != nil {
		entry.el.DragEnd()
	} else {
		s.coord.EndDrag()
	}
	s.emit(EventDragEnd, entry, pointer, Point{})
}
