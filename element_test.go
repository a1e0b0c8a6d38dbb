package dragdrop

import (
	"errors"
	"testing"
)

// warningRecorder captures advisory warnings for the duration of a test.
type warningRecorder struct {
	got []*UsageError
}

func (r *warningRecorder) HandleWarning(err *UsageError) {
	r.got = append(r.got, err)
}

func recordWarnings(t *testing.T) *warningRecorder {
	t.Helper()
	rec := &warningRecorder{}
	SetWarningHandler(rec)
	t.Cleanup(func() { SetWarningHandler(nil) })
	return rec
}

func ptr(p Point) *Point { return &p }

func TestElement_UniqueIDs(t *testing.T) {
	c := NewCoordinator()
	a := NewElement(c, ElementProps{})
	b := NewElement(c, ElementProps{})
	if a.ID() == b.ID() {
		t.Errorf("ids collide: %q", a.ID())
	}
}

func TestElement_ScenarioD(t *testing.T) {
	c := NewCoordinator()
	var hostGot []Point
	el := NewElement(c, ElementProps{
		OnDropped: func(p Point) { hostGot = append(hostGot, p) },
	})
	if el.Controlled() {
		t.Fatal("element without Position should be uncontrolled")
	}
	if el.Position() != (Point{}) {
		t.Errorf("seed position = %v, want (0,0)", el.Position())
	}

	el.Mount(&fixedBox{rect: Rect{Width: 20, Height: 10}})
	c.DispatchDrop(el.ID(), Point{30, 40})

	if el.Position() != (Point{30, 40}) {
		t.Errorf("position = %v, want (30,40)", el.Position())
	}
	if len(hostGot) != 1 || hostGot[0] != (Point{30, 40}) {
		t.Errorf("host OnDropped got %v", hostGot)
	}
}

func TestElement_DefaultPositionSeed(t *testing.T) {
	el := NewElement(NewCoordinator(), ElementProps{DefaultPosition: ptr(Point{7, 8})})
	if el.Position() != (Point{7, 8}) {
		t.Errorf("position = %v, want (7,8)", el.Position())
	}
}

func TestElement_ControlledPositionUnchangedByDrop(t *testing.T) {
	c := NewCoordinator()
	var hostGot Point
	el := NewElement(c, ElementProps{
		Position:  ptr(Point{1, 2}),
		OnDropped: func(p Point) { hostGot = p },
	})
	el.Mount(&fixedBox{})
	c.DispatchDrop(el.ID(), Point{30, 40})

	if el.Position() != (Point{1, 2}) {
		t.Errorf("controlled position = %v, want host value (1,2)", el.Position())
	}
	if hostGot != (Point{30, 40}) {
		t.Errorf("host got %v, want (30,40)", hostGot)
	}

	el.Update(ElementProps{Position: ptr(Point{30, 40})})
	if el.Position() != (Point{30, 40}) {
		t.Errorf("position after Update = %v", el.Position())
	}
}

func TestElement_ControlledMissingPositionPanics(t *testing.T) {
	el := NewElement(NewCoordinator(), ElementProps{Position: ptr(Point{})})
	expectUsagePanic(t, KindMissingPosition, ErrMissingPosition, func() {
		el.Update(ElementProps{})
	})
	// The rejected update left the previous props in place.
	if el.Position() != (Point{}) {
		t.Errorf("position = %v after rejected update", el.Position())
	}
}

func TestElement_ModeFixedAtConstruction(t *testing.T) {
	rec := recordWarnings(t)
	el := NewElement(NewCoordinator(), ElementProps{})
	el.Update(ElementProps{Position: ptr(Point{9, 9})})

	if el.Controlled() {
		t.Error("mode must not change after construction")
	}
	if el.Position() != (Point{}) {
		t.Errorf("uncontrolled element used Position prop: %v", el.Position())
	}
	if len(rec.got) != 1 || !errors.Is(rec.got[0], ErrIgnoredPosition) {
		t.Errorf("warnings = %v, want one ErrIgnoredPosition", rec.got)
	}
}

func TestElement_ControlledDefaultPositionWarns(t *testing.T) {
	rec := recordWarnings(t)
	el := NewElement(NewCoordinator(), ElementProps{
		Position:        ptr(Point{1, 1}),
		DefaultPosition: ptr(Point{5, 5}),
	})
	el.Mount(&fixedBox{})

	if len(rec.got) != 1 {
		t.Fatalf("warnings = %d, want 1", len(rec.got))
	}
	w := rec.got[0]
	if w.Kind != KindIgnoredProp || !errors.Is(w, ErrIgnoredDefault) || w.Op != "Element.Mount" {
		t.Errorf("warning = %v", w)
	}
	if el.Position() != (Point{1, 1}) {
		t.Errorf("position = %v, want (1,1)", el.Position())
	}
}

func TestElement_DragStartMeasuresBox(t *testing.T) {
	c := NewCoordinator()
	el := NewElement(c, ElementProps{})
	el.Mount(&fixedBox{rect: Rect{X: 100, Y: 50, Width: 20, Height: 10}})

	el.DragStart(Point{105, 55})
	d, ok := c.Dragged()
	if !ok {
		t.Fatal("expected active drag")
	}
	want := DragState{ID: el.ID(), DragPosition: Point{5, 5}, ElementSize: Size{20, 10}}
	if d != want {
		t.Errorf("drag = %+v, want %+v", d, want)
	}

	el.DragEnd()
	if _, ok := c.Dragged(); ok {
		t.Error("DragEnd should clear the drag")
	}
}

func TestElement_DragStartUnmountedPanics(t *testing.T) {
	el := NewElement(NewCoordinator(), ElementProps{})
	expectUsagePanic(t, KindUnmounted, ErrNotMounted, func() { el.DragStart(Point{}) })
}

func TestElement_ReleaseDeregisters(t *testing.T) {
	c := NewCoordinator()
	var count int
	el := NewElement(c, ElementProps{OnDropped: func(Point) { count++ }})
	el.Mount(&fixedBox{})

	if !c.DispatchDrop(el.ID(), Point{}) {
		t.Fatal("mounted element should receive drops")
	}
	el.Release()
	el.Release() // idempotent
	if c.DispatchDrop(el.ID(), Point{}) {
		t.Error("dispatch after Release should be a no-op")
	}
	if count != 1 {
		t.Errorf("OnDropped ran %d times, want 1", count)
	}
	if el.Mounted() {
		t.Error("Mounted() should be false after Release")
	}
}

func TestElement_DragChangeOnlyForOwnTopic(t *testing.T) {
	c := NewCoordinator()
	var aChanges, bChanges []bool
	a := NewElement(c, ElementProps{OnDragChange: func(d bool) { aChanges = append(aChanges, d) }})
	b := NewElement(c, ElementProps{OnDragChange: func(d bool) { bChanges = append(bChanges, d) }})
	a.Mount(&fixedBox{rect: Rect{Width: 10, Height: 10}})
	b.Mount(&fixedBox{rect: Rect{Width: 10, Height: 10}})

	a.DragStart(Point{1, 1})
	if !a.IsDragged() || b.IsDragged() {
		t.Errorf("IsDragged a=%v b=%v, want true false", a.IsDragged(), b.IsDragged())
	}
	if len(bChanges) != 0 {
		t.Errorf("b notified while a dragged: %v", bChanges)
	}

	a.DragEnd()
	if a.IsDragged() {
		t.Error("a still dragged after DragEnd")
	}
	if len(aChanges) != 2 || !aChanges[0] || aChanges[1] {
		t.Errorf("a changes = %v, want [true false]", aChanges)
	}
}

func TestElement_ReleasedStopsListening(t *testing.T) {
	c := NewCoordinator()
	var changes int
	el := NewElement(c, ElementProps{OnDragChange: func(bool) { changes++ }})
	el.Mount(&fixedBox{})
	el.Release()

	c.BeginDrag(el.ID(), Point{}, Size{})
	if changes != 0 {
		t.Errorf("released element notified %d times", changes)
	}
}

func TestElement_DragCancelledByEarlierListener(t *testing.T) {
	c := NewCoordinator()
	el := NewElement(c, ElementProps{})
	c.Subscribe([]string{el.ID()}, func(st DragDropState) {
		if st.Dragged != nil {
			c.EndDrag()
		}
	})
	el.Mount(&fixedBox{rect: Rect{Width: 10, Height: 10}})

	el.DragStart(Point{1, 1})
	if _, ok := c.Dragged(); ok {
		t.Fatal("coordinator still dragging")
	}
	if el.IsDragged() {
		t.Error("element reports dragged after the drag was ended mid-notify")
	}
}
