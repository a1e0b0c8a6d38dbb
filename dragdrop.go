package dragdrop

// Point is a 2D coordinate. Positions handed to drop callbacks are relative
// to the drop surface's top-left corner.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size holds element dimensions in the same units as Point.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default element fill.
var ColorWhite = Color{1, 1, 1, 1}

// Topic is a subscription filter key. Element IDs are used as topics.
// The empty string is a valid topic.
type Topic string

// EventType identifies a kind of drag event forwarded to an EventStore.
type EventType uint8

const (
	EventDragStart  EventType = iota // an element began dragging
	EventDragEnter                   // the dragged pointer entered the surface
	EventDragLeave                   // the dragged pointer left the surface
	EventDrop                        // a drop landed inside the surface and was accepted
	EventDropReject                  // a drop landed on the surface but did not fit
	EventDragEnd                     // the drag gesture ended, with or without a drop
)

func (t EventType) String() string {
	switch t {
	case EventDragStart:
		return "dragstart"
	case EventDragEnter:
		return "dragenter"
	case EventDragLeave:
		return "dragleave"
	case EventDrop:
		return "drop"
	case EventDropReject:
		return "drop-reject"
	case EventDragEnd:
		return "dragend"
	default:
		return "unknown"
	}
}
