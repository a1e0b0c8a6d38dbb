package dragdrop

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic, the host loop is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is a translation-only box in the scene tree. X and Y are relative to
// the parent; Bounds reports the box in screen coordinates. A Node is the
// Measurer handed to surfaces and elements.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Box (local)
	X, Y          float64
	Width, Height float64

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Ordering
	ZIndex int

	// Appearance. Image, when set, is stretched over the box; otherwise the
	// box is filled with Color.
	Color Color
	Image *ebiten.Image

	// Metadata
	UserData any
	EntityID uint32

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// NewNode creates a visible, interactable node with the given size.
func NewNode(name string, width, height float64) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		Width:          width,
		Height:         height,
		Alpha:          1,
		Color:          ColorWhite,
		Visible:        true,
		Interactable:   true,
		childrenSorted: true,
	}
}

// --- Geometry ---

// Origin returns the node's top-left corner in screen coordinates.
func (n *Node) Origin() Point {
	var p Point
	for c := n; c != nil; c = c.Parent {
		p.X += c.X
		p.Y += c.Y
	}
	return p
}

// Bounds returns the node's box in screen coordinates. It is computed on
// every call, so moving an ancestor is reflected immediately.
func (n *Node) Bounds() Rect {
	o := n.Origin()
	return Rect{X: o.X, Y: o.Y, Width: n.Width, Height: n.Height}
}

// SetPosition sets the node's local position.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetSize sets the node's box dimensions.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("dragdrop: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("dragdrop: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	if globalDebug {
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("dragdrop: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// BringToFront moves the node above all of its siblings.
func (n *Node) BringToFront() {
	p := n.Parent
	if p == nil {
		return
	}
	top := n.ZIndex
	for _, c := range p.children {
		if c != n && c.ZIndex >= top {
			top = c.ZIndex + 1
		}
	}
	n.SetZIndex(top)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.Image = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Ordering & hit testing ---

// paintOrder returns the children sorted by ZIndex, stable on insertion order.
func (n *Node) paintOrder() []*Node {
	if n.childrenSorted && n.sortedChildren != nil {
		return n.sortedChildren
	}
	n.sortedChildren = append(n.sortedChildren[:0], n.children...)
	sort.SliceStable(n.sortedChildren, func(i, j int) bool {
		return n.sortedChildren[i].ZIndex < n.sortedChildren[j].ZIndex
	})
	n.childrenSorted = true
	return n.sortedChildren
}

// collectInteractable walks the tree in painter order, appending visible
// interactable nodes to buf. Skips Visible=false or Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	buf = append(buf, n)
	for _, child := range n.paintOrder() {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost node under (x, y) for which accept returns true.
// Iterates backward (reverse painter order): topmost visual node first.
func hitTest(root *Node, x, y float64, buf []*Node, accept func(*Node) bool) (*Node, []*Node) {
	buf = collectInteractable(root, buf[:0])
	for i := len(buf) - 1; i >= 0; i-- {
		n := buf[i]
		if accept != nil && !accept(n) {
			continue
		}
		if n.Bounds().Contains(x, y) {
			return n, buf
		}
	}
	return nil, buf
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
