package dragdrop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade eases a node's Alpha toward a target. It drives the dragged
// highlight; positions are never animated.
type fade struct {
	node     *Node
	tween    *gween.Tween
	target   float64
	duration float32
}

// to starts easing from the node's current alpha to target. Retargeting to
// the value already in flight is a no-op.
func (f *fade) to(target float64) {
	if f.tween != nil && f.target == target {
		return
	}
	if f.tween == nil && f.node.Alpha == target {
		return
	}
	f.target = target
	f.tween = gween.New(float32(f.node.Alpha), float32(target), f.duration, ease.OutQuad)
}

// active reports whether a fade is in progress.
func (f *fade) active() bool {
	return f.tween != nil
}

// update advances the fade by dt seconds and writes the node's alpha.
func (f *fade) update(dt float32) {
	if f.tween == nil {
		return
	}
	if f.node.IsDisposed() {
		f.tween = nil
		return
	}
	val, finished := f.tween.Update(dt)
	f.node.Alpha = float64(val)
	if finished {
		f.node.Alpha = f.target
		f.tween = nil
	}
}
