package dragdrop

import "testing"

func TestFadeReachesTarget(t *testing.T) {
	n := NewNode("n", 10, 10)
	f := &fade{node: n, duration: 1}

	f.to(0.5)
	if !f.active() {
		t.Fatal("fade should be active")
	}
	// Exact halves avoid float32 accumulation drift.
	f.update(0.5)
	if n.Alpha <= 0.5 || n.Alpha >= 1 {
		t.Errorf("alpha mid-fade = %v, want between 0.5 and 1", n.Alpha)
	}
	f.update(0.5)
	if f.active() {
		t.Error("fade should be done after full duration")
	}
	if n.Alpha != 0.5 {
		t.Errorf("alpha = %v, want 0.5", n.Alpha)
	}
}

func TestFadeNoOpAtTarget(t *testing.T) {
	n := NewNode("n", 10, 10)
	f := &fade{node: n, duration: 1}
	f.to(1)
	if f.active() {
		t.Error("fading to the current alpha should not start a tween")
	}
}

func TestFadeRetarget(t *testing.T) {
	n := NewNode("n", 10, 10)
	f := &fade{node: n, duration: 1}
	f.to(0)
	f.update(0.5)
	mid := n.Alpha

	f.to(1)
	f.update(1)
	if n.Alpha != 1 {
		t.Errorf("alpha = %v, want 1 after retargeting from %v", n.Alpha, mid)
	}
}

func TestFadeStopsOnDisposedNode(t *testing.T) {
	n := NewNode("n", 10, 10)
	f := &fade{node: n, duration: 1}
	f.to(0)
	n.Dispose()
	f.update(0.5)
	if f.active() {
		t.Error("fade should stop when its node is disposed")
	}
	if n.Alpha != 1 {
		t.Errorf("alpha = %v, disposed node should not be written", n.Alpha)
	}
}
