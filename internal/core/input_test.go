package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionSelect)
	if !f.Has(ActionSelect) {
		t.Error("Has(Select) = false after Set")
	}
	if f.Has(ActionUndo) {
		t.Error("Has(Undo) = true, expected false")
	}
	if f.Empty() {
		t.Error("frame with an action should not be empty")
	}

	f.Clear()
	if f.Has(ActionSelect) || !f.Empty() {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.Pointer(); ok {
		t.Fatal("new frame should have no click")
	}

	f.Click(3, 4)
	f.Click(7, 8)
	p, ok := f.Pointer()
	if !ok || p != (Point{X: 7, Y: 8}) {
		t.Errorf("Pointer() = %v, %v, expected last click (7, 8)", p, ok)
	}

	clone := f.Clone()
	f.Clear()
	if _, ok := f.Pointer(); ok {
		t.Error("Clear should drop the click")
	}
	if p, ok := clone.Pointer(); !ok || p.X != 7 {
		t.Error("Clone should keep the click")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionSelect, "Select"},
		{ActionUndo, "Undo"},
		{ActionHint, "Hint"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
