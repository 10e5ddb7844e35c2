package core

import "testing"

func TestInputFramePressImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionPause)
	f.Hold(ActionLeft)

	if !f.JustPressed(ActionPause) || !f.Has(ActionPause) {
		t.Error("pressed action should be both pressed and held")
	}
	if f.JustPressed(ActionLeft) {
		t.Error("held action should not count as pressed")
	}
	if !f.Has(ActionLeft) {
		t.Error("held action should be reported by Has")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) || f.JustPressed(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	f.Press(ActionUp)
	if !f.JustPressed(ActionUp) {
		t.Error("Press on zero frame should allocate maps")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
