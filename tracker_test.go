package carousel

import "testing"

func TestPointerTrackerGesture(t *testing.T) {
	tr := NewPointerTracker(Horizontal)
	if tr.Dragging() || tr.PointerID() != -1 {
		t.Fatal("new tracker should be idle")
	}

	if !tr.Begin(0, Vec2{100, 50}, -640) {
		t.Fatal("Begin on idle tracker failed")
	}
	raw, ok := tr.Move(0, Vec2{40, 90})
	if !ok {
		t.Fatal("Move by owning pointer rejected")
	}
	if raw != -700 {
		t.Errorf("raw = %v, want -700", raw)
	}
	if d := tr.Delta(); d != (Vec2{-60, 40}) {
		t.Errorf("Delta = %+v, want {-60 40}", d)
	}
	if !tr.End(0) {
		t.Error("End by owning pointer failed")
	}
	if tr.Dragging() {
		t.Error("still dragging after End")
	}
}

func TestPointerTrackerVerticalAxis(t *testing.T) {
	tr := NewPointerTracker(Vertical)
	tr.Begin(0, Vec2{10, 10}, 0)
	raw, _ := tr.Move(0, Vec2{500, -90})
	if raw != -100 {
		t.Errorf("raw = %v, want -100 (cross axis ignored)", raw)
	}
}

func TestPointerTrackerIdleMove(t *testing.T) {
	tr := NewPointerTracker(Horizontal)
	if _, ok := tr.Move(0, Vec2{10, 10}); ok {
		t.Error("Move while idle should be ignored")
	}
	if tr.End(0) {
		t.Error("End while idle should report false")
	}
}

func TestPointerTrackerSecondPointerIgnored(t *testing.T) {
	tr := NewPointerTracker(Horizontal)
	tr.Begin(0, Vec2{0, 0}, 0)

	if tr.Begin(1, Vec2{300, 0}, -999) {
		t.Error("second Begin should be rejected")
	}
	if tr.PointerID() != 0 {
		t.Errorf("PointerID = %d, want 0", tr.PointerID())
	}
	if _, ok := tr.Move(1, Vec2{50, 0}); ok {
		t.Error("Move from a foreign pointer should be ignored")
	}
	if tr.End(1) {
		t.Error("End from a foreign pointer should be ignored")
	}
	if !tr.Dragging() {
		t.Error("gesture should survive foreign pointer events")
	}
}

func TestPointerTrackerCancel(t *testing.T) {
	tr := NewPointerTracker(Horizontal)
	tr.Begin(3, Vec2{}, 0)
	tr.Cancel()
	if tr.Dragging() {
		t.Error("still dragging after Cancel")
	}
	if !tr.Begin(0, Vec2{}, 0) {
		t.Error("Begin after Cancel failed")
	}
}

func TestClientToLocal(t *testing.T) {
	vp := Viewport{640, 300}
	tests := []struct {
		name   string
		client Vec2
		box    Rect
		want   Vec2
	}{
		{"identity", Vec2{100, 50}, Rect{Width: 640, Height: 300}, Vec2{100, 50}},
		{"offset box", Vec2{150, 80}, Rect{X: 50, Y: 30, Width: 640, Height: 300}, Vec2{100, 50}},
		{"scaled box", Vec2{100, 50}, Rect{Width: 320, Height: 150}, Vec2{200, 100}},
		{"offset and scaled", Vec2{110, 75}, Rect{X: 10, Y: 25, Width: 1280, Height: 600}, Vec2{50, 25}},
		{"zero box", Vec2{7, 9}, Rect{}, Vec2{7, 9}},
	}
	for _, tt := range tests {
		if got := clientToLocal(tt.client, tt.box, vp); got != tt.want {
			t.Errorf("%s: clientToLocal = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
