package carousel

import "testing"

func TestInjectPressRelease(t *testing.T) {
	h := NewStaticHost(640, 300)
	var got []InputType
	h.On(InputMouseDown, func(ev InputEvent) { got = append(got, ev.Type) })
	h.On(InputMouseUp, func(ev InputEvent) { got = append(got, ev.Type) })

	h.InjectPress(50, 50)
	h.InjectRelease(50, 50)
	if h.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", h.Pending())
	}

	// Frame 1: press
	h.Poll()
	if h.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", h.Pending())
	}
	if len(got) != 1 || got[0] != InputMouseDown {
		t.Errorf("after frame 1 got %v", got)
	}

	// Frame 2: release
	h.Poll()
	if h.Pending() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", h.Pending())
	}
	if len(got) != 2 || got[1] != InputMouseUp {
		t.Errorf("after frame 2 got %v", got)
	}
}

func TestInjectDrag(t *testing.T) {
	h := NewStaticHost(640, 300)

	// Drag from (10,10) to (200,200) over 5 frames:
	// frame 0: press at (10,10)
	// frame 1: move to ~(57.5, 57.5)
	// frame 2: move to ~(105, 105)
	// frame 3: move to ~(152.5, 152.5)
	// frame 4: release at (200, 200)
	h.InjectDrag(10, 10, 200, 200, 5)
	if h.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", h.Pending())
	}

	var events []InputEvent
	record := func(ev InputEvent) { events = append(events, ev) }
	h.On(InputMouseDown, record)
	h.On(InputMouseMove, record)
	h.On(InputMouseUp, record)

	for i := 0; i < 5; i++ {
		h.Poll()
	}

	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	if events[0].Type != InputMouseDown || events[4].Type != InputMouseUp {
		t.Errorf("drag should start with down and end with up: %v", events)
	}
	if !approxEqual(events[2].X, 105, epsilon) || !approxEqual(events[2].Y, 105, epsilon) {
		t.Errorf("midpoint = (%v, %v), want (105, 105)", events[2].X, events[2].Y)
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	h := NewStaticHost(640, 300)
	h.InjectDrag(0, 0, 100, 0, 1)
	if h.Pending() != 2 {
		t.Errorf("expected press+release only, got %d", h.Pending())
	}
}

func TestInjectTouchAndNavigate(t *testing.T) {
	h := NewStaticHost(640, 300)
	var got []InputEvent
	record := func(ev InputEvent) { got = append(got, ev) }
	h.On(InputTouchStart, record)
	h.On(InputTouchEnd, record)
	h.On(InputNavigate, record)

	h.InjectTouchStart(2, 10, 20)
	h.InjectTouchEnd(2, 30, 20)
	h.InjectNavigate(-1)
	for h.Pending() > 0 {
		h.Poll()
	}

	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[0].PointerID != 2 || got[1].PointerID != 2 {
		t.Errorf("touch pointer ids = %d, %d, want 2", got[0].PointerID, got[1].PointerID)
	}
	if got[2].Step != -1 {
		t.Errorf("navigate step = %d, want -1", got[2].Step)
	}
}

func TestPollEmptyQueue(t *testing.T) {
	h := NewStaticHost(640, 300)
	if h.processInjected() {
		t.Error("processInjected on empty queue should report false")
	}
}
