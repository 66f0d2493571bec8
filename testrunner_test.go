package carousel

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "drag", "fromX": 600, "fromY": 100, "toX": 100, "toY": 100, "frames": 4},
			{"action": "wait", "frames": 3},
			{"action": "touchstart", "slot": 2, "x": 10, "y": 20}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if s := runner.steps[1]; s.Action != "drag" || s.FromX != 600 || s.ToX != 100 || s.Frames != 4 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if s := runner.steps[3]; s.Slot != 2 || s.X != 10 || s.Y != 20 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func runScript(t *testing.T, r *testRig, script string, maxFrames int) *TestRunner {
	t.Helper()
	runner, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	r.c.SetTestRunner(runner)
	for i := 0; i < maxFrames && !runner.Done(); i++ {
		if err := r.c.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if !runner.Done() {
		t.Fatalf("script not done after %d frames", maxFrames)
	}
	return runner
}

func TestRunnerStep_Drag(t *testing.T) {
	r := newRig(t, 3, 400, 200)
	runScript(t, r, `{"steps": [
		{"action": "drag", "fromX": 600, "fromY": 100, "toX": 100, "toY": 100, "frames": 5}
	]}`, 20)

	// Moves land at 475, 350 and 225; the release does not move.
	if r.c.Offset() != -375 {
		t.Errorf("offset = %v, want -375", r.c.Offset())
	}
	if r.c.Dragging() {
		t.Error("drag should have been released")
	}
	if r.host.Pending() != 0 {
		t.Errorf("pending = %d", r.host.Pending())
	}
}

func TestRunnerStep_PressMoveRelease(t *testing.T) {
	r := newRig(t, 3, 400, 200)
	runScript(t, r, `{"steps": [
		{"action": "press", "x": 300, "y": 100},
		{"action": "move", "x": 50, "y": 100},
		{"action": "release", "x": 50, "y": 100}
	]}`, 20)
	if r.c.Offset() != -250 {
		t.Errorf("offset = %v, want -250", r.c.Offset())
	}
}

func TestRunnerStep_Touch(t *testing.T) {
	r := newRig(t, 3, 400, 200)
	runScript(t, r, `{"steps": [
		{"action": "touchstart", "slot": 1, "x": 500, "y": 100},
		{"action": "touchmove", "slot": 1, "x": 100, "y": 100},
		{"action": "touchend", "slot": 1, "x": 100, "y": 100}
	]}`, 20)
	if r.c.Offset() != -400 {
		t.Errorf("offset = %v, want -400", r.c.Offset())
	}
	if r.host.HandlerCount(InputTouchMove) != 0 {
		t.Error("touch handlers leaked")
	}
}

func TestRunnerStep_NextWait(t *testing.T) {
	r := newRig(t, 3, 400, 200)
	runScript(t, r, `{"steps": [
		{"action": "next"},
		{"action": "wait", "frames": 30}
	]}`, 60)
	if !approxEqual(r.c.Offset(), -640, 0.01) {
		t.Errorf("offset = %v, want -640", r.c.Offset())
	}
}

func TestRunnerStep_Screenshot(t *testing.T) {
	r := newRig(t, 1, 10, 10)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "x"}, {"action": "bogus"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.c.SetTestRunner(runner)
	r.c.Update()
	if len(r.c.screenshotQueue) != 1 || r.c.screenshotQueue[0] != "x" {
		t.Errorf("queue = %v", r.c.screenshotQueue)
	}
	r.c.Update()
	if !runner.Done() {
		t.Error("unknown actions should be skipped")
	}
}

// busHost accepts handlers but no injected input.
type busHost struct {
	bus EventBus
}

func (h *busHost) Size() (float64, float64) { return 640, 300 }
func (h *busHost) BoundingBox() Rect        { return Rect{Width: 640, Height: 300} }

func (h *busHost) On(t InputType, fn func(InputEvent)) CallbackHandle {
	return h.bus.On(t, fn)
}

func TestRunnerRequiresInjector(t *testing.T) {
	c, err := New(Config{}, &busHost{})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	c.SetSurface(&recordSurface{})
	runner, _ := LoadTestScript([]byte(`{"steps": [{"action": "next"}]}`))
	c.SetTestRunner(runner)
	c.Update()
	if !runner.Done() {
		t.Error("runner should give up without an injecting host")
	}
}
