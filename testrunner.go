package carousel

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Slot   int     `json:"slot,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, navigation and screenshots across
// frames for scripted runs. Attach to a Carousel via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. It steps at the start of every
// Update, before input is polled.
func (c *Carousel) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Scripts need a host that accepts
// injected input; any other host ends the script immediately.
func (r *TestRunner) step(c *Carousel) {
	if r.done {
		return
	}
	inj, ok := c.host.(injector)
	if !ok {
		Logger().Warn("test script ignored: host does not accept injected input")
		r.done = true
		return
	}
	// Let pending injections and loads drain before advancing.
	if inj.Pending() > 0 || c.Loading() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		c.Screenshot(st.Label)
	case "press":
		inj.InjectPress(st.X, st.Y)
	case "move":
		inj.InjectMove(st.X, st.Y)
	case "release":
		inj.InjectRelease(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		inj.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "touchstart":
		inj.InjectTouchStart(st.Slot, st.X, st.Y)
	case "touchmove":
		inj.InjectTouchMove(st.Slot, st.X, st.Y)
	case "touchend":
		inj.InjectTouchEnd(st.Slot, st.X, st.Y)
	case "next":
		inj.InjectNavigate(1)
	case "prev":
		inj.InjectNavigate(-1)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		Logger().Warn("test script: unknown action", slog.String("action", st.Action), slog.Int("step", r.cursor-1))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && inj.Pending() == 0 {
		r.done = true
	}
}
