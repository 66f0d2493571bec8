package carousel

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-drag", "after-drag"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	c := &Carousel{}
	c.Screenshot("a")
	c.Screenshot("b")
	c.Screenshot("c")
	if len(c.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(c.screenshotQueue))
	}
	if c.screenshotQueue[0] != "a" || c.screenshotQueue[1] != "b" || c.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", c.screenshotQueue)
	}
}

func TestFlushWithoutCanvasDropsQueue(t *testing.T) {
	c := &Carousel{ScreenshotDir: t.TempDir()}
	c.Screenshot("a")
	c.flushScreenshots()
	if len(c.screenshotQueue) != 0 {
		t.Errorf("queue = %v, want empty", c.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half-transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{255, 127, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}
