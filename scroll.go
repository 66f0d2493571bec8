package carousel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollState holds the carousel offset along the active axis and keeps it
// within [MinOffset(), 0].
type ScrollState struct {
	offset float64
	count  int
	extent float64

	slide *gween.Tween
}

// NewScrollState returns a scroll state at offset 0 for count images of the
// given axis extent.
func NewScrollState(count int, extent float64) *ScrollState {
	s := &ScrollState{}
	s.SetBounds(count, extent)
	return s
}

// SetBounds updates the image count and axis extent and resets the offset.
func (s *ScrollState) SetBounds(count int, extent float64) {
	s.count = count
	s.extent = extent
	s.Reset()
}

// MinOffset is -(extent * (count-1)), or 0 when there is nothing to scroll.
func (s *ScrollState) MinOffset() float64 {
	if s.count <= 1 || s.extent <= 0 {
		return 0
	}
	return -(s.extent * float64(s.count-1))
}

// Offset returns the current offset.
func (s *ScrollState) Offset() float64 {
	return s.offset
}

// Update clamps raw into the valid range, stores it and returns it. The
// caller repaints after every call, including calls that clamp to the
// current value. NaN leaves the offset unchanged.
func (s *ScrollState) Update(raw float64) float64 {
	if math.IsNaN(raw) {
		return s.offset
	}
	s.offset = clamp(raw, s.MinOffset(), 0)
	return s.offset
}

// Reset moves the offset back to 0 and stops any slide.
func (s *ScrollState) Reset() {
	s.offset = 0
	s.slide = nil
}

// Index returns the slot nearest to the current offset.
func (s *ScrollState) Index() int {
	if s.extent <= 0 || s.count == 0 {
		return 0
	}
	i := int(math.Round(-s.offset / s.extent))
	return max(0, min(i, s.count-1))
}

// SlideTo animates the offset to the slot at index over duration seconds.
// The target is clamped to valid slots.
func (s *ScrollState) SlideTo(index int, duration float32, easeFn ease.TweenFunc) {
	if s.count == 0 {
		return
	}
	index = max(0, min(index, s.count-1))
	target := clamp(-float64(index)*s.extent, s.MinOffset(), 0)
	if duration <= 0 {
		s.slide = nil
		s.Update(target)
		return
	}
	s.slide = gween.New(float32(s.offset), float32(target), duration, easeFn)
}

// Sliding reports whether a slide animation is in progress.
func (s *ScrollState) Sliding() bool {
	return s.slide != nil
}

// CancelSlide stops a slide, leaving the offset where it is.
func (s *ScrollState) CancelSlide() {
	s.slide = nil
}

// step advances the slide by dt seconds. It returns the new offset and true
// when an update was applied.
func (s *ScrollState) step(dt float32) (float64, bool) {
	if s.slide == nil {
		return s.offset, false
	}
	val, done := s.slide.Update(dt)
	if done {
		s.slide = nil
	}
	return s.Update(float64(val)), true
}
