package carousel

// mousePointerID is the pointer ID used for the mouse. Touches use 1-9.
const mousePointerID = 0

// gestureState exists only while a drag is in progress.
type gestureState struct {
	pointerID     int
	anchorPointer Vec2
	anchorOffset  float64
	last          Vec2
}

// PointerTracker turns pointer positions into proposed scroll offsets. It is
// Idle until Begin and Dragging until End. Only one gesture can be active.
type PointerTracker struct {
	dir     Direction
	gesture *gestureState
}

// NewPointerTracker returns an idle tracker feeding the given axis.
func NewPointerTracker(dir Direction) *PointerTracker {
	return &PointerTracker{dir: dir}
}

// Dragging reports whether a gesture is active.
func (t *PointerTracker) Dragging() bool {
	return t.gesture != nil
}

// PointerID returns the pointer owning the active gesture, or -1.
func (t *PointerTracker) PointerID() int {
	if t.gesture == nil {
		return -1
	}
	return t.gesture.pointerID
}

// Begin starts a gesture at local (surface) coordinates, anchored to the
// current scroll offset. It returns false, changing nothing, when a gesture
// is already active.
func (t *PointerTracker) Begin(pointerID int, local Vec2, offset float64) bool {
	if t.gesture != nil {
		return false
	}
	t.gesture = &gestureState{
		pointerID:     pointerID,
		anchorPointer: local,
		anchorOffset:  offset,
		last:          local,
	}
	return true
}

// Move returns the proposed offset anchorOffset + displacement along the
// active axis. ok is false when idle or when the pointer is not the one that
// started the gesture.
func (t *PointerTracker) Move(pointerID int, local Vec2) (raw float64, ok bool) {
	g := t.gesture
	if g == nil || g.pointerID != pointerID {
		return 0, false
	}
	g.last = local
	return g.anchorOffset + t.dir.axis(local.Sub(g.anchorPointer)), true
}

// Delta returns the displacement since Begin on both axes. The cross-axis
// component is informational only.
func (t *PointerTracker) Delta() Vec2 {
	if t.gesture == nil {
		return Vec2{}
	}
	return t.gesture.last.Sub(t.gesture.anchorPointer)
}

// End discards the gesture owned by pointerID. The offset reached during the
// gesture stays as the resting position.
func (t *PointerTracker) End(pointerID int) bool {
	if t.gesture == nil || t.gesture.pointerID != pointerID {
		return false
	}
	t.gesture = nil
	return true
}

// Cancel discards any active gesture.
func (t *PointerTracker) Cancel() {
	t.gesture = nil
}

// clientToLocal converts client coordinates into surface coordinates,
// correcting for a bounding box whose size differs from the viewport.
func clientToLocal(client Vec2, box Rect, vp Viewport) Vec2 {
	local := client.Sub(Vec2{box.X, box.Y})
	if box.Width > 0 && box.Width != vp.Width {
		local.X *= vp.Width / box.Width
	}
	if box.Height > 0 && box.Height != vp.Height {
		local.Y *= vp.Height / box.Height
	}
	return local
}
