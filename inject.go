package carousel

// InjectPress queues a mouse press at the given client coordinates. The
// event is consumed by the next poll.
func (b *EventBus) InjectPress(x, y float64) {
	b.inject(InputEvent{Type: InputMouseDown, PointerID: mousePointerID, X: x, Y: y})
}

// InjectMove queues a mouse move. Use this between InjectPress and
// InjectRelease to simulate a drag.
func (b *EventBus) InjectMove(x, y float64) {
	b.inject(InputEvent{Type: InputMouseMove, PointerID: mousePointerID, X: x, Y: y})
}

// InjectRelease queues a mouse release.
func (b *EventBus) InjectRelease(x, y float64) {
	b.inject(InputEvent{Type: InputMouseUp, PointerID: mousePointerID, X: x, Y: y})
}

// InjectLeave queues the cursor leaving the surface.
func (b *EventBus) InjectLeave(x, y float64) {
	b.inject(InputEvent{Type: InputMouseLeave, PointerID: mousePointerID, X: x, Y: y})
}

// InjectTouchStart queues a touch start on the given touch slot (1-9).
func (b *EventBus) InjectTouchStart(slot int, x, y float64) {
	b.inject(InputEvent{Type: InputTouchStart, PointerID: slot, X: x, Y: y})
}

// InjectTouchMove queues a touch move on the given slot.
func (b *EventBus) InjectTouchMove(slot int, x, y float64) {
	b.inject(InputEvent{Type: InputTouchMove, PointerID: slot, X: x, Y: y})
}

// InjectTouchEnd queues a touch end on the given slot.
func (b *EventBus) InjectTouchEnd(slot int, x, y float64) {
	b.inject(InputEvent{Type: InputTouchEnd, PointerID: slot, X: x, Y: y})
}

// InjectNavigate queues a step to the next (step > 0) or previous image.
func (b *EventBus) InjectNavigate(step int) {
	b.inject(InputEvent{Type: InputNavigate, Step: step})
}

// InjectDrag queues a full mouse drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes `frames` polls; the minimum is 2.
func (b *EventBus) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	b.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		b.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	b.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (b *EventBus) Pending() int {
	return len(b.injectQueue)
}

func (b *EventBus) inject(ev InputEvent) {
	b.injectQueue = append(b.injectQueue, ev)
}

// processInjected pops one queued event and dispatches it. It returns true
// if an event was consumed, in which case real input is skipped this poll.
func (b *EventBus) processInjected() bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	ev := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]
	b.Dispatch(ev)
	return true
}
