package carousel

import "slices"

// InputType identifies a kind of raw pointer, touch or navigation input.
type InputType uint8

const (
	InputMouseDown  InputType = iota // mouse button pressed over the surface
	InputMouseUp                     // mouse button released
	InputMouseLeave                  // cursor left the surface
	InputMouseMove                   // cursor moved
	InputTouchStart                  // a finger touched the surface
	InputTouchMove                   // a finger moved
	InputTouchEnd                    // a finger lifted
	InputNavigate                    // step to a neighbouring image (keyboard)

	inputTypeCount
)

// InputEvent is one raw input occurrence in client coordinates.
type InputEvent struct {
	Type      InputType
	PointerID int // 0 = mouse, 1-9 = touch slots
	X, Y      float64
	// Step is +1 or -1 for InputNavigate.
	Step int
}

// Pos returns the event position as a vector.
func (e InputEvent) Pos() Vec2 {
	return Vec2{e.X, e.Y}
}

type inputHandler struct {
	id uint32
	fn func(InputEvent)
}

// EventBus is a registry of input handlers keyed by InputType, plus a queue
// of synthetic events used for scripted input.
type EventBus struct {
	handlers    [inputTypeCount][]inputHandler
	nextID      uint32
	injectQueue []InputEvent
}

// CallbackHandle allows removing a registered handler.
type CallbackHandle struct {
	id  uint32
	bus *EventBus
	typ InputType
}

// Remove unregisters the handler. Removing twice is a no-op.
func (h CallbackHandle) Remove() {
	if h.bus == nil || h.typ >= inputTypeCount {
		return
	}
	s := h.bus.handlers[h.typ]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = inputHandler{}
			h.bus.handlers[h.typ] = s[:len(s)-1]
			return
		}
	}
}

// On registers fn for events of type t.
func (b *EventBus) On(t InputType, fn func(InputEvent)) CallbackHandle {
	b.nextID++
	id := b.nextID
	b.handlers[t] = append(b.handlers[t], inputHandler{id: id, fn: fn})
	return CallbackHandle{id: id, bus: b, typ: t}
}

// HandlerCount returns the number of handlers registered for t.
func (b *EventBus) HandlerCount(t InputType) int {
	if t >= inputTypeCount {
		return 0
	}
	return len(b.handlers[t])
}

// Dispatch delivers ev to the handlers registered when dispatch starts, in
// registration order. Handlers may register or remove handlers; changes take
// effect from the next dispatch.
func (b *EventBus) Dispatch(ev InputEvent) {
	if ev.Type >= inputTypeCount {
		return
	}
	for _, h := range slices.Clone(b.handlers[ev.Type]) {
		h.fn(ev)
	}
}
