package carousel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// Host is the environment a carousel lives in: it knows the available size,
// where the surface sits in client coordinates, and delivers input events.
type Host interface {
	// Size returns the size the viewport follows when no explicit
	// dimensions are configured.
	Size() (width, height float64)
	// BoundingBox returns the surface rectangle in client coordinates.
	BoundingBox() Rect
	// On registers a handler for one input type.
	On(t InputType, fn func(InputEvent)) CallbackHandle
}

// poller is implemented by hosts that gather input once per tick.
type poller interface {
	Poll()
}

// injector is implemented by hosts that accept synthetic input.
type injector interface {
	InjectPress(x, y float64)
	InjectMove(x, y float64)
	InjectRelease(x, y float64)
	InjectDrag(fromX, fromY, toX, toY float64, frames int)
	InjectTouchStart(slot int, x, y float64)
	InjectTouchMove(slot int, x, y float64)
	InjectTouchEnd(slot int, x, y float64)
	InjectNavigate(step int)
	Pending() int
}

// --- StaticHost ---

// StaticHost is a headless host with a fixed size. Input arrives through
// Dispatch or the Inject* queue (drained one event per Poll).
type StaticHost struct {
	EventBus
	Width, Height float64
	// Box is the surface rectangle in client coordinates. Zero means
	// (0, 0, Width, Height).
	Box Rect
}

// NewStaticHost returns a headless host of the given size.
func NewStaticHost(width, height float64) *StaticHost {
	return &StaticHost{Width: width, Height: height}
}

// Size implements Host.
func (h *StaticHost) Size() (float64, float64) {
	return h.Width, h.Height
}

// BoundingBox implements Host.
func (h *StaticHost) BoundingBox() Rect {
	if h.Box == (Rect{}) {
		return Rect{Width: h.Width, Height: h.Height}
	}
	return h.Box
}

// Poll dispatches at most one queued synthetic event.
func (h *StaticHost) Poll() {
	h.processInjected()
}

// --- EbitenHost ---

// EbitenHost polls Ebitengine mouse, touch and keyboard state once per tick
// and turns state changes into input events. The surface is drawn at the
// screen origin, so client and screen coordinates coincide.
type EbitenHost struct {
	EventBus

	width, height float64
	box           Rect

	mouseSeen   bool
	mouseInside bool
	lastMouse   Vec2

	touchIDs  []ebiten.TouchID
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchLast [maxPointers]Vec2
}

// NewEbitenHost returns a host sized to the current window.
func NewEbitenHost() *EbitenHost {
	w, h := ebiten.WindowSize()
	return &EbitenHost{width: float64(w), height: float64(h)}
}

// Size implements Host.
func (h *EbitenHost) Size() (float64, float64) {
	return h.width, h.height
}

// SetSize records the outside size reported by ebiten's Layout.
func (h *EbitenHost) SetSize(width, height float64) {
	h.width, h.height = width, height
}

// BoundingBox implements Host.
func (h *EbitenHost) BoundingBox() Rect {
	if h.box == (Rect{}) {
		return Rect{Width: h.width, Height: h.height}
	}
	return h.box
}

// SetBoundingBox sets the surface rectangle in screen coordinates.
func (h *EbitenHost) SetBoundingBox(box Rect) {
	h.box = box
}

// Poll consumes one injected event if any are queued; otherwise it reads
// real mouse, touch and keyboard input.
func (h *EbitenHost) Poll() {
	if h.processInjected() {
		return
	}
	h.pollMouse()
	h.pollTouches()
	h.pollKeys()
}

// pollMouse handles the mouse (pointer 0).
func (h *EbitenHost) pollMouse() {
	mx, my := ebiten.CursorPosition()
	p := Vec2{float64(mx), float64(my)}
	inside := h.BoundingBox().Contains(p.X, p.Y)

	if h.mouseSeen && p != h.lastMouse {
		h.Dispatch(InputEvent{Type: InputMouseMove, PointerID: mousePointerID, X: p.X, Y: p.Y})
	}
	if h.mouseSeen && h.mouseInside && !inside {
		h.Dispatch(InputEvent{Type: InputMouseLeave, PointerID: mousePointerID, X: p.X, Y: p.Y})
	}
	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.Dispatch(InputEvent{Type: InputMouseDown, PointerID: mousePointerID, X: p.X, Y: p.Y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		h.Dispatch(InputEvent{Type: InputMouseUp, PointerID: mousePointerID, X: p.X, Y: p.Y})
	}

	h.mouseSeen = true
	h.mouseInside = inside
	h.lastMouse = p
}

// pollTouches handles touches (pointers 1-9).
func (h *EbitenHost) pollTouches() {
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])

	var active [maxPointers]bool
	for _, tid := range h.touchIDs {
		slot, fresh := h.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		p := Vec2{float64(tx), float64(ty)}
		switch {
		case fresh:
			h.Dispatch(InputEvent{Type: InputTouchStart, PointerID: slot, X: p.X, Y: p.Y})
		case p != h.touchLast[slot]:
			h.Dispatch(InputEvent{Type: InputTouchMove, PointerID: slot, X: p.X, Y: p.Y})
		}
		h.touchLast[slot] = p
	}

	// Lifted fingers end at their last known position.
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !active[i] {
			last := h.touchLast[i]
			h.Dispatch(InputEvent{Type: InputTouchEnd, PointerID: i, X: last.X, Y: last.Y})
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// touchSlot maps a TouchID to a pointer slot (1-9), allocating a new one when
// needed. fresh is true for a new allocation. Returns -1 if all are in use.
func (h *EbitenHost) touchSlot(tid ebiten.TouchID) (slot int, fresh bool) {
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}

// pollKeys turns arrow keys into navigation steps.
func (h *EbitenHost) pollKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		h.Dispatch(InputEvent{Type: InputNavigate, Step: 1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		h.Dispatch(InputEvent{Type: InputNavigate, Step: -1})
	}
}
