package carousel

import "math"

// Vec2 is a 2D vector used for pointer positions and drag displacements.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Direction selects the axis images are laid out and scrolled along.
type Direction uint8

const (
	Vertical   Direction = iota // images stack top to bottom; drag on Y
	Horizontal                  // images sit side by side; drag on X
)

// String returns the configuration spelling of the direction.
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// axis returns the component of v along the direction's active axis.
func (d Direction) axis(v Vec2) float64 {
	if d == Horizontal {
		return v.X
	}
	return v.Y
}

// EventType identifies a carousel notification delivered to an EventStore.
type EventType uint8

const (
	EventScroll       EventType = iota // fires after every accepted scroll update
	EventGestureStart                  // fires when a drag gesture begins
	EventGestureEnd                    // fires when a drag gesture ends
	EventImageLoaded                   // fires when an image becomes drawable
	EventImageFailed                   // fires when an image fails to load
)

// Event carries carousel state changes to an EventStore.
type Event struct {
	Type   EventType
	Offset float64
	Index  int
	URL    string
	Err    error
}

// EventStore is the interface for optional event consumers (ECS bridges,
// analytics, tests). When set on a Carousel, notifications are forwarded to it.
type EventStore interface {
	EmitEvent(event Event)
}

// clamp restricts a value to [lo, hi].
func clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(value, hi))
}
