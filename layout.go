package carousel

import (
	"fmt"
	"image"
	"math"
)

// ImageDescriptor identifies a remote image and its natural size.
type ImageDescriptor struct {
	URL           string  `json:"url" toml:"url"`
	NaturalWidth  float64 `json:"width" toml:"width"`
	NaturalHeight float64 `json:"height" toml:"height"`

	// remote is set for descriptors read from an http(s) document. Their
	// URLs may not name local files.
	remote bool
}

// Handle is a decoded image ready to be drawn. *ebiten.Image satisfies it.
type Handle interface {
	Bounds() image.Rectangle
}

// ImageEntry is one slot of the carousel. Index is its display position and
// never changes. Handle stays nil until the image has been decoded; Failed
// entries are never drawn.
type ImageEntry struct {
	Descriptor ImageDescriptor
	Handle     Handle
	Index      int
	Failed     bool
}

// drawable reports whether the entry has a decoded image to draw.
func (e *ImageEntry) drawable() bool {
	return e != nil && e.Handle != nil && !e.Failed
}

// Viewport is the visible area of the drawing surface.
type Viewport struct {
	Width, Height float64
}

// NewViewport returns a viewport or ErrInvalidViewport when either dimension
// is not strictly positive.
func NewViewport(width, height float64) (Viewport, error) {
	vp := Viewport{Width: width, Height: height}
	if !vp.valid() {
		return Viewport{}, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, width, height)
	}
	return vp, nil
}

func (v Viewport) valid() bool {
	return v.Width > 0 && v.Height > 0 && !math.IsInf(v.Width, 0) && !math.IsInf(v.Height, 0)
}

// AxisExtent returns the viewport width for Horizontal and height for Vertical.
func (v Viewport) AxisExtent(dir Direction) float64 {
	if dir == Horizontal {
		return v.Width
	}
	return v.Height
}

// Bounds returns the viewport as a rectangle at the origin.
func (v Viewport) Bounds() Rect {
	return Rect{Width: v.Width, Height: v.Height}
}

// PlacedImage is where one entry is drawn for a given scroll offset.
// It is recomputed on every repaint and never stored.
type PlacedImage struct {
	Entry  *ImageEntry
	X, Y   float64
	Width  float64
	Height float64
}

// Rect returns the placement as a rectangle.
func (p PlacedImage) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Place computes the draw rectangle of entry in slot index.
//
// Images no wider than the viewport are aspect-fit into it and centered in
// their slot, whose origin along the active axis is index*axisExtent + offset.
// Wider images are drawn at natural size, centered at index*axisExtent; the
// offset does not move them. Both are centered on the cross axis.
//
// Place panics on an invalid viewport.
func Place(entry *ImageEntry, index int, vp Viewport, dir Direction, offset float64) PlacedImage {
	if !vp.valid() {
		panic(fmt.Sprintf("carousel: Place with invalid viewport %vx%v", vp.Width, vp.Height))
	}
	p := PlacedImage{Entry: entry}
	if entry == nil {
		return p
	}
	nw, nh := entry.Descriptor.NaturalWidth, entry.Descriptor.NaturalHeight
	if nw <= 0 || nh <= 0 {
		return p
	}

	slot := float64(index) * vp.AxisExtent(dir)
	if nw > vp.Width {
		// Natural size, pinned to its slot regardless of the scroll offset.
		p.Width, p.Height = nw, nh
	} else {
		aspect := math.Min(vp.Width/nw, vp.Height/nh)
		p.Width, p.Height = nw*aspect, nh*aspect
		slot += offset
	}

	if dir == Horizontal {
		p.X = slot + (vp.Width-p.Width)/2
		p.Y = (vp.Height - p.Height) / 2
	} else {
		p.X = (vp.Width - p.Width) / 2
		p.Y = slot + (vp.Height-p.Height)/2
	}
	return p
}
