package carousel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is a 2D immediate-mode drawing target.
type Surface interface {
	// Clear erases the entire surface.
	Clear()
	// DrawImage draws img scaled into the rectangle (x, y, w, h).
	DrawImage(img Handle, x, y, w, h float64)
}

// Renderer repaints a surface from carousel state. It keeps no state
// between repaints other than its settings.
type Renderer struct {
	// CullEnabled skips drawing placements that don't intersect the
	// viewport. Every drawable entry is still placed.
	CullEnabled bool
	// Debug logs per-repaint statistics at debug level.
	Debug bool
}

// Repaint clears dst, then places and draws every decoded entry in index
// order. Entries that are still loading or have failed are skipped. It
// returns the placements computed for this repaint.
func (r *Renderer) Repaint(dst Surface, entries []*ImageEntry, vp Viewport, dir Direction, offset float64) []PlacedImage {
	var stats repaintStats
	var t0 time.Time
	if r.Debug {
		t0 = time.Now()
	}

	dst.Clear()

	var placed []PlacedImage
	view := vp.Bounds()
	for _, e := range entries {
		if !e.drawable() {
			stats.skipped++
			continue
		}
		p := Place(e, e.Index, vp, dir, offset)
		placed = append(placed, p)
		if p.Width <= 0 || p.Height <= 0 {
			stats.skipped++
			continue
		}
		if r.CullEnabled && !p.Rect().Intersects(view) {
			stats.culled++
			continue
		}
		dst.DrawImage(e.Handle, p.X, p.Y, p.Width, p.Height)
		stats.drawn++
	}

	if r.Debug {
		stats.placed = len(placed)
		stats.elapsed = time.Since(t0)
		stats.offset = offset
		stats.log()
	}
	return placed
}

// --- Ebitengine surface ---

type ebitenSurface struct {
	dst *ebiten.Image
}

// NewEbitenSurface adapts an ebiten image as a Surface. Handles drawn onto it
// must be *ebiten.Image; other handles are skipped.
func NewEbitenSurface(dst *ebiten.Image) Surface {
	return &ebitenSurface{dst: dst}
}

func (s *ebitenSurface) Clear() {
	s.dst.Clear()
}

func (s *ebitenSurface) DrawImage(img Handle, x, y, w, h float64) {
	src, ok := img.(*ebiten.Image)
	if !ok || src == nil {
		return
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(src, op)
}
