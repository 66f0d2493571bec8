package carousel

import (
	"image"
	"testing"
)

type fakeHandle struct{ w, h int }

func (f fakeHandle) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }

type drawCall struct {
	img        Handle
	x, y, w, h float64
}

// recordSurface keeps the draw calls made since the last Clear.
type recordSurface struct {
	clears int
	draws  []drawCall
}

func (s *recordSurface) Clear() {
	s.clears++
	s.draws = s.draws[:0]
}

func (s *recordSurface) DrawImage(img Handle, x, y, w, h float64) {
	s.draws = append(s.draws, drawCall{img, x, y, w, h})
}

func loadedEntries(sizes ...[2]float64) []*ImageEntry {
	entries := make([]*ImageEntry, len(sizes))
	for i, s := range sizes {
		entries[i] = &ImageEntry{
			Descriptor: ImageDescriptor{NaturalWidth: s[0], NaturalHeight: s[1]},
			Handle:     fakeHandle{int(s[0]), int(s[1])},
			Index:      i,
		}
	}
	return entries
}

func TestRepaintEmpty(t *testing.T) {
	var r Renderer
	dst := &recordSurface{}
	placed := r.Repaint(dst, nil, Viewport{640, 300}, Horizontal, 0)
	if dst.clears != 1 {
		t.Errorf("clears = %d, want 1", dst.clears)
	}
	if len(dst.draws) != 0 || len(placed) != 0 {
		t.Errorf("draws = %d placed = %d, want 0", len(dst.draws), len(placed))
	}
}

func TestRepaintDrawsInIndexOrder(t *testing.T) {
	r := Renderer{}
	dst := &recordSurface{}
	entries := loadedEntries([2]float64{400, 200}, [2]float64{320, 100}, [2]float64{640, 300})
	placed := r.Repaint(dst, entries, Viewport{640, 300}, Horizontal, 0)

	if len(placed) != 3 || len(dst.draws) != 3 {
		t.Fatalf("placed = %d draws = %d, want 3 3", len(placed), len(dst.draws))
	}
	for i, d := range dst.draws {
		if d.img != entries[i].Handle {
			t.Errorf("draw %d used handle of another entry", i)
		}
	}
	if d := dst.draws[1]; d.x != 640 || d.y != 50 || d.w != 640 || d.h != 200 {
		t.Errorf("draw 1 = %+v, want (640, 50, 640, 200)", d)
	}
}

func TestRepaintSkipsPendingAndFailed(t *testing.T) {
	r := Renderer{}
	dst := &recordSurface{}
	entries := loadedEntries([2]float64{100, 100}, [2]float64{100, 100}, [2]float64{100, 100})
	entries[0].Handle = nil
	entries[1].Failed = true

	placed := r.Repaint(dst, entries, Viewport{640, 300}, Horizontal, 0)
	if len(placed) != 1 || placed[0].Entry != entries[2] {
		t.Fatalf("placed = %+v, want only entry 2", placed)
	}
	// Failed entries keep their slot.
	if !approxEqual(placed[0].X, 2*640+170, epsilon) {
		t.Errorf("entry 2 x = %v, want %v", placed[0].X, 2*640+170)
	}
}

func TestRepaintCulling(t *testing.T) {
	entries := loadedEntries([2]float64{400, 200}, [2]float64{400, 200}, [2]float64{400, 200})
	vp := Viewport{640, 300}

	r := Renderer{CullEnabled: true}
	dst := &recordSurface{}
	placed := r.Repaint(dst, entries, vp, Horizontal, -640)
	if len(placed) != 3 {
		t.Errorf("culling must not change placement: placed = %d, want 3", len(placed))
	}
	if len(dst.draws) != 1 || dst.draws[0].img != entries[1].Handle {
		t.Errorf("draws = %+v, want only entry 1", dst.draws)
	}

	r.CullEnabled = false
	r.Repaint(dst, entries, vp, Horizontal, -640)
	if len(dst.draws) != 3 {
		t.Errorf("draws without culling = %d, want 3", len(dst.draws))
	}
}

func TestRepaintSkipsZeroSize(t *testing.T) {
	entries := loadedEntries([2]float64{0, 100}, [2]float64{100, 100})
	dst := &recordSurface{}
	var r Renderer
	r.Repaint(dst, entries, Viewport{640, 300}, Vertical, 0)
	if len(dst.draws) != 1 {
		t.Errorf("draws = %d, want 1", len(dst.draws))
	}
}

func TestEbitenSurfaceSkipsForeignHandles(t *testing.T) {
	s := &ebitenSurface{}
	// A non-ebiten handle is ignored before the destination is touched.
	s.DrawImage(fakeHandle{10, 10}, 0, 0, 10, 10)
}
