package carousel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayRefresh is how often the overlay text is redrawn, in ticks.
const overlayRefresh = 30

// overlay is a small debug panel showing FPS, TPS and the scroll position.
type overlay struct {
	img   *ebiten.Image
	ticks int
}

// overlayText formats the overlay contents.
func overlayText(fps, tps, offset float64, index, count int) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nOffset: %.0f\nImage: %d/%d", fps, tps, offset, index+1, count)
}

// drawOverlay draws the debug panel in the top-left corner of screen.
func (c *Carousel) drawOverlay(screen *ebiten.Image) {
	o := &c.overlay
	if o.img == nil {
		// 120x64 fits four lines of debug text.
		o.img = ebiten.NewImage(120, 64)
		o.ticks = overlayRefresh
	}
	o.ticks++
	if o.ticks >= overlayRefresh {
		o.ticks = 0
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), c.Offset(), c.Index(), c.Len()))
	}
	screen.DrawImage(o.img, nil)
}
