package carousel

import (
	"context"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultWindowWidth  = 640
	defaultWindowHeight = 480
)

// Run opens a window, starts loading cfg's images and blocks running the
// carousel until the window is closed. For full control, create a Carousel
// with New and pass it to ebiten.RunGame yourself.
func Run(cfg Config) error {
	return RunWithScript(cfg, nil)
}

// RunWithScript is Run with a scripted test runner attached. script may be
// nil. Scripted input is injected through the ebiten host and takes
// priority over real input while queued.
func RunWithScript(cfg Config, script *TestRunner) error {
	w, h := defaultWindowWidth, defaultWindowHeight
	if d := cfg.Dimensions; d != nil {
		w, h = int(math.Ceil(d.Width)), int(math.Ceil(d.Height))
	}
	title := cfg.Element
	if title == "" {
		title = DefaultConfig().Element
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	host := NewEbitenHost()
	host.SetSize(float64(w), float64(h))

	c, err := New(cfg, host)
	if err != nil {
		return fmt.Errorf("carousel: %w", err)
	}
	defer c.Close()
	if script != nil {
		c.SetTestRunner(script)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Load(ctx)

	return ebiten.RunGame(c)
}
