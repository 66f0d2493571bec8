package carousel

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the carousel canvas. It is taken
// during the next Draw and written to ScreenshotDir as a timestamped PNG.
func (c *Carousel) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// flushScreenshots writes every queued capture. Captures need the owned
// canvas; with an injected surface they are dropped.
func (c *Carousel) flushScreenshots() {
	if len(c.screenshotQueue) == 0 {
		return
	}
	defer func() { c.screenshotQueue = c.screenshotQueue[:0] }()

	if c.canvas == nil {
		Logger().Warn("screenshot: no canvas to capture", slog.Int("queued", len(c.screenshotQueue)))
		return
	}
	if err := os.MkdirAll(c.ScreenshotDir, 0o755); err != nil {
		Logger().Error("screenshot: mkdir", slog.String("dir", c.ScreenshotDir), slog.Any("err", err))
		return
	}

	img := capture(c.canvas)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range c.screenshotQueue {
		path := filepath.Join(c.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			Logger().Error("screenshot", slog.Any("err", err))
			continue
		}
		Logger().Info("screenshot written", slog.String("path", path))
	}
}

// capture reads src back as a straight-alpha image.
func capture(src *ebiten.Image) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	src.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

// unpremultiply converts premultiplied RGBA bytes to NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
