package carousel

import (
	"context"
	"log/slog"
	"time"
)

// repaintStats holds per-repaint metrics. Only populated when
// Renderer.Debug is true.
type repaintStats struct {
	placed  int
	drawn   int
	culled  int
	skipped int
	offset  float64
	elapsed time.Duration
}

// log writes the stats at debug level.
func (s repaintStats) log() {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("repaint",
		slog.Float64("offset", s.offset),
		slog.Int("placed", s.placed),
		slog.Int("drawn", s.drawn),
		slog.Int("culled", s.culled),
		slog.Int("skipped", s.skipped),
		slog.Duration("elapsed", s.elapsed))
}
