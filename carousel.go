package carousel

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// descriptorResult carries the resolved descriptor list back to the game loop.
type descriptorResult struct {
	descs []ImageDescriptor
	err   error
}

// Carousel wires pointer input to scroll state and repaints its surface on
// every state change. It implements ebiten.Game. All methods must be called
// from the game goroutine.
type Carousel struct {
	cfg           Config
	host          Host
	dir           Direction
	vp            Viewport
	fixedViewport bool

	entries  []*ImageEntry
	scroll   *ScrollState
	tracker  *PointerTracker
	renderer Renderer

	surface Surface
	canvas  *ebiten.Image // owned offscreen surface; nil when a surface was injected

	store     EventStore
	newHandle func(image.Image) Handle

	loader  *Loader
	loadCtx context.Context
	descCh  chan descriptorResult
	results <-chan LoadResult
	loaded  int
	failed  int

	// Bound once so the exact same funcs are registered and removed.
	onDown     func(InputEvent)
	onMove     func(InputEvent)
	onEnd      func(InputEvent)
	onNavigate func(InputEvent)

	handles        []CallbackHandle
	gestureHandles []CallbackHandle

	dirty    bool
	repaints int

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string
	testRunner      *TestRunner
	showFPS         bool
	overlay         overlay
}

// New creates a carousel for cfg inside host. The viewport is
// cfg.Dimensions, or the host size when no dimensions are configured.
// Images are not fetched until Load is called.
func New(cfg Config, host Host) (*Carousel, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dir, _ := ParseDirection(cfg.Direction)

	var (
		vp    Viewport
		err   error
		fixed = cfg.Dimensions != nil
	)
	if fixed {
		vp, err = NewViewport(cfg.Dimensions.Width, cfg.Dimensions.Height)
	} else {
		vp, err = NewViewport(host.Size())
	}
	if err != nil {
		return nil, err
	}

	c := &Carousel{
		cfg:           cfg,
		host:          host,
		dir:           dir,
		vp:            vp,
		fixedViewport: fixed,
		scroll:        NewScrollState(0, vp.AxisExtent(dir)),
		tracker:       NewPointerTracker(dir),
		renderer:      Renderer{CullEnabled: true, Debug: cfg.Debug},
		loader:        NewLoader(HTTPFetcher{}, cfg.Concurrency, cfg.MaxTextureSide),
		newHandle:     newEbitenHandle,
		dirty:         true,
		ScreenshotDir: cfg.ScreenshotDir,
		showFPS:       cfg.ShowFPS,
	}
	c.onDown = c.handlePointerDown
	c.onMove = c.handlePointerMove
	c.onEnd = c.handlePointerEnd
	c.onNavigate = c.handleNavigate

	c.handles = append(c.handles,
		host.On(InputMouseDown, c.onDown),
		host.On(InputTouchStart, c.onDown),
		host.On(InputNavigate, c.onNavigate),
	)
	return c, nil
}

func newEbitenHandle(img image.Image) Handle {
	return ebiten.NewImageFromImage(img)
}

// SetSurface replaces the offscreen ebiten canvas with s.
func (c *Carousel) SetSurface(s Surface) {
	c.releaseCanvas()
	c.surface = s
	c.dirty = true
}

// SetEventStore sets the optional event consumer.
func (c *Carousel) SetEventStore(store EventStore) {
	c.store = store
}

// SetLoader replaces the default HTTP loader.
func (c *Carousel) SetLoader(l *Loader) {
	c.loader = l
}

// SetHandleFactory sets how decoded images become drawable handles. The
// default uploads them with ebiten.NewImageFromImage.
func (c *Carousel) SetHandleFactory(fn func(image.Image) Handle) {
	c.newHandle = fn
}

// Viewport returns the current viewport.
func (c *Carousel) Viewport() Viewport { return c.vp }

// Direction returns the scroll direction.
func (c *Carousel) Direction() Direction { return c.dir }

// Offset returns the current scroll offset.
func (c *Carousel) Offset() float64 { return c.scroll.Offset() }

// Index returns the image slot nearest to the current offset.
func (c *Carousel) Index() int { return c.scroll.Index() }

// Len returns the number of image slots, including ones still loading.
func (c *Carousel) Len() int { return len(c.entries) }

// Dragging reports whether a gesture is in progress.
func (c *Carousel) Dragging() bool { return c.tracker.Dragging() }

// Repaints returns how many times the surface has been repainted.
func (c *Carousel) Repaints() int { return c.repaints }

// Entry returns the entry at index, or nil.
func (c *Carousel) Entry(index int) *ImageEntry {
	if index < 0 || index >= len(c.entries) {
		return nil
	}
	return c.entries[index]
}

// AddImages appends descriptors as new entries in order. The image count
// changes, so the scroll offset is reset and an active gesture is cancelled.
func (c *Carousel) AddImages(descs []ImageDescriptor) {
	c.cancelGesture()
	for _, d := range descs {
		c.entries = append(c.entries, &ImageEntry{Descriptor: d, Index: len(c.entries)})
	}
	c.scroll.SetBounds(len(c.entries), c.vp.AxisExtent(c.dir))
	c.dirty = true
}

// SetViewport changes the viewport, resets the scroll offset and schedules a
// repaint. An active gesture is cancelled since its anchor no longer
// applies.
func (c *Carousel) SetViewport(vp Viewport) error {
	if !vp.valid() {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, vp.Width, vp.Height)
	}
	c.cancelGesture()
	c.vp = vp
	c.scroll.SetBounds(len(c.entries), vp.AxisExtent(c.dir))
	c.dirty = true
	return nil
}

// Load resolves the configured data source and starts decoding images in
// the background. Results are applied during Update. With no data source the
// carousel stays empty.
func (c *Carousel) Load(ctx context.Context) {
	if c.cfg.Data.Empty() {
		Logger().Info("no data source configured", slog.String("element", c.cfg.Element))
		return
	}
	ch := make(chan descriptorResult, 1)
	c.descCh = ch
	c.loadCtx = ctx
	loader, data := c.loader, c.cfg.Data
	go func() {
		descs, err := loader.Descriptors(ctx, data)
		ch <- descriptorResult{descs: descs, err: err}
	}()
}

// Loading reports whether descriptors or images are still in flight.
func (c *Carousel) Loading() bool {
	return c.descCh != nil || c.results != nil
}

// Next slides to the following image.
func (c *Carousel) Next() { c.SlideTo(c.scroll.Index() + 1) }

// Prev slides to the preceding image.
func (c *Carousel) Prev() { c.SlideTo(c.scroll.Index() - 1) }

// SlideTo animates to the image at index over Config.Speed milliseconds.
// Ignored while a drag is in progress.
func (c *Carousel) SlideTo(index int) {
	if c.tracker.Dragging() {
		return
	}
	c.scroll.SlideTo(index, float32(c.cfg.Speed/1000), ease.OutCubic)
	if !c.scroll.Sliding() {
		c.scrolled()
	}
}

// Repaint clears the surface and draws every decoded image at its current
// placement.
func (c *Carousel) Repaint() {
	if !c.ensureSurface() {
		return
	}
	c.renderer.Repaint(c.surface, c.entries, c.vp, c.dir, c.scroll.Offset())
	c.repaints++
	c.dirty = false
}

// Close unregisters every input handler and releases the canvas.
func (c *Carousel) Close() {
	c.tracker.Cancel()
	c.endGesture()
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = nil
	c.releaseCanvas()
	if c.overlay.img != nil {
		c.overlay.img.Deallocate()
		c.overlay.img = nil
	}
}

// --- ebiten.Game ---

// Update applies finished loads, polls input, advances slide animations and
// repaints if anything changed.
func (c *Carousel) Update() error {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.pump()
	if p, ok := c.host.(poller); ok {
		p.Poll()
	}
	if _, ok := c.scroll.step(float32(1.0 / float64(ebiten.TPS()))); ok {
		c.scrolled()
	}
	c.syncViewport()
	if c.dirty {
		c.Repaint()
	}
	return nil
}

// Draw blits the canvas to the screen, then draws the optional overlay and
// captures queued screenshots.
func (c *Carousel) Draw(screen *ebiten.Image) {
	if c.canvas != nil {
		screen.DrawImage(c.canvas, nil)
	}
	if c.showFPS {
		c.drawOverlay(screen)
	}
	c.flushScreenshots()
}

// Layout implements ebiten.Game. With fixed dimensions the logical screen is
// the viewport and ebiten scales it to the window.
func (c *Carousel) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h, ok := c.host.(*EbitenHost); ok {
		h.SetSize(float64(outsideWidth), float64(outsideHeight))
	}
	if c.fixedViewport {
		return int(math.Ceil(c.vp.Width)), int(math.Ceil(c.vp.Height))
	}
	return outsideWidth, outsideHeight
}

// --- input handlers ---

func (c *Carousel) handlePointerDown(ev InputEvent) {
	local := clientToLocal(ev.Pos(), c.host.BoundingBox(), c.vp)
	if !c.tracker.Begin(ev.PointerID, local, c.scroll.Offset()) {
		return
	}
	c.scroll.CancelSlide()

	if ev.Type == InputTouchStart {
		c.gestureHandles = append(c.gestureHandles[:0],
			c.host.On(InputTouchMove, c.onMove),
			c.host.On(InputTouchEnd, c.onEnd),
		)
	} else {
		c.gestureHandles = append(c.gestureHandles[:0],
			c.host.On(InputMouseMove, c.onMove),
			c.host.On(InputMouseUp, c.onEnd),
			c.host.On(InputMouseLeave, c.onEnd),
		)
	}
	c.emit(Event{Type: EventGestureStart, Offset: c.scroll.Offset(), Index: c.scroll.Index()})
}

func (c *Carousel) handlePointerMove(ev InputEvent) {
	local := clientToLocal(ev.Pos(), c.host.BoundingBox(), c.vp)
	raw, ok := c.tracker.Move(ev.PointerID, local)
	if !ok {
		return
	}
	c.scroll.Update(raw)
	c.scrolled()
}

func (c *Carousel) handlePointerEnd(ev InputEvent) {
	if !c.tracker.End(ev.PointerID) {
		return
	}
	c.endGesture()
}

func (c *Carousel) handleNavigate(ev InputEvent) {
	if ev.Step == 0 {
		return
	}
	c.SlideTo(c.scroll.Index() + ev.Step)
}

// cancelGesture drops an active gesture whose anchor offset is about to
// become invalid.
func (c *Carousel) cancelGesture() {
	if c.tracker.Dragging() {
		c.tracker.Cancel()
		c.endGesture()
	}
}

// endGesture removes the gesture's move and end handlers.
func (c *Carousel) endGesture() {
	if len(c.gestureHandles) == 0 {
		return
	}
	for _, h := range c.gestureHandles {
		h.Remove()
	}
	c.gestureHandles = c.gestureHandles[:0]
	c.emit(Event{Type: EventGestureEnd, Offset: c.scroll.Offset(), Index: c.scroll.Index()})
}

// scrolled repaints and notifies after a scroll update.
func (c *Carousel) scrolled() {
	c.Repaint()
	c.emit(Event{Type: EventScroll, Offset: c.scroll.Offset(), Index: c.scroll.Index()})
}

// --- loading ---

// pump applies whatever the loader has finished without blocking.
func (c *Carousel) pump() {
	if c.descCh != nil {
		select {
		case r := <-c.descCh:
			c.descCh = nil
			c.applyDescriptors(r)
		default:
		}
	}
	for c.results != nil {
		select {
		case res, ok := <-c.results:
			if !ok {
				c.results = nil
				Logger().Info("images loaded",
					slog.Int("loaded", c.loaded),
					slog.Int("failed", c.failed),
					slog.Int("total", len(c.entries)))
				return
			}
			c.applyResult(res)
		default:
			return
		}
	}
}

func (c *Carousel) applyDescriptors(r descriptorResult) {
	if r.err != nil {
		Logger().Warn("data source failed",
			slog.String("url", c.cfg.Data.URL),
			slog.Any("err", r.err))
		c.emit(Event{Type: EventImageFailed, Index: -1, URL: c.cfg.Data.URL, Err: r.err})
		return
	}
	start := len(c.entries)
	c.AddImages(r.descs)
	Logger().Info("descriptors resolved", slog.Int("count", len(r.descs)))

	// Load indexes are relative to the batch.
	results := make(chan LoadResult, len(r.descs))
	src := c.loader.Load(c.loadCtx, r.descs)
	go func() {
		for res := range src {
			res.Index += start
			if le, ok := res.Err.(*LoadError); ok {
				le.Index = res.Index
			}
			results <- res
		}
		close(results)
	}()
	c.results = results
}

func (c *Carousel) applyResult(res LoadResult) {
	e := c.Entry(res.Index)
	if e == nil {
		return
	}
	if res.Err != nil {
		e.Failed = true
		c.failed++
		Logger().Warn("image load failed",
			slog.Int("index", res.Index),
			slog.String("url", e.Descriptor.URL),
			slog.Any("err", res.Err))
		c.emit(Event{Type: EventImageFailed, Index: res.Index, URL: e.Descriptor.URL, Err: res.Err})
		return
	}
	e.Handle = c.newHandle(res.Image)
	if e.Descriptor.NaturalWidth <= 0 || e.Descriptor.NaturalHeight <= 0 {
		e.Descriptor.NaturalWidth = float64(res.Width)
		e.Descriptor.NaturalHeight = float64(res.Height)
	}
	c.loaded++
	c.dirty = true
	c.emit(Event{Type: EventImageLoaded, Index: res.Index, URL: e.Descriptor.URL})
}

// awaitLoad blocks until every in-flight load has been applied.
func (c *Carousel) awaitLoad() {
	if c.descCh != nil {
		r := <-c.descCh
		c.descCh = nil
		c.applyDescriptors(r)
	}
	for c.results != nil {
		res, ok := <-c.results
		if !ok {
			c.results = nil
			break
		}
		c.applyResult(res)
	}
}

// --- surface ---

// syncViewport follows host size changes when no dimensions are fixed.
func (c *Carousel) syncViewport() {
	if c.fixedViewport {
		return
	}
	w, h := c.host.Size()
	if w == c.vp.Width && h == c.vp.Height {
		return
	}
	if vp, err := NewViewport(w, h); err == nil {
		_ = c.SetViewport(vp)
	}
}

// ensureSurface creates or resizes the owned canvas. It returns false when
// there is nothing to draw on.
func (c *Carousel) ensureSurface() bool {
	if c.surface != nil && c.canvas == nil {
		return true
	}
	w, h := int(math.Ceil(c.vp.Width)), int(math.Ceil(c.vp.Height))
	if c.canvas != nil {
		b := c.canvas.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return true
		}
		c.releaseCanvas()
	}
	if w <= 0 || h <= 0 {
		return false
	}
	c.canvas = ebiten.NewImage(w, h)
	c.surface = NewEbitenSurface(c.canvas)
	return true
}

func (c *Carousel) releaseCanvas() {
	if c.canvas == nil {
		return
	}
	c.canvas.Deallocate()
	c.canvas = nil
	c.surface = nil
}

func (c *Carousel) emit(ev Event) {
	if c.store != nil {
		c.store.EmitEvent(ev)
	}
}
