// Package carousel is a draggable image carousel for [Ebitengine].
//
// A carousel shows an ordered list of images along one axis. Each image gets
// a slot exactly one viewport long; images are aspect-fit and centered in
// their slot. Dragging with the mouse or a finger scrolls the strip, clamped
// so it never scrolls before the first image or past the last. Arrow keys
// slide one image at a time with a short tween (via [gween]).
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg, err := carousel.LoadConfig("carousel.toml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := carousel.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, create a [Carousel] and run it as an [ebiten.Game]:
//
//	c, err := carousel.New(cfg, carousel.NewEbitenHost())
//	if err != nil {
//		log.Fatal(err)
//	}
//	c.Load(ctx)
//	err = ebiten.RunGame(c)
//
// # Configuration
//
// [Config] is read from TOML. The data source is either a JSON document
// fetched from data.url, shaped as
//
//	{"dogs": {"a": {"url": "a.jpg", "width": 800, "height": 400}, ...}}
//
// where key order is image order, or an inline data.images list. Without
// dimensions the viewport follows the window.
//
// # Pieces
//
// The building blocks are usable on their own: [Place] computes where an
// image lands, [ScrollState] holds the clamped offset, [PointerTracker]
// turns pointer positions into raw offsets, [Renderer] repaints a [Surface],
// and [Loader] fetches and decodes images in the background. [StaticHost]
// runs all of it headless, which is how the tests drive it.
//
// # Events
//
// Set an [EventStore] with [Carousel.SetEventStore] to observe scroll,
// gesture and load events. The carousel/ecs module publishes them into a
// [Donburi] world.
//
// # Logging
//
// The package logs through [log/slog] and is silent by default. Call
// [SetLogger] to route its output.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package carousel
