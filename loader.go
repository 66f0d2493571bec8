package carousel

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/http"
	"os"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp" // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/sync/errgroup"
)

// Fetcher opens the bytes behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// HTTPFetcher fetches http(s) URLs with Client (http.DefaultClient when nil)
// and opens anything else as a local path. A file:// prefix is stripped.
// Local paths are trusted: the Loader refuses them for images listed in a
// document fetched over http(s).
type HTTPFetcher struct {
	Client *http.Client
}

// Fetch implements Fetcher.
func (f HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	if !isHTTPURL(url) {
		return os.Open(strings.TrimPrefix(url, "file://"))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}

func isHTTPURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// LoadResult is the outcome of loading one descriptor. Width and Height are
// the decoded natural size, before any downscaling applied to Image.
type LoadResult struct {
	Index         int
	Image         image.Image
	Width, Height int
	Err           error
}

// Loader resolves descriptors and decodes images in the background.
type Loader struct {
	fetcher     Fetcher
	concurrency int
	maxSide     int
}

// NewLoader returns a loader fetching through f with at most concurrency
// loads in flight. Decoded images whose longer side exceeds maxSide are
// downscaled; maxSide <= 0 disables downscaling.
func NewLoader(f Fetcher, concurrency, maxSide int) *Loader {
	if f == nil {
		f = HTTPFetcher{}
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Loader{fetcher: f, concurrency: concurrency, maxSide: maxSide}
}

// Descriptors returns the configured descriptor list: the inline images, or
// the collection fetched from data.URL. Images listed in a document fetched
// over http(s) must be http(s) URLs themselves; Load fails the others with
// ErrLocalURL.
func (l *Loader) Descriptors(ctx context.Context, data DataConfig) ([]ImageDescriptor, error) {
	if data.URL == "" {
		return slices.Clone(data.Images), nil
	}
	rc, err := l.fetcher.Fetch(ctx, data.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", data.URL, err)
	}
	defer rc.Close()

	descs, err := ParseCollection(rc, data.Collection)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", data.URL, err)
	}
	if isHTTPURL(data.URL) {
		for i := range descs {
			descs[i].remote = true
		}
	}
	return descs, nil
}

// Load starts decoding every descriptor and returns a channel that yields
// one result per descriptor, in completion order, and is closed when all
// loads have finished. Failed loads carry a *LoadError and are not retried.
func (l *Loader) Load(ctx context.Context, descs []ImageDescriptor) <-chan LoadResult {
	out := make(chan LoadResult, len(descs))
	go func() {
		defer close(out)
		var g errgroup.Group
		g.SetLimit(l.concurrency)
		for i, d := range descs {
			g.Go(func() error {
				res := LoadResult{Index: i}
				img, err := l.decode(ctx, d)
				if err != nil {
					res.Err = &LoadError{Index: i, URL: d.URL, Err: err}
				} else {
					b := img.Bounds()
					res.Width, res.Height = b.Dx(), b.Dy()
					res.Image = l.fit(img)
				}
				out <- res
				return nil
			})
		}
		_ = g.Wait()
	}()
	return out
}

// decode fetches and decodes one image.
func (l *Loader) decode(ctx context.Context, d ImageDescriptor) (image.Image, error) {
	if d.URL == "" {
		return nil, fmt.Errorf("empty url")
	}
	if d.remote && !isHTTPURL(d.URL) {
		return nil, ErrLocalURL
	}
	rc, err := l.fetcher.Fetch(ctx, d.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// fit downscales img so its longer side is at most maxSide.
func (l *Loader) fit(img image.Image) image.Image {
	b := img.Bounds()
	longest := max(b.Dx(), b.Dy())
	if l.maxSide <= 0 || longest <= l.maxSide {
		return img
	}
	scale := float64(l.maxSide) / float64(longest)
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// ParseCollection decodes descriptors from a document shaped as
// {"<collection>": {"<key>": {"url": ..., "width": ..., "height": ...}}}
// keeping the order in which keys appear. An empty key selects the first
// collection. The collection may also be a JSON array of descriptors.
func ParseCollection(r io.Reader, key string) ([]ImageDescriptor, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)
		if key == "" || name == key {
			return decodeDescriptors(dec)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrCollectionMissing, key)
}

// decodeDescriptors reads an object or array of descriptors in document order.
func decodeDescriptors(dec *json.Decoder) ([]ImageDescriptor, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	open, ok := tok.(json.Delim)
	if !ok || (open != '{' && open != '[') {
		return nil, fmt.Errorf("collection: expected object or array, got %v", tok)
	}

	var descs []ImageDescriptor
	for dec.More() {
		if open == '{' {
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
		}
		var d ImageDescriptor
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", len(descs), err)
		}
		descs = append(descs, d)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return descs, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
