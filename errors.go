package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationMissing reports configuration that is absent or too
	// ambiguous to act on, such as an unknown direction.
	ErrConfigurationMissing = errors.New("carousel: configuration missing")

	// ErrInvalidViewport reports a viewport with a non-positive dimension.
	ErrInvalidViewport = errors.New("carousel: invalid viewport")

	// ErrCollectionMissing reports remote data without the requested collection.
	ErrCollectionMissing = errors.New("carousel: collection missing")

	// ErrLocalURL reports a local path inside a remotely fetched document.
	ErrLocalURL = errors.New("carousel: local path in remote document")
)

// LoadError describes a failed fetch or decode of one image. The affected
// entry is skipped by the renderer for the lifetime of the carousel.
type LoadError struct {
	Index int
	URL   string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("carousel: load image %d (%s): %v", e.Index, e.URL, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
