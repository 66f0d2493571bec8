package carousel

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultSpeed          = 100 // slide duration in milliseconds
	defaultConcurrency    = 4
	defaultMaxTextureSide = 4096
	defaultScreenshotDir  = "screenshots"
)

// Config is consumed once at construction. It mirrors the carousel.toml file
// read by LoadConfig.
type Config struct {
	// Element names the drawing surface. The ebiten host uses it as the
	// window title.
	Element string `toml:"element"`
	// Direction is "horizontal" or "vertical". Empty means vertical.
	Direction string     `toml:"direction"`
	Data      DataConfig `toml:"data"`
	// Dimensions fixes the viewport size. Nil follows the host size.
	Dimensions *Dimensions `toml:"dimensions"`
	// Speed is the duration of keyboard slide animations in milliseconds.
	Speed float64 `toml:"speed"`

	ShowFPS       bool   `toml:"show_fps"`
	Debug         bool   `toml:"debug"`
	ScreenshotDir string `toml:"screenshot_dir"`

	// MaxTextureSide caps the longer side of decoded images; larger images
	// are downscaled before upload. Layout still uses natural sizes.
	MaxTextureSide int `toml:"max_texture_side"`
	// Concurrency bounds the number of images fetched at once.
	Concurrency int `toml:"concurrency"`
}

// DataConfig selects where image descriptors come from. URL and Images are
// alternatives; when both are empty the carousel starts empty.
type DataConfig struct {
	// URL points at a JSON document shaped as
	// {"<collection>": {"<key>": {"url": ..., "width": ..., "height": ...}}}.
	URL string `toml:"url"`
	// Collection is the top-level key to read. Empty picks the first one.
	Collection string `toml:"collection"`
	// Images is an inline descriptor list used when URL is empty.
	Images []ImageDescriptor `toml:"images"`
}

// Empty reports whether no data source is configured.
func (d DataConfig) Empty() bool {
	return d.URL == "" && len(d.Images) == 0
}

// Dimensions is an explicit viewport size.
type Dimensions struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// DefaultConfig returns a configuration with every optional field set.
func DefaultConfig() Config {
	return Config{
		Element:        "carousel",
		Direction:      Vertical.String(),
		Speed:          defaultSpeed,
		ScreenshotDir:  defaultScreenshotDir,
		MaxTextureSide: defaultMaxTextureSide,
		Concurrency:    defaultConcurrency,
	}
}

// LoadConfig reads a TOML configuration file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML configuration bytes on top of DefaultConfig and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

// applyDefaults fills zero values left by a partial file.
func (c *Config) applyDefaults() {
	if c.Speed <= 0 {
		c.Speed = defaultSpeed
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}
	if c.MaxTextureSide <= 0 {
		c.MaxTextureSide = defaultMaxTextureSide
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
}

// Validate rejects configuration that cannot be acted on without guessing.
func (c Config) Validate() error {
	if _, err := ParseDirection(c.Direction); err != nil {
		return err
	}
	if c.Dimensions != nil {
		if _, err := NewViewport(c.Dimensions.Width, c.Dimensions.Height); err != nil {
			return fmt.Errorf("dimensions: %w", err)
		}
	}
	return nil
}

// ParseDirection maps a configuration string to a Direction. An empty string
// selects Vertical; anything else that is not a known direction is reported
// as ErrConfigurationMissing rather than silently defaulted.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Vertical, nil
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("%w: ambiguous direction %q", ErrConfigurationMissing, s)
	}
}
