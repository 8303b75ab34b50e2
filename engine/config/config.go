package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidResolution = errors.New("config: resolution dimensions must be positive")

// DefaultMaxObjects is the per-scene object cap when none is configured.
const DefaultMaxObjects = 256

// Resolution is the fixed output size of a rendering session, in pixels.
type Resolution struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NewResolution validates the dimensions and returns a Resolution.
func NewResolution(width, height int) (Resolution, error) {
	if width <= 0 || height <= 0 {
		return Resolution{}, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, width, height)
	}
	return Resolution{Width: width, Height: height}, nil
}

// Validate reports whether both dimensions are strictly positive.
func (r Resolution) Validate() error {
	_, err := NewResolution(r.Width, r.Height)
	return err
}

// Pixels returns the total pixel count of one frame.
func (r Resolution) Pixels() int {
	return r.Width * r.Height
}

// Config holds the externally supplied engine settings for one session.
type Config struct {
	Resolution Resolution `yaml:"resolution"`
	ClearColor *Color     `yaml:"clear_color"`
	Scene      string     `yaml:"scene"`
	MaxObjects int        `yaml:"max_objects"`
}

// Default returns the engine defaults: a 200x200 canvas cleared to opaque
// black and the original per-scene object cap.
func Default() Config {
	return Config{
		Resolution: Resolution{Width: 200, Height: 200},
		MaxObjects: DefaultMaxObjects,
	}
}

// Load reads a YAML config file. Missing fields fall back to Default values;
// an invalid resolution is fatal.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes, applying defaults for omitted fields.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.MaxObjects <= 0 {
		cfg.MaxObjects = DefaultMaxObjects
	}
	if err := cfg.Resolution.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ClearColorOrDefault returns the configured clear color, or opaque black.
func (c Config) ClearColorOrDefault() color.Color {
	return c.ClearColor.Or(color.NRGBA{A: 0xff})
}
