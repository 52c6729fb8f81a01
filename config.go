package jumpflood

import (
	"github.com/pkg/errors"
)

const (
	// DefaultSize is the side of the grid used by DefaultConfig
	DefaultSize = 600

	// DefaultSeeds is the number of seeds used by DefaultConfig
	DefaultSeeds = 256

	// DefaultUndefined is the colour of cells no seed has reached.
	// Nb. the top byte is not 0xFF so it can never clash with a random
	// seed colour.
	DefaultUndefined Colour = 0x00BABABA

	// DefaultMarker is the colour seeds are painted when markers are shown
	DefaultMarker Colour = 0x00000000
)

var (
	// ErrInvalidConfig is returned by New when the Config cannot be used.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds settings for a diagram. Zero values for Size, Seeds, Seed,
// Workers & Undefined are replaced with defaults by New.
type Config struct {
	// Size is the length of each side of the (square) grid.
	Size int

	// Seeds is how many seeds are placed on each refresh.
	// Seeds are placed at random & may land on top of each other.
	Seeds int

	// Seed for rng (random number chosen if not set)
	Seed int64

	// Undefined is the colour of cells that no seed reaches.
	// It must not equal Marker & its top byte must not be 0xFF.
	// Zero means DefaultUndefined, so black (0x00000000) can't be used.
	Undefined Colour

	// Marker is the colour seeds are painted after the fill, if ShowMarkers
	Marker Colour

	// ShowMarkers paints each seed with Marker once the fill is done.
	// This is purely cosmetic, markers never change the fill itself.
	ShowMarkers bool

	// Mode is how each pass reads & writes the grid, see Mode.
	Mode Mode

	// Schedule decides the stride of each pass, see Schedule.
	Schedule Schedule

	// Workers for DoubleBuffered passes, 0 implies GOMAXPROCS.
	Workers int
}

// DefaultConfig returns a config for a 600x600 grid with 256 seeds,
// shown with black markers.
func DefaultConfig() *Config {
	return &Config{
		Size:        DefaultSize,
		Seeds:       DefaultSeeds,
		Undefined:   DefaultUndefined,
		Marker:      DefaultMarker,
		ShowMarkers: true,
		Mode:        InPlace,
		Schedule:    HalfSize,
	}
}

// setDefaults fills in zero values
func (c *Config) setDefaults() {
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Seeds == 0 {
		c.Seeds = DefaultSeeds
	}
	if c.Undefined == 0 {
		c.Undefined = DefaultUndefined
	}
}

// validate returns an error wrapping ErrInvalidConfig if the config
// can't be used.
func (c *Config) validate() error {
	if c.Size <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "size must be positive, got %d", c.Size)
	}
	if c.Seeds <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "seed count must be positive, got %d", c.Seeds)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	if c.Mode != InPlace && c.Mode != DoubleBuffered {
		return errors.Wrapf(ErrInvalidConfig, "unknown mode %d", c.Mode)
	}
	if c.Schedule != HalfSize && c.Schedule != PowerOfTwo {
		return errors.Wrapf(ErrInvalidConfig, "unknown schedule %d", c.Schedule)
	}
	if c.Undefined>>24 == 0xFF {
		return errors.Wrapf(ErrInvalidConfig, "undefined colour %#08x clashes with random seed colours", uint32(c.Undefined))
	}
	if c.Marker == c.Undefined {
		return errors.Wrapf(ErrInvalidConfig, "marker colour %#08x is the undefined colour", uint32(c.Marker))
	}
	return nil
}
