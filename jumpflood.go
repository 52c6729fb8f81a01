package jumpflood

import (
	"encoding/json"
	"image"
	"math/rand"
	"time"

	"github.com/voidshard/jumpflood/internal/grid"
	"github.com/voidshard/jumpflood/internal/jfa"
	"github.com/voidshard/jumpflood/internal/seed"
)

// Diagram holds a grid & the seeds used to fill it. Each call to Refresh
// throws away everything & fills the grid again from new random seeds.
//
// A Diagram is not safe for concurrent use; callers must not Refresh (or
// read the grid) from more than one goroutine at a time.
type Diagram struct {
	cfg *Config
	src Source

	gen   *seed.Generator
	grid  *grid.Grid
	seeds *seed.Set

	// cells under each seed straight after the fill, so that markers can be
	// removed again without redoing the fill
	under []grid.Cell

	markers bool

	// Seed the rng was created from, 0 if the source was given to SetSource
	// (in which case the seed isn't known).
	Seed  int64
	Stats *Stats
}

// New creates a new Diagram given configuration. A nil config uses
// DefaultConfig(). The grid starts out empty (every cell unassigned)
// until the first Refresh.
func New(cfg *Config) (*Diagram, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg

	d := &Diagram{cfg: &c}
	return d, d.init()
}

// init sets up the diagram from our config
func (d *Diagram) init() error {
	d.cfg.setDefaults()
	err := d.cfg.validate()
	if err != nil {
		return err
	}

	if d.cfg.Seed == 0 {
		d.cfg.Seed = time.Now().UnixNano()
	}
	d.Seed = d.cfg.Seed
	d.src = rand.New(rand.NewSource(d.cfg.Seed))

	d.grid = grid.New(d.cfg.Size, d.cfg.Undefined)
	d.gen = seed.NewGenerator(d.grid.Bounds(), d.src)
	d.markers = d.cfg.ShowMarkers
	d.Stats = &Stats{}

	return nil
}

// Refresh places new seeds & recomputes the whole diagram.
//
// Each seed is given a random colour & the jump flood fill spreads those
// colours out to every cell it can reach. Finally, if markers are shown,
// every seed is painted with the marker colour. Markers are painted after
// the fill so they never affect which cells belong to which seed.
func (d *Diagram) Refresh() *Grid {
	start := time.Now()

	d.seeds = d.gen.Generate(d.cfg.Seeds)
	d.grid.Reset()
	d.grid.Stamp(d.seeds.Points, grid.RandomColours(d.src))

	passes := jfa.Propagate(d.grid, jfa.Options{
		Mode:     d.cfg.Mode,
		Schedule: d.cfg.Schedule,
		Workers:  d.cfg.Workers,
	})

	d.under = d.under[:0]
	for _, p := range d.seeds.Points {
		d.under = append(d.under, d.grid.At(p.X, p.Y))
	}

	if d.markers {
		d.grid.Stamp(d.seeds.Points, grid.Fixed(d.cfg.Marker))
	}

	d.Stats = &Stats{
		Refreshes:     d.Stats.Refreshes + 1,
		Seeds:         d.seeds.Len(),
		DistinctSeeds: d.seeds.Distinct(),
		Passes:        passes,
		Unassigned:    d.grid.CountUnassigned(),
		Duration:      time.Since(start),
	}

	return d.grid
}

// Grid returns the current grid
func (d *Diagram) Grid() *Grid {
	return d.grid
}

// Size is the length of a side of the grid
func (d *Diagram) Size() int {
	return d.cfg.Size
}

// Seeds returns a copy of the seeds used by the last refresh, in the
// order they were placed. Empty until the first refresh.
func (d *Diagram) Seeds() []image.Point {
	if d.seeds == nil {
		return []image.Point{}
	}
	pts := make([]image.Point, len(d.seeds.Points))
	copy(pts, d.seeds.Points)
	return pts
}

// ShowingMarkers returns if seeds are currently painted with markers
func (d *Diagram) ShowingMarkers() bool {
	return d.markers
}

// ToggleMarkers flips whether seeds are painted with the marker colour
// & returns the new setting. The fill itself is not recomputed.
func (d *Diagram) ToggleMarkers() bool {
	d.SetMarkers(!d.markers)
	return d.markers
}

// SetMarkers shows or hides seed markers on the current grid.
func (d *Diagram) SetMarkers(show bool) {
	if show == d.markers {
		return
	}
	d.markers = show

	if d.seeds == nil {
		return // nothing drawn yet
	}

	if show {
		d.grid.Stamp(d.seeds.Points, grid.Fixed(d.cfg.Marker))
		return
	}

	for i, p := range d.seeds.Points {
		d.grid.Set(p.X, p.Y, d.under[i])
	}
}

// Reseed swaps our source of randomness for one with the given seed.
// The current grid is untouched until the next Refresh.
func (d *Diagram) Reseed(n int64) {
	d.SetSource(rand.New(rand.NewSource(n)))
	d.Seed = n
}

// SetSource swaps our source of randomness for src. Since we can't know
// how src was seeded, Seed is set to 0.
func (d *Diagram) SetSource(src Source) {
	d.Seed = 0
	d.src = src
	d.gen.SetSource(src)
}

// JSON returns the seeds & stats of the last refresh as json.
func (d *Diagram) JSON() ([]byte, error) {
	return json.Marshal(struct {
		Seed  int64
		Size  int
		Seeds []image.Point
		Stats *Stats `json:",omitempty"`
	}{
		Seed:  d.Seed,
		Size:  d.cfg.Size,
		Seeds: d.Seeds(),
		Stats: d.Stats,
	})
}
