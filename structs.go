package jumpflood

import (
	"time"

	"github.com/voidshard/jumpflood/internal/grid"
	"github.com/voidshard/jumpflood/internal/jfa"
)

// Colour is a packed RGB value; the low byte is red, then green, then blue.
// The top byte is ignored by the fill, random seed colours set it to 0xFF.
type Colour = grid.Colour

// Cell is a single pixel of the diagram; the colour of the seed we think
// is nearest & where that seed is (Origin).
type Cell = grid.Cell

// Grid is the finished diagram, a square of cells. Callers should treat
// it as read only.
type Grid = grid.Grid

// Mode decides how each pass reads & writes the grid.
type Mode = jfa.Mode

// Schedule decides the stride of each pass.
type Schedule = jfa.Schedule

const (
	// InPlace updates the grid as it is scanned (row major), so later cells
	// in a pass see changes made to earlier cells. This is the default & is
	// single threaded.
	InPlace = jfa.InPlace

	// DoubleBuffered reads each pass from a copy of the previous pass, which
	// lets rows be processed concurrently.
	DoubleBuffered = jfa.DoubleBuffered

	// HalfSize strides are N/2, N/4 .. 1. The default.
	HalfSize = jfa.HalfSize

	// PowerOfTwo strides start from the next power of two >= N, halved.
	// Guarantees that every cell is reached, even when N isn't a power of two.
	PowerOfTwo = jfa.PowerOfTwo
)

// Unassigned is the Origin of cells that no seed reached
var Unassigned = grid.Unassigned

// Stats holds information about the last refresh
type Stats struct {
	// Refreshes done so far (including this one)
	Refreshes int

	// Seeds placed, including any that landed on top of each other
	Seeds int

	// DistinctSeeds is the number of cells that have a seed on them
	DistinctSeeds int

	// Passes of the fill, one per stride
	Passes int

	// Unassigned cells after the fill, see Schedule
	Unassigned int `json:",omitempty"`

	// Duration of the refresh
	Duration time.Duration
}
