// Package jfa implements the Jump Flooding Algorithm: an approximate nearest
// seed fill of a grid in O(log N) passes, each pass sampling eight neighbours
// at a stride k that halves every pass.
//
// https://en.wikipedia.org/wiki/Jump_flooding_algorithm
package jfa

import (
	"image"

	"github.com/voidshard/jumpflood/internal/grid"
)

// Mode decides how cells see updates made earlier in the same pass.
type Mode int

const (
	// InPlace reads & writes a single grid. A cell updated early in a pass is
	// visible to every cell scanned after it in the same pass, so information
	// can travel further than k in one pass. Scan order is fixed (row major)
	// so the output is still deterministic.
	InPlace Mode = iota

	// DoubleBuffered reads each pass from a snapshot of the previous pass &
	// writes to a second grid, which is the textbook algorithm. Rows are
	// independent of each other & so are processed concurrently.
	DoubleBuffered
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case InPlace:
		return "in-place"
	case DoubleBuffered:
		return "double-buffered"
	}
	return "unknown"
}

// Schedule decides the strides (k) used for each pass.
type Schedule int

const (
	// HalfSize starts with k = N/2 then halves k until it hits 0.
	// For sides that are not a power of two the strides can sum to less than
	// N-1, so a lone seed may not reach every cell.
	HalfSize Schedule = iota

	// PowerOfTwo starts with k at half the smallest power of two >= N.
	// This costs at most one extra pass & always covers the grid.
	PowerOfTwo
)

// String returns the schedule name
func (s Schedule) String() string {
	switch s {
	case HalfSize:
		return "half-size"
	case PowerOfTwo:
		return "power-of-two"
	}
	return "unknown"
}

// Options for Propagate
type Options struct {
	Mode     Mode
	Schedule Schedule

	// Workers used by DoubleBuffered, 0 implies GOMAXPROCS.
	// Ignored by InPlace, which is necessarily single threaded.
	Workers int
}

// Strides returns the k value of each pass for a grid with the given side.
func Strides(size int, s Schedule) []int {
	start := size / 2
	if s == PowerOfTwo {
		p := 1
		for p < size {
			p *= 2
		}
		start = p / 2
	}

	strides := []int{}
	for k := start; k > 0; k /= 2 {
		strides = append(strides, k)
	}
	return strides
}

// Propagate fills g from whatever seeds have been stamped on to it.
// Every cell that can be reached ends up with the colour & origin of
// (approximately) the nearest seed; cells that cannot be reached are left
// unassigned. Returns the number of passes run.
func Propagate(g *grid.Grid, opts Options) int {
	strides := Strides(g.Size(), opts.Schedule)

	switch opts.Mode {
	case DoubleBuffered:
		propagateBuffered(g, strides, opts.Workers)
	default:
		propagateInPlace(g, strides)
	}

	return len(strides)
}

// propagateInPlace runs every pass reading & writing g directly
func propagateInPlace(g *grid.Grid, strides []int) {
	for _, k := range strides {
		for y := 0; y < g.Size(); y++ {
			updateRow(g, g.Row(y), y, k)
		}
	}
}

// updateRow runs one pass of stride k over row y.
// Neighbours are read from src, the results are written to dst (which is
// row y of some grid the same size as src, possibly src itself).
//
// Neighbours are considered rows first (y-k, y, y+k) then columns
// (x-k, x, x+k). A neighbour only replaces the current cell if the cell is
// unassigned or the neighbour's origin is strictly closer, so on a tie the
// first seen wins.
func updateRow(src *grid.Grid, dst []grid.Cell, y, k int) {
	size := src.Size()
	for x := 0; x < size; x++ {
		here := image.Pt(x, y)
		for i := y - k; i <= y+k; i += k {
			if i < 0 || i >= size {
				continue
			}
			row := src.Row(i)
			for j := x - k; j <= x+k; j += k {
				if j < 0 || j >= size {
					continue
				}
				if i == y && j == x {
					continue
				}

				neighbour := row[j]
				if !neighbour.Assigned() {
					continue
				}

				current := dst[x]
				if !current.Assigned() {
					dst[x] = neighbour
					continue
				}

				if grid.SqrDist(here, neighbour.Origin) < grid.SqrDist(here, current.Origin) {
					dst[x] = neighbour
				}
			}
		}
	}
}
