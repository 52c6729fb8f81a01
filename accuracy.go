package jumpflood

import (
	"image"

	"github.com/golang/geo/r2"

	"github.com/voidshard/jumpflood/internal/exact"
	"github.com/voidshard/jumpflood/internal/grid"
)

// Report describes how far the jump flood fill is from a true voronoi
// diagram of the same seeds.
type Report struct {
	// Cells in the grid
	Cells int

	// Unassigned cells, which no seed reached
	Unassigned int

	// Mismatched cells are assigned to a seed that is strictly further away
	// than the nearest seed. Ties are not mismatches.
	Mismatched int

	// MaxExcess is the largest distance (in cells) any cell's seed is beyond
	// the nearest seed.
	MaxExcess float64

	// MeanExcess is the mean of the excess over mismatched cells
	MeanExcess float64
}

// Accuracy compares every cell against the exactly nearest seed.
// Before the first refresh every cell is unassigned.
//
// Nb. this is much slower than the fill itself.
func (d *Diagram) Accuracy() *Report {
	size := d.grid.Size()
	r := &Report{Cells: size * size}

	if d.seeds == nil {
		r.Unassigned = r.Cells
		return r
	}

	ref := exact.NewReference(d.seeds.Points)
	total := 0.0

	for y := 0; y < size; y++ {
		row := d.grid.Row(y)
		for x := 0; x < size; x++ {
			c := row[x]
			if !c.Assigned() {
				r.Unassigned++
				continue
			}

			here := image.Pt(x, y)
			nearest, ok := ref.Nearest(here)
			if !ok {
				continue
			}
			if grid.SqrDist(here, c.Origin) <= grid.SqrDist(here, nearest) {
				continue
			}

			h := r2.Point{X: float64(x), Y: float64(y)}
			got := h.Sub(r2.Point{X: float64(c.Origin.X), Y: float64(c.Origin.Y)}).Norm()
			want := h.Sub(r2.Point{X: float64(nearest.X), Y: float64(nearest.Y)}).Norm()
			excess := got - want

			r.Mismatched++
			total += excess
			if excess > r.MaxExcess {
				r.MaxExcess = excess
			}
		}
	}

	if r.Mismatched > 0 {
		r.MeanExcess = total / float64(r.Mismatched)
	}
	return r
}
