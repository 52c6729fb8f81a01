package exact

import (
	"image"
	"math"

	"github.com/unixpickle/model3d/model2d"
)

// Reference answers "which seed is really closest" for a fixed set of
// seeds. It's far too slow to fill a diagram with but is handy for
// checking how far off a jump flood fill is.
type Reference struct {
	seeds []model2d.Coord
	tree  *model2d.CoordTree
}

// NewReference builds a lookup for the given seeds.
// Duplicate seeds are dropped.
func NewReference(seeds []image.Point) *Reference {
	seen := map[image.Point]bool{}
	coords := []model2d.Coord{}
	for _, s := range seeds {
		if seen[s] {
			continue
		}
		seen[s] = true
		coords = append(coords, model2d.Coord{X: float64(s.X), Y: float64(s.Y)})
	}

	r := &Reference{seeds: coords}
	if len(coords) > 0 {
		r.tree = model2d.NewCoordTree(coords)
	}
	return r
}

// Len is the number of distinct seeds
func (r *Reference) Len() int {
	return len(r.seeds)
}

// Nearest returns the seed closest to p. If there are no seeds at all
// ok is false.
// When two seeds are equally close either may be returned.
func (r *Reference) Nearest(p image.Point) (image.Point, bool) {
	if len(r.seeds) == 0 {
		return image.Point{}, false
	}
	found := r.tree.KNN(1, model2d.Coord{X: float64(p.X), Y: float64(p.Y)})
	if len(found) == 0 {
		return image.Point{}, false
	}
	return toPoint(found[0]), true
}

// toPoint rounds a coord back to the grid. Our coords are always built
// from ints so this is exact.
func toPoint(c model2d.Coord) image.Point {
	return image.Pt(int(math.Round(c.X)), int(math.Round(c.Y)))
}
