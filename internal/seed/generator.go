package seed

import (
	"image"
	"math/rand"
	"time"

	"github.com/boljen/go-bitmap"
)

// Source is where we get random numbers from, satisfied by *rand.Rand.
type Source interface {
	Intn(n int) int
}

// Generator places seeds (the points every cell of a diagram is attracted to)
// at random within some bounds.
type Generator struct {
	bounds image.Rectangle
	rng    Source
}

// NewGenerator returns a new seed generator for the given bounds.
// If src is nil we use a source seeded from the wall clock.
func NewGenerator(bounds image.Rectangle, src Source) *Generator {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		bounds: bounds,
		rng:    src,
	}
}

// SetSource swaps our source for src
func (g *Generator) SetSource(src Source) {
	g.rng = src
}

// Generate returns count points, each X & Y chosen uniformly within our bounds.
// Nothing stops two seeds landing on the same point.
func (g *Generator) Generate(count int) *Set {
	set := &Set{bounds: g.bounds, Points: make([]image.Point, count)}
	for i := range set.Points {
		set.Points[i] = image.Pt(
			g.rng.Intn(g.bounds.Max.X-g.bounds.Min.X)+g.bounds.Min.X,
			g.rng.Intn(g.bounds.Max.Y-g.bounds.Min.Y)+g.bounds.Min.Y,
		)
	}
	return set
}

// Set is an ordered set of seeds, as generated.
type Set struct {
	bounds image.Rectangle
	Points []image.Point
}

// Len is the number of seeds, including duplicates
func (s *Set) Len() int {
	return len(s.Points)
}

// Distinct returns the number of different points in the set.
// Points outside of the set bounds are not counted.
func (s *Set) Distinct() int {
	width := s.bounds.Dx()
	bm := bitmap.New(width * s.bounds.Dy())

	count := 0
	for _, p := range s.Points {
		if !p.In(s.bounds) {
			continue
		}
		i := (p.Y-s.bounds.Min.Y)*width + p.X - s.bounds.Min.X
		if bm.Get(i) {
			continue
		}
		bm.Set(i, true)
		count++
	}
	return count
}
