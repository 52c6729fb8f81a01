package grid

import (
	"image"
)

// opaque is forced on to every random marker colour so that it can never
// be mistaken for an undefined colour (which has some other top byte).
const opaque Colour = 0xFF000000

// Source is a source of random numbers, satisfied by *rand.Rand
type Source interface {
	Intn(n int) int
}

// Picker returns the colour to stamp at p
type Picker func(p image.Point) Colour

// Fixed stamps every point with c
func Fixed(c Colour) Picker {
	return func(image.Point) Colour {
		return c
	}
}

// RandomColours stamps every point with a new random opaque colour.
func RandomColours(src Source) Picker {
	return func(image.Point) Colour {
		return Colour(src.Intn(0x1000000)) | opaque
	}
}

// Stamp marks each point as its own origin with the colour chosen by pick,
// in the order given. A point given twice is simply overwritten by the
// later write & points outside the grid are skipped.
func (g *Grid) Stamp(pts []image.Point, pick Picker) {
	for _, p := range pts {
		if !g.Contains(p.X, p.Y) {
			continue
		}
		g.rows[p.Y][p.X] = Cell{Colour: pick(p), Origin: p}
	}
}
