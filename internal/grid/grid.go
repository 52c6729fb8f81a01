package grid

import (
	"image"
	"image/color"

	"github.com/voidshard/jumpflood/internal/encoding"
)

// Unassigned is the origin of a cell that no seed has reached (yet).
var Unassigned = image.Pt(-1, -1)

// Colour is a packed RGB value, see internal/encoding for the layout.
type Colour uint32

// RGB returns the red, green & blue parts of the colour.
func (c Colour) RGB() (uint8, uint8, uint8) {
	r, g, b, _ := encoding.Split32(uint32(c))
	return r, g, b
}

// Color returns c as an opaque color.RGBA.
// The top byte is never treated as alpha.
func (c Colour) Color() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Cell is a single pixel of the diagram; the colour of the seed we think
// is nearest & where that seed is.
type Cell struct {
	Colour Colour
	Origin image.Point
}

// Assigned returns if some seed has reached this cell.
func (c Cell) Assigned() bool {
	return c.Origin != Unassigned
}

// Grid is a square, fixed size, row major array of cells.
//
// Cells are stored in one flat slice, rows are views into it so that
// rows[y][x] and cells[y*size+x] are the same cell.
type Grid struct {
	size      int
	undefined Colour
	cells     []Cell
	rows      [][]Cell
}

// New returns a size x size grid with every cell unassigned.
// The undefined colour is used for cells that no seed has reached.
func New(size int, undefined Colour) *Grid {
	g := &Grid{
		size:      size,
		undefined: undefined,
		cells:     make([]Cell, size*size),
		rows:      make([][]Cell, size),
	}

	data := g.cells
	for y := 0; y < size; y++ {
		g.rows[y] = data[0:size:size]
		data = data[size:]
	}

	g.Reset()
	return g
}

// Size is the length of a side of the grid
func (g *Grid) Size() int {
	return g.size
}

// Bounds returns the grid area as a rectangle, (0,0) to (size,size)
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.size, g.size)
}

// Undefined is the colour of unassigned cells
func (g *Grid) Undefined() Colour {
	return g.undefined
}

// Contains returns if x,y is a cell in the grid
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// At returns the cell at x,y. Panics if x,y is out of bounds.
func (g *Grid) At(x, y int) Cell {
	return g.rows[y][x]
}

// Set the cell at x,y. Panics if x,y is out of bounds.
func (g *Grid) Set(x, y int, c Cell) {
	g.rows[y][x] = c
}

// Row returns row y. The slice is the grid's own storage, callers outside
// of this module should treat it as read only.
func (g *Grid) Row(y int) []Cell {
	return g.rows[y]
}

// Fill sets every cell to the given colour & clears every origin.
func (g *Grid) Fill(c Colour) {
	for i := range g.cells {
		g.cells[i] = Cell{Colour: c, Origin: Unassigned}
	}
}

// Reset fills the grid with the undefined colour
func (g *Grid) Reset() {
	g.Fill(g.undefined)
}

// CopyFrom overwrites this grid with the cells of o.
// Both grids must be the same size.
func (g *Grid) CopyFrom(o *Grid) {
	copy(g.cells, o.cells)
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := New(g.size, g.undefined)
	c.CopyFrom(g)
	return c
}

// CountUnassigned returns how many cells no seed has reached
func (g *Grid) CountUnassigned() int {
	count := 0
	for _, c := range g.cells {
		if !c.Assigned() {
			count++
		}
	}
	return count
}

// Equal returns if both grids hold identical cells
func (g *Grid) Equal(o *Grid) bool {
	if g.size != o.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
