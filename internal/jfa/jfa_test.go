package jfa

import (
	"image"
	"math/rand"
	"reflect"
	"testing"

	"github.com/voidshard/jumpflood/internal/grid"
)

const undefined grid.Colour = 0x00BABABA

var modes = []Mode{InPlace, DoubleBuffered}

func seeded(size int, seeds []image.Point, colours ...grid.Colour) *grid.Grid {
	g := grid.New(size, undefined)
	for i, s := range seeds {
		g.Stamp([]image.Point{s}, grid.Fixed(colours[i]))
	}
	return g
}

func randomSeeds(rng *rand.Rand, size, count int) []image.Point {
	pts := make([]image.Point, count)
	for i := range pts {
		pts[i] = image.Pt(rng.Intn(size), rng.Intn(size))
	}
	return pts
}

func TestStrides(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		schedule Schedule
		want     []int
	}{
		{name: "default size", size: 600, schedule: HalfSize, want: []int{300, 150, 75, 37, 18, 9, 4, 2, 1}},
		{name: "default size pow2", size: 600, schedule: PowerOfTwo, want: []int{512, 256, 128, 64, 32, 16, 8, 4, 2, 1}},
		{name: "four", size: 4, schedule: HalfSize, want: []int{2, 1}},
		{name: "four pow2", size: 4, schedule: PowerOfTwo, want: []int{2, 1}},
		{name: "five", size: 5, schedule: HalfSize, want: []int{2, 1}},
		{name: "five pow2", size: 5, schedule: PowerOfTwo, want: []int{4, 2, 1}},
		{name: "one", size: 1, schedule: HalfSize, want: []int{}},
		{name: "one pow2", size: 1, schedule: PowerOfTwo, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strides(tt.size, tt.schedule); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Strides(%d, %s) = %v, want %v", tt.size, tt.schedule, got, tt.want)
			}
		})
	}
}

func TestPropagateSingleSeedCorner(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			g := seeded(4, []image.Point{image.Pt(0, 0)}, 0xFF0000FF)

			passes := Propagate(g, Options{Mode: mode})

			if passes != 2 {
				t.Errorf("Propagate() = %d passes, want 2", passes)
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					c := g.At(x, y)
					if c.Origin != image.Pt(0, 0) || c.Colour != 0xFF0000FF {
						t.Errorf("At(%d,%d) = %+v, want origin (0,0) colour 0xff0000ff", x, y, c)
					}
				}
			}
		})
	}
}

// Two seeds in opposite corners of a 4x4 grid. Cells on the anti-diagonal
// are equally far from both seeds; ties keep whichever seed reached the cell
// first & (0,0) is always seen first from those cells because neighbours
// above are considered before neighbours below.
func TestPropagateTieBreak(t *testing.T) {
	const c0, c1 grid.Colour = 0xFF0000FF, 0xFFFF0000

	tests := []struct {
		mode Mode
		want [4][4]grid.Colour // [y][x]
	}{
		{
			mode: InPlace,
			want: [4][4]grid.Colour{
				{c0, c0, c0, c0},
				{c0, c0, c0, c1},
				{c0, c0, c1, c1},
				{c0, c1, c1, c1},
			},
		},
		{
			// (1,2) is a tie. In place, (0,0) has already leaked to (1,1)
			// by the time (1,2) is scanned, double buffered it has not.
			mode: DoubleBuffered,
			want: [4][4]grid.Colour{
				{c0, c0, c0, c0},
				{c0, c0, c0, c1},
				{c0, c1, c1, c1},
				{c0, c1, c1, c1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			g := seeded(4, []image.Point{image.Pt(0, 0), image.Pt(3, 3)}, c0, c1)

			Propagate(g, Options{Mode: tt.mode})

			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					if got := g.At(x, y).Colour; got != tt.want[y][x] {
						t.Errorf("At(%d,%d).Colour = %#x, want %#x", x, y, got, tt.want[y][x])
					}
				}
			}

			for _, p := range []image.Point{image.Pt(0, 3), image.Pt(3, 0)} {
				if got := g.At(p.X, p.Y); got.Colour != c0 || got.Origin != image.Pt(0, 0) {
					t.Errorf("At(%v) = %+v, want the (0,0) seed", p, got)
				}
			}
		})
	}
}

// With a side that is a power of two a lone seed reaches every cell from
// anywhere. Other sides are covered by TestPropagateNonPowerOfTwo.
func TestPropagateSingleSeedCoversGrid(t *testing.T) {
	for _, mode := range modes {
		for _, size := range []int{2, 4, 8, 16} {
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					s := image.Pt(x, y)
					g := seeded(size, []image.Point{s}, 0xFF123456)

					Propagate(g, Options{Mode: mode})

					if n := g.CountUnassigned(); n != 0 {
						t.Fatalf("%s size %d seed %v: %d unassigned cells", mode, size, s, n)
					}
					for cy := 0; cy < size; cy++ {
						for cx := 0; cx < size; cx++ {
							if o := g.At(cx, cy).Origin; o != s {
								t.Fatalf("%s size %d seed %v: At(%d,%d).Origin = %v", mode, size, s, cx, cy, o)
							}
						}
					}
				}
			}
		}
	}
}

// With HalfSize the strides for a side of 5 are 2 & 1, which cannot carry a
// seed in one corner all the way to the opposite corner. The unreachable
// cells are left unassigned. PowerOfTwo adds a stride of 4 & fixes it.
func TestPropagateNonPowerOfTwo(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			g := seeded(5, []image.Point{image.Pt(4, 4)}, 0xFF123456)
			Propagate(g, Options{Mode: mode, Schedule: HalfSize})
			if g.CountUnassigned() == 0 {
				t.Error("HalfSize: expected unreachable cells for a side of 5")
			}
			if g.At(0, 0).Assigned() {
				t.Error("HalfSize: expected (0,0) to be unreachable")
			}

			for _, size := range []int{3, 5, 6, 7, 9, 12, 13} {
				for _, s := range []image.Point{image.Pt(0, 0), image.Pt(size-1, size-1), image.Pt(size-1, 0), image.Pt(size/2, size/2)} {
					g := seeded(size, []image.Point{s}, 0xFF123456)
					Propagate(g, Options{Mode: mode, Schedule: PowerOfTwo})
					if n := g.CountUnassigned(); n != 0 {
						t.Errorf("PowerOfTwo size %d seed %v: %d unassigned cells", size, s, n)
					}
				}
			}
		})
	}
}

func TestPropagateEmptyGrid(t *testing.T) {
	for _, mode := range modes {
		g := grid.New(8, undefined)
		Propagate(g, Options{Mode: mode})
		if n := g.CountUnassigned(); n != 64 {
			t.Errorf("%s: CountUnassigned() = %d, want 64", mode, n)
		}
	}
}

func TestPropagateInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	const size = 64

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			seeds := randomSeeds(rng, size, 40)
			g := grid.New(size, undefined)
			g.Stamp(seeds, grid.RandomColours(rng))
			seedCells := map[image.Point]grid.Cell{}
			for _, s := range seeds {
				seedCells[s] = g.At(s.X, s.Y)
			}

			Propagate(g, Options{Mode: mode})

			if n := g.CountUnassigned(); n != 0 {
				t.Errorf("CountUnassigned() = %d, want 0", n)
			}

			for s, want := range seedCells {
				if got := g.At(s.X, s.Y); got != want {
					t.Errorf("seed cell %v changed from %+v to %+v", s, want, got)
				}
			}

			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					c := g.At(x, y)
					seed, ok := seedCells[c.Origin]
					if !ok {
						t.Fatalf("At(%d,%d).Origin = %v is not a seed", x, y, c.Origin)
					}
					if c.Colour != seed.Colour {
						t.Fatalf("At(%d,%d).Colour = %#x, seed %v has %#x", x, y, c.Colour, c.Origin, seed.Colour)
					}
				}
			}
		})
	}
}

func TestPropagateDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	base := grid.New(50, undefined)
	base.Stamp(randomSeeds(rng, 50, 30), grid.RandomColours(rng))

	for _, mode := range modes {
		a := base.Clone()
		b := base.Clone()
		Propagate(a, Options{Mode: mode})
		Propagate(b, Options{Mode: mode})
		if !a.Equal(b) {
			t.Errorf("%s: two runs from the same seeds differ", mode)
		}
	}
}

func TestDoubleBufferedIgnoresWorkerCount(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	base := grid.New(64, undefined)
	base.Stamp(randomSeeds(rng, 64, 25), grid.RandomColours(rng))

	want := base.Clone()
	Propagate(want, Options{Mode: DoubleBuffered, Workers: 1})

	for _, workers := range []int{0, 2, 3, 16} {
		got := base.Clone()
		Propagate(got, Options{Mode: DoubleBuffered, Workers: workers})
		if !got.Equal(want) {
			t.Errorf("Workers %d: output differs from a single worker", workers)
		}
	}
}
