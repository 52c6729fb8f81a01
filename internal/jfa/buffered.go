package jfa

import (
	"runtime"

	"github.com/unixpickle/essentials"

	"github.com/voidshard/jumpflood/internal/grid"
)

// propagateBuffered runs every pass against a snapshot of the previous pass.
// Each worker writes only its own rows of g & reads only the snapshot so
// rows can be handed out in any order without changing the result.
func propagateBuffered(g *grid.Grid, strides []int, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	snapshot := g.Clone()
	for _, k := range strides {
		snapshot.CopyFrom(g)
		essentials.ConcurrentMap(workers, g.Size(), func(y int) {
			updateRow(snapshot, g.Row(y), y, k)
		})
	}
}
