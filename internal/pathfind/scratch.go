package pathfind

import (
	"math"
	"sync"

	"github.com/samdwyer/foxtrail/internal/grid"
)

// scratch holds the visit records and fringe of one search. Slices are
// dense, indexed row-major, and reused across searches through scratchPool.
type scratch struct {
	visited []bool
	cost    []float64
	parent  []int32
	best    []float64 // lowest cost queued so far, per cell
	fringe  fringe
	nbuf    []grid.Coord
}

var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

func (s *scratch) reset(cells int) {
	if cap(s.visited) < cells {
		s.visited = make([]bool, cells)
		s.cost = make([]float64, cells)
		s.parent = make([]int32, cells)
		s.best = make([]float64, cells)
	} else {
		s.visited = s.visited[:cells]
		s.cost = s.cost[:cells]
		s.parent = s.parent[:cells]
		s.best = s.best[:cells]
		clear(s.visited)
	}
	for i := range s.best {
		s.best[i] = math.Inf(1)
	}
	s.fringe = s.fringe[:0]
	s.nbuf = s.nbuf[:0]
}

// record finalizes cell i. Callers check visited first: a cell is
// recorded at most once per search.
func (s *scratch) record(i int, cost float64, parent int32) {
	s.visited[i] = true
	s.cost[i] = cost
	s.parent[i] = parent
}
