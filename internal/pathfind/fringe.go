package pathfind

import "github.com/samdwyer/foxtrail/internal/grid"

const noParent int32 = -1

// fringeItem is one frontier entry. The same cell may be queued more than
// once; entries popped after the cell was finalized are stale.
type fringeItem struct {
	priority float64
	coord    grid.Coord
	cost     float64
	parent   int32
}

// fringe is a container/heap min-queue ordered by priority, with ties
// broken by coordinate so equal-priority pops are stable across runs.
type fringe []fringeItem

func (f fringe) Len() int { return len(f) }

func (f fringe) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].coord.Less(f[j].coord)
}

func (f fringe) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *fringe) Push(x any) {
	*f = append(*f, x.(fringeItem))
}

func (f *fringe) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
