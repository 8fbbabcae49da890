package pathfind

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/samdwyer/foxtrail/internal/grid"
)

// Search runs A* from q.Source until it finalizes a cell within q.Within of
// q.Destination. It returns ErrInvalidQuery (wrapped) for out-of-bounds
// coordinates or a bad radius, and ErrNotFound when the reachable area
// never comes close enough. No partial path is ever returned.
//
// A cell's cost and parent are fixed when it is first popped from the
// fringe, not when it is first discovered, so the returned path is always
// a least-cost one; a discover-time search can return a longer path on
// some grids.
//
// The source cell itself is never tested against q.Rule; the mover is
// assumed to stand there legally.
func Search(m grid.Map, q Query, options ...Option) (Result, error) {
	var opts Options
	for _, option := range options {
		option(&opts)
	}
	if err := validate(m, q); err != nil {
		return Result{}, err
	}

	width := m.Width()
	s := scratchPool.Get().(*scratch)
	defer scratchPool.Put(s)
	s.reset(width * m.Height())

	s.best[index(width, q.Source)] = 0
	heap.Push(&s.fringe, fringeItem{priority: 0, coord: q.Source, cost: 0, parent: noParent})

	expanded := 0
	for s.fringe.Len() > 0 {
		current := heap.Pop(&s.fringe).(fringeItem)
		i := index(width, current.coord)
		if s.visited[i] {
			continue // stale
		}
		if opts.ExpansionLimit > 0 && expanded >= opts.ExpansionLimit {
			return Result{Expanded: expanded}, ErrExpansionLimit
		}
		s.record(i, current.cost, current.parent)
		expanded++

		if grid.Euclidean(current.coord, q.Destination) <= q.Within {
			path, err := reconstruct(s, width, q.Source, current.coord)
			if err != nil {
				panic(err)
			}
			return Result{Path: path, Cost: current.cost, Expanded: expanded}, nil
		}

		s.nbuf = grid.AppendNeighbors(s.nbuf[:0], m, current.coord)
		for _, next := range s.nbuf {
			j := index(width, next)
			if s.visited[j] || !grid.Passable(m, next, q.Rule) {
				continue
			}
			cost := current.cost + grid.Euclidean(current.coord, next)
			if cost >= s.best[j] {
				continue
			}
			s.best[j] = cost
			heap.Push(&s.fringe, fringeItem{
				priority: cost + grid.Euclidean(next, q.Destination),
				coord:    next,
				cost:     cost,
				parent:   int32(i),
			})
		}
	}
	return Result{Expanded: expanded}, ErrNotFound
}

func validate(m grid.Map, q Query) error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrInvalidQuery)
	}
	if !grid.InBounds(m, q.Source) {
		return fmt.Errorf("%w: source %v outside %dx%d map", ErrInvalidQuery, q.Source, m.Width(), m.Height())
	}
	if !grid.InBounds(m, q.Destination) {
		return fmt.Errorf("%w: destination %v outside %dx%d map", ErrInvalidQuery, q.Destination, m.Width(), m.Height())
	}
	if math.IsNaN(q.Within) || q.Within < 0 {
		return fmt.Errorf("%w: radius %v", ErrInvalidQuery, q.Within)
	}
	return nil
}

func index(width int, c grid.Coord) int {
	return c.Row*width + c.Col
}

func coordAt(width, i int) grid.Coord {
	return grid.Coord{Col: i % width, Row: i / width}
}
