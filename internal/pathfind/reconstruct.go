package pathfind

import (
	"fmt"
	"slices"

	"github.com/samdwyer/foxtrail/internal/grid"
)

// reconstruct walks parent links from terminal back to source and returns
// the path in source-to-terminal order.
func reconstruct(s *scratch, width int, source, terminal grid.Coord) ([]grid.Coord, error) {
	i := index(width, terminal)
	if !s.visited[i] {
		return nil, fmt.Errorf("%w: %v was never visited", errBrokenChain, terminal)
	}
	path := []grid.Coord{terminal}
	for current := terminal; current != source; {
		p := s.parent[i]
		if p == noParent || !s.visited[p] || len(path) > len(s.visited) {
			return nil, fmt.Errorf("%w: lost at %v", errBrokenChain, current)
		}
		i = int(p)
		current = coordAt(width, i)
		path = append(path, current)
	}
	slices.Reverse(path)
	return path, nil
}
