package pathfind

import (
	"errors"
	"fmt"

	"github.com/samdwyer/foxtrail/internal/grid"
)

var (
	// ErrNotFound means no cell within the radius of the destination is
	// reachable from the source. It is an ordinary outcome.
	ErrNotFound = errors.New("pathfind: no path found")
	// ErrInvalidQuery means the query violates the caller contract, e.g. a
	// source or destination outside the map.
	ErrInvalidQuery = errors.New("pathfind: invalid query")
	// ErrExpansionLimit means the search gave up after the limit set with
	// WithExpansionLimit. It matches ErrNotFound under errors.Is.
	ErrExpansionLimit = fmt.Errorf("%w: expansion limit reached", ErrNotFound)

	errBrokenChain = errors.New("pathfind: broken parent chain")
)

// Query describes one path request.
type Query struct {
	Source      grid.Coord
	Destination grid.Coord
	// Rule decides which neighbors may be entered. Nil blocks nothing.
	Rule grid.Rule
	// Within is the acceptance radius around Destination, in cells
	// (Euclidean). Zero means the destination cell itself.
	Within float64
}

// Result is a successful search.
type Result struct {
	// Path runs from the source to the accepted cell, both inclusive.
	Path []grid.Coord
	// Cost is the summed Euclidean step cost of Path.
	Cost float64
	// Expanded counts cells finalized during the search.
	Expanded int
}

// Options holds search tuning.
type Options struct {
	ExpansionLimit int
}

// Option modifies Options.
type Option func(*Options)

// WithExpansionLimit stops the search with ErrExpansionLimit once more than
// n cells would be expanded. n <= 0 means no limit.
func WithExpansionLimit(n int) Option {
	return func(o *Options) { o.ExpansionLimit = n }
}

// PathCost returns the summed Euclidean distance between consecutive cells.
func PathCost(path []grid.Coord) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += grid.Euclidean(path[i-1], path[i])
	}
	return total
}
