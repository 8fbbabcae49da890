// Package pathfind finds least-cost paths over a grid.Map with A*.
//
// Movement is 8-connected. Each step costs the Euclidean distance between
// the two cells (1 orthogonally, √2 diagonally) and the heuristic is the
// Euclidean distance to the destination, which is admissible and
// consistent for this cost model. A search succeeds on the first finalized
// cell whose distance to the destination is at most Query.Within, so a
// non-zero radius answers "get next to" queries.
//
// A search is a pure function of its inputs. The map is only read, so one
// map may serve many concurrent searches; each search owns its scratch
// space.
package pathfind
