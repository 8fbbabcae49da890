package pathfind

import (
	"math"
	"strings"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/samdwyer/foxtrail/internal/grid"
)

// bruteForceCosts relaxes every edge until nothing changes and returns the
// least cost from src to every reachable cell (+Inf when unreachable).
func bruteForceCosts(m grid.Map, rule grid.Rule, src grid.Coord) map[grid.Coord]float64 {
	costs := map[grid.Coord]float64{}
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			costs[grid.C(col, row)] = math.Inf(1)
		}
	}
	costs[src] = 0
	for changed := true; changed; {
		changed = false
		for c, cost := range costs {
			if math.IsInf(cost, 1) {
				continue
			}
			for _, n := range grid.Neighbors(m, c) {
				if n == src || !grid.Passable(m, n, rule) {
					continue
				}
				if next := cost + grid.Euclidean(c, n); next < costs[n]-1e-12 {
					costs[n] = next
					changed = true
				}
			}
		}
	}
	return costs
}

// drawMap draws a small random map of '.' and '#'.
func drawMap(t *rapid.T) *grid.Grid {
	w := rapid.IntRange(1, 7).Draw(t, "width")
	h := rapid.IntRange(1, 7).Draw(t, "height")
	density := rapid.Float64Range(0, 0.5).Draw(t, "density")
	rows := make([]string, h)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < w; x++ {
			if rapid.Float64Range(0, 1).Draw(t, "cell") < density {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	g, err := grid.New(rows)
	require.NoError(t, err)
	return g
}

func drawCoord(t *rapid.T, m grid.Map, label string) grid.Coord {
	return grid.C(
		rapid.IntRange(0, m.Width()-1).Draw(t, label+".col"),
		rapid.IntRange(0, m.Height()-1).Draw(t, label+".row"),
	)
}
