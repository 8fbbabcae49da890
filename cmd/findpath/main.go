// Command findpath runs one path query over a text map and prints the
// map with the path drawn on it.
//
//	findpath -map glade -from 0,0 -to 9,9 -within 0 -blocked '#~'
//
// It exits with status 1 when there is no path and 2 on bad input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/foxtrail/data"
	"github.com/samdwyer/foxtrail/internal/grid"
	"github.com/samdwyer/foxtrail/internal/pathfind"
)

const (
	exitNoPath   = 1
	exitBadInput = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("findpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		mapName = fs.String("map", "glade", "embedded map name ("+strings.Join(data.Maps(), ", ")+")")
		file    = fs.String("file", "", "read the map from a text file instead")
		from    = fs.String("from", "0,0", "source cell as col,row")
		to      = fs.String("to", "", "destination cell as col,row")
		within  = fs.Float64("within", 0, "accept any cell within this Euclidean distance of the destination")
		blocked = fs.String("blocked", "#~", "symbols that cannot be entered")
		limit   = fs.Int("limit", 0, "give up after expanding this many cells (0 = no limit)")
	)
	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}

	m, err := loadMap(*mapName, *file)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitBadInput
	}
	src, err := parseCoord(*from)
	if err != nil {
		fmt.Fprintf(stderr, "-from: %v\n", err)
		return exitBadInput
	}
	dst, err := parseCoord(*to)
	if err != nil {
		fmt.Fprintf(stderr, "-to: %v\n", err)
		return exitBadInput
	}

	var options []pathfind.Option
	if *limit > 0 {
		options = append(options, pathfind.WithExpansionLimit(*limit))
	}

	res, err := pathfind.Search(m, pathfind.Query{
		Source:      src,
		Destination: dst,
		Rule:        grid.Blocking(*blocked),
		Within:      *within,
	}, options...)
	switch {
	case errors.Is(err, pathfind.ErrNotFound):
		fmt.Fprintf(stderr, "no path (%v)\n", err)
		return exitNoPath
	case err != nil:
		fmt.Fprintln(stderr, err)
		return exitBadInput
	}

	fmt.Fprint(stdout, overlay(m, res.Path))
	fmt.Fprintf(stdout, "steps %d cost %.3f expanded %d\n", len(res.Path)-1, res.Cost, res.Expanded)
	return 0
}

func loadMap(name, file string) (*grid.Grid, error) {
	if file == "" {
		return data.LoadMap(name)
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	return grid.Parse(string(content))
}

// parseCoord parses "col,row".
func parseCoord(s string) (grid.Coord, error) {
	colText, rowText, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("want col,row, got %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("bad column: %w", err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("bad row: %w", err)
	}
	return grid.C(col, row), nil
}

// overlay renders the map with the path marked: S at the source, E at the
// end, * in between.
func overlay(g *grid.Grid, path []grid.Coord) string {
	rows := make([][]rune, g.Height())
	for i, row := range g.Rows() {
		rows[i] = []rune(row)
	}
	for i, c := range path {
		mark := '*'
		switch i {
		case len(path) - 1:
			mark = 'E'
		case 0:
			mark = 'S'
		}
		rows[c.Row][c.Col] = mark
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
