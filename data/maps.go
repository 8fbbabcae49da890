package data

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/samdwyer/foxtrail/internal/grid"
)

const mapExt = ".txt"

// ErrUnknownMap is returned by LoadMap for a name with no embedded map.
var ErrUnknownMap = errors.New("data: unknown map")

// Maps returns the names of all embedded maps, sorted.
func Maps() []string {
	entries, err := fs.Glob(dataFS, "*"+mapExt)
	if err != nil {
		// Only ErrBadPattern, and the pattern is constant.
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e, mapExt))
	}
	sort.Strings(names)
	return names
}

// LoadMap parses the embedded map with the given name (without extension).
func LoadMap(name string) (*grid.Grid, error) {
	content, err := dataFS.ReadFile(name + mapExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMap, name)
		}
		return nil, fmt.Errorf("failed to read embedded map %s: %w", name, err)
	}

	g, err := grid.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}
	return g, nil
}
