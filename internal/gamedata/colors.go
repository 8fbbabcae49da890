package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a color definition to a tcell.Color. It accepts
// "#RRGGBB", "RRGGBB", the "#RGB" shorthand and tcell color names such as
// "orange".
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q", s)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseColor is ParseColor that panics on error.
func MustParseColor(s string) tcell.Color {
	color, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return color
}
