package grid

import "strings"

// Rule decides whether a cell may be entered.
type Rule interface {
	Passable(m Map, c Coord) bool
}

// BlockedSymbols is a Rule that rejects cells whose symbol is in the set.
type BlockedSymbols struct {
	set string
}

// Blocking returns a BlockedSymbols rule for every rune in symbols.
func Blocking(symbols string) BlockedSymbols {
	return BlockedSymbols{set: symbols}
}

// Contains reports whether r is a blocking symbol.
func (b BlockedSymbols) Contains(r rune) bool {
	return strings.ContainsRune(b.set, r)
}

// Symbols returns the blocking symbols.
func (b BlockedSymbols) Symbols() string {
	return b.set
}

// Passable implements Rule.
func (b BlockedSymbols) Passable(m Map, c Coord) bool {
	return !b.Contains(m.Symbol(c))
}

// Mover is anything that can judge a cell for itself, typically a character.
type Mover interface {
	CanMoveTo(m Map, c Coord) bool
}

// MoverFunc adapts a plain function to Mover.
type MoverFunc func(m Map, c Coord) bool

// CanMoveTo calls f(m, c).
func (f MoverFunc) CanMoveTo(m Map, c Coord) bool {
	return f(m, c)
}

// Capability is a Rule that defers to a Mover.
type Capability struct {
	Mover Mover
}

// Passable implements Rule.
func (r Capability) Passable(m Map, c Coord) bool {
	return r.Mover.CanMoveTo(m, c)
}

// Passable reports whether c may be entered under r. A nil rule blocks
// nothing.
func Passable(m Map, c Coord, r Rule) bool {
	if r == nil {
		return true
	}
	return r.Passable(m, c)
}
