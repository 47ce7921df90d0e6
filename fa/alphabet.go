// Package fa models deterministic and non-deterministic finite automata over
// a finite alphabet of runes and implements the classic constructions on
// them: epsilon closure, the dynamic and cached powerset constructions,
// state elimination to a regular expression, and the synchronized product of
// two deterministic machines. Automata are immutable once built; every
// operation is a pure function of its inputs.
package fa

import "slices"

// Epsilon is the reserved edge label for transitions that consume no input.
// It is never a member of any alphabet.
const Epsilon rune = -1

// Alphabet is a finite set of input symbols, kept sorted and deduplicated so
// that equal alphabets have a unique representation.
type Alphabet struct {
	symbols []rune
	lut     map[rune]int
}

// NewAlphabet builds an alphabet from the runes of s. Duplicates collapse.
func NewAlphabet(s string) Alphabet {
	symbols := []rune(s)
	slices.Sort(symbols)
	symbols = slices.Compact(symbols)

	lut := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		lut[r] = i
	}
	return Alphabet{symbols: symbols, lut: lut}
}

// Len is the number of symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns the symbols in increasing order. The caller must not
// modify the returned slice.
func (a Alphabet) Symbols() []rune {
	return a.symbols
}

// Index returns the position of r within the ordered alphabet.
func (a Alphabet) Index(r rune) (int, bool) {
	i, ok := a.lut[r]
	return i, ok
}

// Contains reports whether r is a member.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.lut[r]
	return ok
}

// Equal reports whether both alphabets hold the same symbols.
func (a Alphabet) Equal(b Alphabet) bool {
	return slices.Equal(a.symbols, b.symbols)
}
