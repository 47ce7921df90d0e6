package fa

import "errors"

var (
	// ErrInvalidSymbol marks a queried word containing a symbol outside
	// the automaton's alphabet.
	ErrInvalidSymbol = errors.New("symbol not in alphabet")

	// ErrAlphabetMismatch marks a cross-automaton operation over automata
	// with differing alphabets.
	ErrAlphabetMismatch = errors.New("alphabets differ")

	// ErrMalformedAutomaton marks construction input referencing states or
	// symbols that do not exist, or breaking determinism for a DFA.
	ErrMalformedAutomaton = errors.New("malformed automaton")
)
