package fa

import "fmt"

// NoState is the target of transitions leading into the implicit reject
// sink. The sink keeps the transition function total without storing a
// dedicated state: it is never accepting and all its edges loop back onto
// itself.
const NoState = -1

// Edge is one transition supplied at construction time. An Epsilon label
// denotes an epsilon transition and is only legal for NFAs.
type Edge struct {
	From  int
	Label rune
	To    int
}

// Dfa is a deterministic finite automaton: at most one outgoing edge per
// state and symbol, a single start state and a set of accepting states.
// Missing edges lead into the implicit reject sink.
type Dfa struct {
	alphabet Alphabet
	// Transition table in alphabet order, len(alphabet) entries per state.
	edges []int
	start int
	final []bool
}

// NewDfa builds a DFA from its transitions. States are contiguous indices;
// the state count is inferred from the largest index mentioned. Duplicate
// (from, label) pairs, epsilon labels and out-of-alphabet symbols are
// rejected as malformed.
func NewDfa(alphabet Alphabet, edges []Edge, start int, finals []int) (*Dfa, error) {
	n := stateCount(edges, append([]int{start}, finals...))
	k := alphabet.Len()

	d := &Dfa{
		alphabet: alphabet,
		edges:    make([]int, n*k),
		start:    start,
		final:    make([]bool, n),
	}
	for i := range d.edges {
		d.edges[i] = NoState
	}

	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge %d->%d out of range", ErrMalformedAutomaton, e.From, e.To)
		}
		if e.Label == Epsilon {
			return nil, fmt.Errorf("%w: epsilon edge %d->%d in a deterministic automaton", ErrMalformedAutomaton, e.From, e.To)
		}
		si, ok := alphabet.Index(e.Label)
		if !ok {
			return nil, fmt.Errorf("%w: edge label %q", ErrMalformedAutomaton, e.Label)
		}
		if d.edges[e.From*k+si] != NoState {
			return nil, fmt.Errorf("%w: duplicate edge from %d on %q", ErrMalformedAutomaton, e.From, e.Label)
		}
		d.edges[e.From*k+si] = e.To
	}

	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start state %d out of range", ErrMalformedAutomaton, start)
	}
	for _, f := range finals {
		if f < 0 || f >= n {
			return nil, fmt.Errorf("%w: final state %d out of range", ErrMalformedAutomaton, f)
		}
		d.final[f] = true
	}
	return d, nil
}

// Alphabet returns the automaton's alphabet.
func (d *Dfa) Alphabet() Alphabet {
	return d.alphabet
}

// NumStates is the number of explicit states, not counting the reject sink.
func (d *Dfa) NumStates() int {
	return len(d.final)
}

// Start returns the start state.
func (d *Dfa) Start() int {
	return d.start
}

// IsFinal reports whether state q accepts. The reject sink never does.
func (d *Dfa) IsFinal(q int) bool {
	return q >= 0 && q < len(d.final) && d.final[q]
}

// step follows the single edge out of q on the symbol with alphabet index
// si. The sink steps onto itself.
func (d *Dfa) step(q, si int) int {
	if q == NoState {
		return NoState
	}
	return d.edges[q*d.alphabet.Len()+si]
}

// Accepts runs the word through the automaton, one linear walk with no
// branching. A symbol outside the alphabet surfaces ErrInvalidSymbol.
func (d *Dfa) Accepts(word string) (bool, error) {
	q := d.start
	for _, r := range word {
		si, ok := d.alphabet.Index(r)
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
		}
		q = d.step(q, si)
	}
	return d.IsFinal(q), nil
}

// stateCount infers the contiguous state count from the largest index used.
func stateCount(edges []Edge, states []int) int {
	n := 0
	for _, e := range edges {
		n = max(n, e.From+1, e.To+1)
	}
	for _, q := range states {
		n = max(n, q+1)
	}
	return n
}
