package fa

import (
	"fmt"
	"slices"
)

// symEdge is one labeled transition; sym is an alphabet index.
type symEdge struct {
	sym int
	to  int
}

// Nfa is a non-deterministic finite automaton with epsilon transitions: a
// transition relation with any number of targets per state and symbol, a set
// of start states and a set of accepting states. Epsilon transitions are
// stored apart from the labeled ones, which keeps the epsilon reachability
// graph easy to walk.
type Nfa struct {
	alphabet Alphabet
	edges    [][]symEdge
	epsilons [][]int
	starts   []int
	final    []bool
}

// NewNfa builds an NFA from its transitions. Edges labeled Epsilon become
// epsilon transitions. State indices are contiguous; the state count is
// inferred from the largest index mentioned.
func NewNfa(alphabet Alphabet, edges []Edge, starts []int, finals []int) (*Nfa, error) {
	if len(starts) == 0 {
		return nil, fmt.Errorf("%w: no start state", ErrMalformedAutomaton)
	}
	n := stateCount(edges, append(slices.Clone(starts), finals...))

	a := &Nfa{
		alphabet: alphabet,
		edges:    make([][]symEdge, n),
		epsilons: make([][]int, n),
		starts:   slices.Clone(starts),
		final:    make([]bool, n),
	}

	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge %d->%d out of range", ErrMalformedAutomaton, e.From, e.To)
		}
		if e.Label == Epsilon {
			a.epsilons[e.From] = append(a.epsilons[e.From], e.To)
			continue
		}
		si, ok := alphabet.Index(e.Label)
		if !ok {
			return nil, fmt.Errorf("%w: edge label %q", ErrMalformedAutomaton, e.Label)
		}
		a.edges[e.From] = append(a.edges[e.From], symEdge{sym: si, to: e.To})
	}

	for _, q := range starts {
		if q < 0 || q >= n {
			return nil, fmt.Errorf("%w: start state %d out of range", ErrMalformedAutomaton, q)
		}
	}
	for _, q := range finals {
		if q < 0 || q >= n {
			return nil, fmt.Errorf("%w: final state %d out of range", ErrMalformedAutomaton, q)
		}
		a.final[q] = true
	}
	return a, nil
}

// Alphabet returns the automaton's alphabet.
func (n *Nfa) Alphabet() Alphabet {
	return n.alphabet
}

// NumStates is the number of states.
func (n *Nfa) NumStates() int {
	return len(n.final)
}

// Starts returns the start-state set. The caller must not modify it.
func (n *Nfa) Starts() []int {
	return n.starts
}

// IsFinal reports whether state q accepts.
func (n *Nfa) IsFinal(q int) bool {
	return q >= 0 && q < len(n.final) && n.final[q]
}

// Accepts answers membership by dynamic powerset simulation: the current
// subset of states starts as the closure of the start set and is stepped and
// re-closed per symbol, without ever materializing the full DFA. Repeated
// calls recompute; ToDfa caches the same construction.
func (n *Nfa) Accepts(word string) (bool, error) {
	cur := n.newFlagSet()
	for _, q := range n.starts {
		cur[q] = true
	}
	n.close(cur)

	for _, r := range word {
		si, ok := n.alphabet.Index(r)
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
		}
		cur = n.stepSubset(cur, si)
	}

	for q, in := range cur {
		if in && n.final[q] {
			return true, nil
		}
	}
	return false, nil
}

// stepSubset moves every state of the subset over the symbol with alphabet
// index si, then closes the result under epsilon transitions.
func (n *Nfa) stepSubset(cur flagSet, si int) flagSet {
	next := n.newFlagSet()
	for q, in := range cur {
		if !in {
			continue
		}
		for _, e := range n.edges[q] {
			if e.sym == si {
				next[e.to] = true
			}
		}
	}
	n.close(next)
	return next
}
