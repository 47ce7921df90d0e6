package fa

import (
	"io"
	"strconv"
	"strings"

	"automata/dot"
)

// The anonymous source node for the start marker edge.
const startMarker = "_start"

// EpsilonLabel marks epsilon transitions in exported graphs. A distinguished
// label, not an empty one, so they stay apart from unlabeled edges.
const EpsilonLabel = "ε"

// WriteDot exports the automaton as a directed DOT graph: every state is a
// node, accepting states get a double outline, the start state an incoming
// edge from an invisible point, and parallel edges between the same pair of
// states merge into one comma-separated label. The automaton is not
// modified.
func (d *Dfa) WriteDot(w io.Writer, name string) error {
	g, err := dot.NewGraphWriter(w, dot.Directed, name)
	if err != nil {
		return err
	}
	if err := writeStartMarker(g, []int{d.start}); err != nil {
		return err
	}

	k := d.alphabet.Len()
	for q := 0; q < d.NumStates(); q++ {
		if err := writeState(g, q, d.final[q]); err != nil {
			return err
		}
		// Group symbols by target, in alphabet order.
		var targets []int
		labels := map[int][]string{}
		for si := 0; si < k; si++ {
			to := d.step(q, si)
			if to == NoState {
				continue
			}
			if _, seen := labels[to]; !seen {
				targets = append(targets, to)
			}
			labels[to] = append(labels[to], string(d.alphabet.Symbols()[si]))
		}
		for _, to := range targets {
			err := g.Edge(strconv.Itoa(q), strconv.Itoa(to), &dot.Edge{Label: strings.Join(labels[to], ",")})
			if err != nil {
				return err
			}
		}
	}
	return g.Close()
}

// WriteDot exports the automaton as a directed DOT graph, one edge per
// transition; epsilon transitions carry the ε label. The start-state set is
// marked by a single invisible source node with one marker edge per start
// state, so the output always contains exactly one marker node regardless
// of how many start states there are.
func (n *Nfa) WriteDot(w io.Writer, name string) error {
	g, err := dot.NewGraphWriter(w, dot.Directed, name)
	if err != nil {
		return err
	}
	if err := writeStartMarker(g, n.starts); err != nil {
		return err
	}

	for q := 0; q < n.NumStates(); q++ {
		if err := writeState(g, q, n.final[q]); err != nil {
			return err
		}
		for _, e := range n.edges[q] {
			err := g.Edge(strconv.Itoa(q), strconv.Itoa(e.to), &dot.Edge{Label: string(n.alphabet.Symbols()[e.sym])})
			if err != nil {
				return err
			}
		}
		for _, to := range n.epsilons[q] {
			if err := g.Edge(strconv.Itoa(q), strconv.Itoa(to), &dot.Edge{Label: EpsilonLabel}); err != nil {
				return err
			}
		}
	}
	return g.Close()
}

// writeStartMarker emits a single invisible source node with one marker
// edge per start state.
func writeStartMarker(g *dot.GraphWriter, starts []int) error {
	if err := g.Node(startMarker, &dot.Node{Shape: "point"}); err != nil {
		return err
	}
	for _, q := range starts {
		if err := g.Edge(startMarker, strconv.Itoa(q), nil); err != nil {
			return err
		}
	}
	return nil
}

func writeState(g *dot.GraphWriter, q int, final bool) error {
	if !final {
		return g.Node(strconv.Itoa(q), nil)
	}
	return g.Node(strconv.Itoa(q), &dot.Node{Peripheries: 2})
}
