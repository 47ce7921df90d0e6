package fa

import "automata/regex"

// ToRegex converts the automaton into a regular expression denoting the
// same language, by state elimination: a fresh start and a fresh accept
// state are wired in with epsilon edges, then every original state is
// removed in ascending index order, rerouting each path p -> s -> q as
// p -> q with label L1 (L3)* L2 where L3 is the self loop on s. Labels
// merging onto an existing edge combine by alternation. When the two fresh
// states are all that remains, the single surviving label is the result.
//
// The elimination order is fixed so the same automaton always prints the
// same expression; any order would be language-equivalent.
func (n *Nfa) ToRegex() *regex.Node {
	m := n.NumStates()
	start, accept := m, m+1

	labels := make([][]*regex.Node, m+2)
	for i := range labels {
		labels[i] = make([]*regex.Node, m+2)
	}
	add := func(p, q int, l *regex.Node) {
		if labels[p][q] != nil {
			l = regex.NewAlternate(labels[p][q], l)
		}
		labels[p][q] = l
	}

	for q, edges := range n.edges {
		for _, e := range edges {
			add(q, e.to, regex.NewMatch(n.alphabet.Symbols()[e.sym]))
		}
	}
	for q, targets := range n.epsilons {
		for _, to := range targets {
			add(q, to, regex.NewEpsilon())
		}
	}
	for _, q := range n.starts {
		add(start, q, regex.NewEpsilon())
	}
	for q, final := range n.final {
		if final {
			add(q, accept, regex.NewEpsilon())
		}
	}

	for s := 0; s < m; s++ {
		var star *regex.Node
		if loop := labels[s][s]; loop != nil {
			star = regex.NewStar(loop)
		}
		for p := 0; p < m+2; p++ {
			if p == s || labels[p][s] == nil {
				continue
			}
			for q := 0; q < m+2; q++ {
				if q == s || labels[s][q] == nil {
					continue
				}
				l := labels[p][s]
				if star != nil {
					l = regex.NewConcat(l, star)
				}
				add(p, q, regex.NewConcat(l, labels[s][q]))
			}
		}
		for i := 0; i < m+2; i++ {
			labels[s][i] = nil
			labels[i][s] = nil
		}
	}

	if labels[start][accept] == nil {
		return regex.NewEmpty()
	}
	return labels[start][accept]
}
