package fa

import "automata/regex"

// ToNfa views the deterministic automaton as an NFA over the same alphabet.
// Edges into the reject sink are dropped; the relation is simply empty
// there. The result owns its own tables.
func (d *Dfa) ToNfa() *Nfa {
	var edges []Edge
	k := d.alphabet.Len()
	for q := 0; q < d.NumStates(); q++ {
		for si := 0; si < k; si++ {
			if to := d.step(q, si); to != NoState {
				edges = append(edges, Edge{From: q, Label: d.alphabet.Symbols()[si], To: to})
			}
		}
	}

	var finals []int
	for q, final := range d.final {
		if final {
			finals = append(finals, q)
		}
	}

	// Construction cannot fail: every index and label comes from a valid DFA.
	n, err := NewNfa(d.alphabet, edges, []int{d.start}, finals)
	if err != nil {
		panic(err)
	}
	return n
}

// ToRegex converts the automaton into an equivalent regular expression via
// state elimination on its NFA view.
func (d *Dfa) ToRegex() *regex.Node {
	return d.ToNfa().ToRegex()
}
