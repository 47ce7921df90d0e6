package fa

// flagSet marks a subset of an automaton's states by index.
type flagSet []bool

func (n *Nfa) newFlagSet() flagSet {
	return make(flagSet, len(n.final))
}

func (st flagSet) indices() []int {
	var set []int
	for i, in := range st {
		if in {
			set = append(set, i)
		}
	}
	return set
}

// Closure returns the epsilon closure of the given states: the least set
// containing them that is closed under single epsilon transitions. The
// result is sorted by state index.
func (n *Nfa) Closure(set []int) []int {
	st := n.newFlagSet()
	for _, q := range set {
		if q >= 0 && q < len(st) {
			st[q] = true
		}
	}
	n.close(st)
	return st.indices()
}

// close expands st in place to its epsilon closure. A plain worklist over a
// visited set, so epsilon cycles terminate.
func (n *Nfa) close(st flagSet) {
	bfs := st.indices()
	visited := make(flagSet, len(st))
	for len(bfs) > 0 {
		q := bfs[0]
		bfs = bfs[1:]
		if visited[q] {
			continue
		}
		visited[q] = true
		for _, to := range n.epsilons[q] {
			if !st[to] {
				st[to] = true
				bfs = append(bfs, to)
			}
		}
	}
}
