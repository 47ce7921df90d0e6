package fa

// ToDfa materializes the equivalent DFA via subset construction. Each
// distinct subset of NFA states reached from the closed start set becomes
// one DFA state; subsets are compared by set equality, keyed on a canonical
// '0'/'1' string over the state indices. The empty subset maps onto the
// DFA's implicit reject sink. The construction drains a worklist bounded by
// 2^|Q| subsets and the result shares no data with the input.
func (n *Nfa) ToDfa() *Dfa {
	b := &dfaBuilder{
		nfa: n,
		tab: make(map[string]*dfaState),
	}
	b.constructSink()

	start := n.newFlagSet()
	for _, q := range n.starts {
		start[q] = true
	}
	n.close(start)
	b.get(start)

	k := n.alphabet.Len()
	for len(b.todo) > 0 {
		v := b.nextTodo()
		for si := 0; si < k; si++ {
			st := n.newFlagSet()
			for _, q := range v.set {
				for _, e := range n.edges[q] {
					if e.sym == si {
						st[e.to] = true
					}
				}
			}
			n.close(st)
			b.trans[v.id*k+si] = b.get(st).id
		}
	}

	d := &Dfa{
		alphabet: n.alphabet,
		edges:    b.trans,
		start:    0,
		final:    make([]bool, b.n),
	}
	for _, v := range b.tab {
		if v.id != NoState {
			d.final[v.id] = v.final
		}
	}
	return d
}

type dfaBuilder struct {
	nfa   *Nfa
	n     int
	tab   map[string]*dfaState
	todo  []*dfaState
	trans []int
}

type dfaState struct {
	id    int
	set   []int
	final bool
}

// get looks the subset up by its canonical key, registering a fresh DFA
// state and queueing it when unseen.
func (b *dfaBuilder) get(st flagSet) *dfaState {
	buf := make([]byte, len(st))
	final := false
	for i, in := range st {
		if in {
			buf[i] = '1'
			final = final || b.nfa.final[i]
		} else {
			buf[i] = '0'
		}
	}

	v, found := b.tab[string(buf)]
	if !found {
		v = &dfaState{id: b.n, set: st.indices(), final: final}
		b.n++
		b.tab[string(buf)] = v
		b.todo = append(b.todo, v)
		b.trans = append(b.trans, make([]int, b.nfa.alphabet.Len())...)
	}
	return v
}

func (b *dfaBuilder) nextTodo() *dfaState {
	v := b.todo[len(b.todo)-1]
	b.todo = b.todo[:len(b.todo)-1]
	return v
}

// constructSink registers the empty subset as the node of no return.
func (b *dfaBuilder) constructSink() {
	buf := make([]byte, b.nfa.NumStates())
	for i := range buf {
		buf[i] = '0'
	}
	b.tab[string(buf)] = &dfaState{id: NoState}
}
