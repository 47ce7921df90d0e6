package fa

import "fmt"

// AcceptPolicy decides whether a product state accepts, given whether its
// two component states do. The synchronized construction is the same for
// every set operation; only this predicate differs.
type AcceptPolicy func(a, b bool) bool

// Intersection accepts when both components accept.
func Intersection(a, b bool) bool { return a && b }

// Union accepts when either component accepts.
func Union(a, b bool) bool { return a || b }

// Difference accepts when the first component accepts and the second does
// not.
func Difference(a, b bool) bool { return a && !b }

// statePair identifies one product state by its component states. Either
// component may be the reject sink.
type statePair [2]int

// Pair builds the synchronized product of two DFAs over the same alphabet:
// states are pairs of component states, stepping moves both components at
// once, and acceptance is delegated to the policy. Only pairs reachable
// from the paired start states are materialized. Differing alphabets
// surface ErrAlphabetMismatch.
func Pair(a, b *Dfa, accept AcceptPolicy) (*Dfa, error) {
	if !a.alphabet.Equal(b.alphabet) {
		return nil, fmt.Errorf("%w: %q vs %q",
			ErrAlphabetMismatch, string(a.alphabet.Symbols()), string(b.alphabet.Symbols()))
	}

	k := a.alphabet.Len()
	tab := map[statePair]int{}
	var pairs []statePair
	var trans []int

	add := func(p statePair) int {
		id, found := tab[p]
		if !found {
			id = len(pairs)
			tab[p] = id
			pairs = append(pairs, p)
			trans = append(trans, make([]int, k)...)
		}
		return id
	}

	add(statePair{a.start, b.start})
	for done := 0; done < len(pairs); done++ {
		p := pairs[done]
		for si := 0; si < k; si++ {
			trans[done*k+si] = add(statePair{a.step(p[0], si), b.step(p[1], si)})
		}
	}

	d := &Dfa{
		alphabet: a.alphabet,
		edges:    trans,
		start:    0,
		final:    make([]bool, len(pairs)),
	}
	for id, p := range pairs {
		d.final[id] = accept(a.IsFinal(p[0]), b.IsFinal(p[1]))
	}
	return d, nil
}
