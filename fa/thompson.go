package fa

import (
	"fmt"

	"automata/regex"
)

// FromRegex builds an NFA accepting exactly the language of the expression,
// by composing a sub-automaton with one start and one end node per regex
// operation. Symbols matched by the expression must belong to the alphabet.
func FromRegex(alphabet Alphabet, re *regex.Node) (*Nfa, error) {
	b := &thompsonBuilder{alphabet: alphabet}
	start, end, err := b.build(re)
	if err != nil {
		return nil, err
	}
	return NewNfa(alphabet, b.edges, []int{start}, []int{end})
}

type thompsonBuilder struct {
	alphabet Alphabet
	edges    []Edge
	n        int
}

func (b *thompsonBuilder) newNode() int {
	id := b.n
	b.n++
	return id
}

func (b *thompsonBuilder) edge(from int, label rune, to int) {
	b.edges = append(b.edges, Edge{From: from, Label: label, To: to})
}

func (b *thompsonBuilder) build(re *regex.Node) (start, end int, err error) {
	switch re.Kind {
	case regex.KEmpty:
		// Two fresh nodes with no connection accept nothing.
		return b.newNode(), b.newNode(), nil

	case regex.KEpsilon:
		start, end = b.newNode(), b.newNode()
		b.edge(start, Epsilon, end)
		return start, end, nil

	case regex.KMatch:
		if !b.alphabet.Contains(re.R) {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, re.R)
		}
		start, end = b.newNode(), b.newNode()
		b.edge(start, re.R, end)
		return start, end, nil

	case regex.KStar:
		subStart, subEnd, err := b.build(re.Sub[0])
		if err != nil {
			return 0, 0, err
		}
		start, end = b.newNode(), b.newNode()
		b.edge(start, Epsilon, subStart)
		b.edge(start, Epsilon, end)
		b.edge(subEnd, Epsilon, subStart)
		b.edge(subEnd, Epsilon, end)
		return start, end, nil

	case regex.KConcat:
		aStart, aEnd, err := b.build(re.Sub[0])
		if err != nil {
			return 0, 0, err
		}
		bStart, bEnd, err := b.build(re.Sub[1])
		if err != nil {
			return 0, 0, err
		}
		b.edge(aEnd, Epsilon, bStart)
		return aStart, bEnd, nil

	case regex.KAlternate:
		aStart, aEnd, err := b.build(re.Sub[0])
		if err != nil {
			return 0, 0, err
		}
		bStart, bEnd, err := b.build(re.Sub[1])
		if err != nil {
			return 0, 0, err
		}
		start, end = b.newNode(), b.newNode()
		b.edge(start, Epsilon, aStart)
		b.edge(start, Epsilon, bStart)
		b.edge(aEnd, Epsilon, end)
		b.edge(bEnd, Epsilon, end)
		return start, end, nil
	}
	return 0, 0, fmt.Errorf("%w: unknown regex kind %d", ErrMalformedAutomaton, re.Kind)
}
