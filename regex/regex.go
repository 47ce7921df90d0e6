// Package regex models regular expressions over a finite alphabet as a small
// recursive variant. Construction goes through the New* functions, which fold
// away trivial subterms (concatenation with ε, alternation with ∅, nested
// stars) so that expressions produced by state elimination stay readable.
package regex

// Expression kinds.
const (
	KEmpty = iota // matches no word at all
	KEpsilon
	KMatch
	KStar
	KConcat
	KAlternate
)

// Node is one operation of a regular expression. Nodes are immutable after
// construction and may be shared between expressions.
type Node struct {
	Kind int
	R    rune    // Rune for KMatch nodes.
	Sub  []*Node // One child for KStar, two for KConcat/KAlternate.
}

func NewEmpty() *Node {
	return &Node{Kind: KEmpty}
}

func NewEpsilon() *Node {
	return &Node{Kind: KEpsilon}
}

func NewMatch(r rune) *Node {
	return &Node{Kind: KMatch, R: r}
}

// NewStar builds a* with ∅* = ε* = ε and (a*)* = a*.
func NewStar(sub *Node) *Node {
	switch sub.Kind {
	case KEmpty, KEpsilon:
		return NewEpsilon()
	case KStar:
		return sub
	}
	return &Node{Kind: KStar, Sub: []*Node{sub}}
}

// NewConcat builds ab with ∅ annihilating and ε dropped.
func NewConcat(a, b *Node) *Node {
	if a.Kind == KEmpty || b.Kind == KEmpty {
		return NewEmpty()
	}
	if a.Kind == KEpsilon {
		return b
	}
	if b.Kind == KEpsilon {
		return a
	}
	return &Node{Kind: KConcat, Sub: []*Node{a, b}}
}

// NewAlternate builds a|b with ∅ dropped and equal branches merged.
func NewAlternate(a, b *Node) *Node {
	if a.Kind == KEmpty {
		return b
	}
	if b.Kind == KEmpty {
		return a
	}
	if Equal(a, b) {
		return a
	}
	return &Node{Kind: KAlternate, Sub: []*Node{a, b}}
}

// Equal reports structural equality.
func Equal(a, b *Node) bool {
	if a.Kind != b.Kind || a.R != b.R || len(a.Sub) != len(b.Sub) {
		return false
	}
	for i := range a.Sub {
		if !Equal(a.Sub[i], b.Sub[i]) {
			return false
		}
	}
	return true
}
