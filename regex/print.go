package regex

import "strings"

// Precedence levels for printing: alternation binds loosest, then
// concatenation, then star; single symbols and the ε/∅ markers are atoms.
const (
	precAlternate = iota
	precConcat
	precStar
	precAtom
)

func (n *Node) prec() int {
	switch n.Kind {
	case KAlternate:
		return precAlternate
	case KConcat:
		return precConcat
	case KStar:
		return precStar
	}
	return precAtom
}

// String renders the expression with a minimal set of parentheses.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	switch n.Kind {
	case KEmpty:
		b.WriteString("∅")
	case KEpsilon:
		b.WriteString("ε")
	case KMatch:
		b.WriteRune(n.R)
	case KStar:
		n.Sub[0].renderAtMost(b, precAtom)
		b.WriteByte('*')
	case KConcat:
		n.Sub[0].renderAtMost(b, precConcat)
		n.Sub[1].renderAtMost(b, precConcat)
	case KAlternate:
		n.Sub[0].renderAtMost(b, precAlternate)
		b.WriteByte('|')
		n.Sub[1].renderAtMost(b, precAlternate)
	}
}

func (n *Node) renderAtMost(b *strings.Builder, min int) {
	if n.prec() < min {
		b.WriteByte('(')
		n.render(b)
		b.WriteByte(')')
		return
	}
	n.render(b)
}
