// Package dot writes directed-graph descriptions in the DOT language.
//
// See https://graphviz.gitlab.io/_pages/doc/info/lang.html for the full
// specification. Only the parts needed for drawing automata are covered:
// node statements, edge statements and a small set of attributes.
//
//	$ dot -Tpng input.dot -O
package dot

import (
	"fmt"
	"io"
	"strings"
)

type Family int

const (
	Directed Family = iota
	Undirected
)

func (f Family) name() string {
	if f == Undirected {
		return "graph"
	}
	return "digraph"
}

func (f Family) edgeop() string {
	if f == Undirected {
		return "--"
	}
	return "->"
}

// Node holds optional node attributes. Zero values are not emitted.
type Node struct {
	Label string

	// Peripheries is the number of stacked outline polygons. Accepting
	// automaton states are drawn with two.
	Peripheries int

	Shape string
	Style string
}

// Edge holds optional edge attributes. Zero values are not emitted.
type Edge struct {
	Label string
	Style string
}

// GraphWriter emits one graph onto an io.Writer. Statements are written as
// they are issued; Close terminates the graph.
type GraphWriter struct {
	w      io.Writer
	family Family
}

// NewGraphWriter writes the graph header. An empty name produces an
// anonymous graph.
func NewGraphWriter(w io.Writer, family Family, name string) (*GraphWriter, error) {
	var err error
	if name != "" {
		_, err = fmt.Fprintf(w, "%s %s {\n", family.name(), Quote(name))
	} else {
		_, err = fmt.Fprintf(w, "%s {\n", family.name())
	}
	if err != nil {
		return nil, err
	}
	return &GraphWriter{w: w, family: family}, nil
}

// Node emits a node statement, creating the node or amending its attributes.
func (g *GraphWriter) Node(id string, attrs *Node) error {
	if attrs == nil {
		_, err := fmt.Fprintf(g.w, "\t%s;\n", Quote(id))
		return err
	}
	_, err := fmt.Fprintf(g.w, "\t%s [%s];\n", Quote(id), attrs.list())
	return err
}

// Edge emits an edge statement between two nodes.
func (g *GraphWriter) Edge(from, to string, attrs *Edge) error {
	if attrs == nil {
		_, err := fmt.Fprintf(g.w, "\t%s %s %s;\n", Quote(from), g.family.edgeop(), Quote(to))
		return err
	}
	_, err := fmt.Fprintf(g.w, "\t%s %s %s [%s];\n", Quote(from), g.family.edgeop(), Quote(to), attrs.list())
	return err
}

// Close terminates the graph. The writer must not be used afterwards.
func (g *GraphWriter) Close() error {
	_, err := io.WriteString(g.w, "}\n")
	return err
}

func (n *Node) list() string {
	var attrs []string
	if n.Label != "" {
		attrs = append(attrs, "label="+Quote(n.Label))
	}
	if n.Peripheries != 0 {
		attrs = append(attrs, fmt.Sprintf("peripheries=%d", n.Peripheries))
	}
	if n.Shape != "" {
		attrs = append(attrs, "shape="+Quote(n.Shape))
	}
	if n.Style != "" {
		attrs = append(attrs, "style="+Quote(n.Style))
	}
	return strings.Join(attrs, ",")
}

func (e *Edge) list() string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, "label="+Quote(e.Label))
	}
	if e.Style != "" {
		attrs = append(attrs, "style="+Quote(e.Style))
	}
	return strings.Join(attrs, ",")
}

// Quote encodes s as a DOT ID, choosing between a raw identifier, a numeral
// and a double-quoted string, whichever needs the least escaping.
func Quote(s string) string {
	if s != "" && isNumeral(s) {
		return s
	}
	if s != "" && isIdentifier(s) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func isNumeral(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	for i, c := range s {
		alpha := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if i == 0 && !alpha {
			return false
		}
		if !alpha && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
