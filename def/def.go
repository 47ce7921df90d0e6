// Package def loads automaton definitions from YAML documents. It is the
// construction boundary: everything is validated here, so the engines in
// package fa receive only well-formed automata.
//
// A definition looks like:
//
//	kind: nfa
//	alphabet: ab
//	edges:
//	  - {from: 0, to: 1}          # no label: epsilon transition
//	  - {from: 1, label: a, to: 2}
//	start: [0]
//	final: [2]
package def

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"automata/fa"
	"automata/regex"
)

// Document is the YAML shape of one automaton definition.
type Document struct {
	Kind     string    `yaml:"kind"` // "dfa" or "nfa"
	Alphabet string    `yaml:"alphabet"`
	Edges    []EdgeDef `yaml:"edges"`
	Start    []int     `yaml:"start"`
	Final    []int     `yaml:"final"`
}

// EdgeDef is one transition. An absent label denotes an epsilon transition,
// which is only legal for NFAs.
type EdgeDef struct {
	From  int    `yaml:"from"`
	Label string `yaml:"label,omitempty"`
	To    int    `yaml:"to"`
}

// Automaton is the closed set of automaton variants: exactly one of the two
// fields is set. Operations shared by both kinds switch over the variant.
type Automaton struct {
	Dfa *fa.Dfa
	Nfa *fa.Nfa
}

// Load decodes and validates one definition.
func Load(r io.Reader) (*Automaton, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	return doc.Build()
}

// LoadFile decodes and validates the definition in the named file.
func LoadFile(path string) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definition: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

// Build constructs the automaton the document describes.
func (doc *Document) Build() (*Automaton, error) {
	alphabet := fa.NewAlphabet(doc.Alphabet)

	edges := make([]fa.Edge, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		label := fa.Epsilon
		if e.Label != "" {
			runes := []rune(e.Label)
			if len(runes) != 1 {
				return nil, fmt.Errorf("%w: edge label %q is not a single symbol",
					fa.ErrMalformedAutomaton, e.Label)
			}
			label = runes[0]
		}
		edges = append(edges, fa.Edge{From: e.From, Label: label, To: e.To})
	}

	switch doc.Kind {
	case "dfa":
		if len(doc.Start) != 1 {
			return nil, fmt.Errorf("%w: a dfa needs exactly one start state", fa.ErrMalformedAutomaton)
		}
		d, err := fa.NewDfa(alphabet, edges, doc.Start[0], doc.Final)
		if err != nil {
			return nil, err
		}
		return &Automaton{Dfa: d}, nil
	case "nfa":
		n, err := fa.NewNfa(alphabet, edges, doc.Start, doc.Final)
		if err != nil {
			return nil, err
		}
		return &Automaton{Nfa: n}, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", fa.ErrMalformedAutomaton, doc.Kind)
}

// Accepts answers membership for either variant.
func (a *Automaton) Accepts(word string) (bool, error) {
	if a.Dfa != nil {
		return a.Dfa.Accepts(word)
	}
	return a.Nfa.Accepts(word)
}

// WriteDot exports either variant as a DOT graph.
func (a *Automaton) WriteDot(w io.Writer, name string) error {
	if a.Dfa != nil {
		return a.Dfa.WriteDot(w, name)
	}
	return a.Nfa.WriteDot(w, name)
}

// ToRegex converts either variant into an equivalent regular expression.
func (a *Automaton) ToRegex() *regex.Node {
	if a.Dfa != nil {
		return a.Dfa.ToRegex()
	}
	return a.Nfa.ToRegex()
}

// Determinize returns the automaton as a deterministic one, converting by
// subset construction when needed.
func (a *Automaton) Determinize() *Automaton {
	if a.Dfa != nil {
		return a
	}
	return &Automaton{Dfa: a.Nfa.ToDfa()}
}
