package dot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	require.Equal(t, "abc", Quote("abc"))
	require.Equal(t, "_x1", Quote("_x1"))
	require.Equal(t, "0", Quote("0"))
	require.Equal(t, "123", Quote("123"))
	require.Equal(t, `"a string with spaces"`, Quote("a string with spaces"))
	require.Equal(t, `"\""`, Quote(`"`))
	require.Equal(t, `""`, Quote(""))
	require.Equal(t, `"1x"`, Quote("1x"))
	require.Equal(t, `"ε"`, Quote("ε"))
}

func TestGraphWriter(t *testing.T) {
	var b strings.Builder
	g, err := NewGraphWriter(&b, Directed, "sample")
	require.NoError(t, err)

	require.NoError(t, g.Node("0", &Node{Peripheries: 2}))
	require.NoError(t, g.Node("1", nil))
	require.NoError(t, g.Node("init", &Node{Shape: "point", Style: "invis"}))
	require.NoError(t, g.Edge("0", "1", &Edge{Label: "a"}))
	require.NoError(t, g.Edge("init", "0", nil))
	require.NoError(t, g.Close())

	require.Equal(t, `digraph sample {
	0 [peripheries=2];
	1;
	init [shape=point,style=invis];
	0 -> 1 [label=a];
	init -> 0;
}
`, b.String())
}

func TestAnonymousUndirectedGraph(t *testing.T) {
	var b strings.Builder
	g, err := NewGraphWriter(&b, Undirected, "")
	require.NoError(t, err)
	require.NoError(t, g.Edge("a", "b", nil))
	require.NoError(t, g.Close())

	require.Equal(t, "graph {\n\ta -- b;\n}\n", b.String())
}
