package fa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// epsToA is the three state NFA with an epsilon edge 0->1 and 1 -a-> 2,
// accepting exactly the word "a".
func epsToA(t *testing.T) *Nfa {
	n, err := NewNfa(NewAlphabet("ab"), []Edge{
		{0, Epsilon, 1},
		{1, 'a', 2},
	}, []int{0}, []int{2})
	require.NoError(t, err)
	return n
}

func TestNfaMembership(t *testing.T) {
	n := epsToA(t)
	require.True(t, accepts(t, n, "a"))
	require.False(t, accepts(t, n, ""))
	require.False(t, accepts(t, n, "b"))
	require.False(t, accepts(t, n, "aa"))
}

func TestNfaInvalidSymbol(t *testing.T) {
	n := epsToA(t)
	_, err := n.Accepts("ax")
	require.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestNfaEmptySubsetStaysEmpty(t *testing.T) {
	n := epsToA(t)
	// "b" empties the subset; nothing can revive it.
	require.False(t, accepts(t, n, "ba"))
	require.False(t, accepts(t, n, "baaaa"))
}

func TestNfaMultipleStartStates(t *testing.T) {
	// Start in 0 or 2; 0 -a-> 1, 2 -b-> 3.
	n, err := NewNfa(NewAlphabet("ab"), []Edge{
		{0, 'a', 1},
		{2, 'b', 3},
	}, []int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	require.True(t, accepts(t, n, "a"))
	require.True(t, accepts(t, n, "b"))
	require.False(t, accepts(t, n, "ab"))
}

func TestClosureMonotonic(t *testing.T) {
	n := epsToA(t)
	c := n.Closure([]int{0})
	require.Subset(t, c, []int{0})
	require.Equal(t, []int{0, 1}, c)
}

func TestClosureIdempotent(t *testing.T) {
	n := epsToA(t)
	c := n.Closure([]int{0})
	require.Equal(t, c, n.Closure(c))
}

func TestClosureEpsilonCycle(t *testing.T) {
	// 0 and 1 form an epsilon cycle; the fixpoint must terminate.
	n, err := NewNfa(NewAlphabet("a"), []Edge{
		{0, Epsilon, 1},
		{1, Epsilon, 0},
		{1, 'a', 2},
	}, []int{0}, []int{2})
	require.NoError(t, err)

	require.Equal(t, []int{0, 1}, n.Closure([]int{0}))
	require.Equal(t, []int{0, 1}, n.Closure([]int{1}))
	require.True(t, accepts(t, n, "a"))
	require.False(t, accepts(t, n, ""))
}

func TestClosureEmptySet(t *testing.T) {
	n := epsToA(t)
	require.Empty(t, n.Closure(nil))
}

func TestNfaMalformed(t *testing.T) {
	alphabet := NewAlphabet("ab")

	_, err := NewNfa(alphabet, nil, nil, nil)
	require.ErrorIs(t, err, ErrMalformedAutomaton)

	_, err = NewNfa(alphabet, []Edge{{0, 'x', 1}}, []int{0}, nil)
	require.ErrorIs(t, err, ErrMalformedAutomaton)

	_, err = NewNfa(alphabet, []Edge{{0, 'a', -2}}, []int{0}, nil)
	require.ErrorIs(t, err, ErrMalformedAutomaton)

	_, err = NewNfa(alphabet, nil, []int{0}, []int{-1})
	require.ErrorIs(t, err, ErrMalformedAutomaton)
}
