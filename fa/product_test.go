package fa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairIntersection(t *testing.T) {
	a := evenOnesDfa(t)
	b := endsInOneDfa(t)
	p, err := Pair(a, b, Intersection)
	require.NoError(t, err)

	for _, w := range allWords("01", 6) {
		require.Equal(t, accepts(t, a, w) && accepts(t, b, w), accepts(t, p, w), "word %q", w)
	}
}

func TestPairUnion(t *testing.T) {
	a := evenOnesDfa(t)
	b := endsInOneDfa(t)
	p, err := Pair(a, b, Union)
	require.NoError(t, err)

	for _, w := range allWords("01", 6) {
		require.Equal(t, accepts(t, a, w) || accepts(t, b, w), accepts(t, p, w), "word %q", w)
	}
}

func TestPairDifference(t *testing.T) {
	a := evenOnesDfa(t)
	b := endsInOneDfa(t)
	p, err := Pair(a, b, Difference)
	require.NoError(t, err)

	for _, w := range allWords("01", 6) {
		require.Equal(t, accepts(t, a, w) && !accepts(t, b, w), accepts(t, p, w), "word %q", w)
	}
}

func TestPairAlwaysAccepting(t *testing.T) {
	one := func() *Dfa {
		d, err := NewDfa(NewAlphabet("01"), []Edge{
			{0, '0', 0},
			{0, '1', 0},
		}, 0, []int{0})
		require.NoError(t, err)
		return d
	}

	p, err := Pair(one(), one(), Intersection)
	require.NoError(t, err)
	require.Equal(t, 1, p.NumStates())
	for _, w := range allWords("01", 4) {
		require.True(t, accepts(t, p, w), "word %q", w)
	}
}

func TestPairAlphabetMismatch(t *testing.T) {
	a := evenOnesDfa(t)
	b, err := NewDfa(NewAlphabet("ab"), nil, 0, nil)
	require.NoError(t, err)

	_, err = Pair(a, b, Intersection)
	require.ErrorIs(t, err, ErrAlphabetMismatch)
}

func TestPairWithSinkComponents(t *testing.T) {
	// a accepts exactly "1", b accepts exactly "0". Their union must keep
	// tracking b after a has fallen into its sink, and vice versa.
	a, err := NewDfa(NewAlphabet("01"), []Edge{{0, '1', 1}}, 0, []int{1})
	require.NoError(t, err)
	b, err := NewDfa(NewAlphabet("01"), []Edge{{0, '0', 1}}, 0, []int{1})
	require.NoError(t, err)

	p, err := Pair(a, b, Union)
	require.NoError(t, err)
	require.True(t, accepts(t, p, "0"))
	require.True(t, accepts(t, p, "1"))
	require.False(t, accepts(t, p, ""))
	require.False(t, accepts(t, p, "01"))
}

func TestPairOnlyReachablePairs(t *testing.T) {
	a := evenOnesDfa(t)
	b := endsInOneDfa(t)
	p, err := Pair(a, b, Intersection)
	require.NoError(t, err)
	// 2x2 component states: every pair happens to be reachable here, and
	// no pair may be materialized twice.
	require.Equal(t, 4, p.NumStates())
}
