package exec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleNfa = `
kind: nfa
alphabet: ab
edges:
  - {from: 0, to: 1}
  - {from: 1, label: a, to: 2}
start: [0]
final: [2]
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleNfa), 0666))
	return path
}

func TestParseParams(t *testing.T) {
	p, err := ParseParams("automata", "-todfa", "-dot", "out.dot", "in.yaml", "a", "ab")
	require.NoError(t, err)
	require.True(t, p.ToDfa)
	require.Equal(t, "out.dot", p.DotOutputFilename)
	require.Equal(t, "in.yaml", p.InputFilename)
	require.Equal(t, []string{"a", "ab"}, p.Words)
}

func TestParseParamsNeedsInput(t *testing.T) {
	_, err := ParseParams("automata")
	require.Error(t, err)
}

func TestExecuteMatch(t *testing.T) {
	var out strings.Builder
	err := ExecuteWithParams(&Params{
		InputFilename: writeSample(t),
		Words:         []string{"a", "b", ""},
		Stdout:        &out,
	})
	require.NoError(t, err)
	require.Equal(t, "\"a\": accept\n\"b\": reject\n\"\": reject\n", out.String())
}

func TestExecuteToRegex(t *testing.T) {
	var out strings.Builder
	err := ExecuteWithParams(&Params{
		InputFilename: writeSample(t),
		ToRegex:       true,
		Stdout:        &out,
	})
	require.NoError(t, err)
	require.Equal(t, "a\n", out.String())
}

func TestExecuteDotOutput(t *testing.T) {
	dotFile := filepath.Join(t.TempDir(), "out.dot")
	err := ExecuteWithParams(&Params{
		InputFilename:     writeSample(t),
		DotOutputFilename: dotFile,
		Stdout:            &strings.Builder{},
	})
	require.NoError(t, err)

	out, err := os.ReadFile(dotFile)
	require.NoError(t, err)
	require.Contains(t, string(out), "digraph automaton {")
}

func TestExecuteTodfa(t *testing.T) {
	var out strings.Builder
	err := ExecuteWithParams(&Params{
		InputFilename: writeSample(t),
		ToDfa:         true,
		Words:         []string{"a", "aa"},
		Stdout:        &out,
	})
	require.NoError(t, err)
	require.Equal(t, "\"a\": accept\n\"aa\": reject\n", out.String())
}

func TestExecuteStdin(t *testing.T) {
	var out strings.Builder
	err := ExecuteWithParams(&Params{
		InputFilename: "-",
		Stdin:         strings.NewReader(sampleNfa),
		Words:         []string{"a"},
		Stdout:        &out,
	})
	require.NoError(t, err)
	require.Equal(t, "\"a\": accept\n", out.String())
}

func TestExecuteInvalidWord(t *testing.T) {
	err := ExecuteWithParams(&Params{
		InputFilename: writeSample(t),
		Words:         []string{"xyz"},
		Stdout:        &strings.Builder{},
	})
	require.Error(t, err)
}
