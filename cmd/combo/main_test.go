package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := run(cmd)
	return out.String(), err
}

func writeGrammar(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grammar.ebnf")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

const sumGrammar = `
Sum    = Number { "+" Number } .
Number = digit { digit } .
digit  = "0" … "9" .
`

func TestMatchCmd(t *testing.T) {
	path := writeGrammar(t, sumGrammar)

	out, err := execute(t, "", "match", "-g", path, "-s", "Sum", "--on", "Number", "1+23")
	require.NoError(t, err)
	assert.Contains(t, out, `Number "1"`)
	assert.Contains(t, out, `Number "23"`)
	assert.Contains(t, out, `match "1+23": "1+23"`)

	out, err = execute(t, "", "match", "-g", path, "-s", "Sum", "1+", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 inputs")
	assert.Contains(t, out, `no match "1+"`)
	assert.Contains(t, out, `match "2": "2"`)
	assert.Contains(t, out, "1 of 2 inputs did not match Sum")

	out, err = execute(t, "", "match", "--unanchored", "-g", path, "-s", "Sum", "1+")
	require.NoError(t, err)
	assert.Contains(t, out, `match "1+": "1"`)
}

func TestMatchCmdErrors(t *testing.T) {
	path := writeGrammar(t, sumGrammar)

	tests := map[string]struct {
		args []string
		err  string
	}{
		"missing grammar file": {
			args: []string{"match", "-g", filepath.Join(t.TempDir(), "missing.ebnf"), "-s", "Sum", "1"},
			err:  "open grammar",
		},
		"unknown start": {
			args: []string{"match", "-g", path, "-s", "Nope", "1"},
			err:  "no start production Nope",
		},
		"missing flags": {
			args: []string{"match", "1"},
			err:  `required flag(s) "grammar", "start" not set`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, "", test.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.err)
			assert.Contains(t, out, test.err)
		})
	}
}

func TestMatchCmdStdin(t *testing.T) {
	path := writeGrammar(t, sumGrammar)

	out, err := execute(t, "4+5", "match", "-g", path, "-s", "Sum", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "Sum = ")
	assert.Contains(t, out, `match "<stdin>": "4+5"`)
}

func TestEbnfCheckCmd(t *testing.T) {
	path := writeGrammar(t, sumGrammar)
	_, err := execute(t, "", "ebnf", "check", "--start", "Sum", path)
	require.NoError(t, err)

	out, err := execute(t, "", "ebnf", "check", "--start", "Number", path)
	require.Error(t, err)
	assert.Contains(t, out, "unreachable")
}

func TestRomanCmd(t *testing.T) {
	out, err := execute(t, "", "roman", "XCII", "MCLXVII")
	require.NoError(t, err)
	assert.Equal(t, "XCII\t92\nMCLXVII\t1167\n", out)

	out, err = execute(t, "", "roman", "IIV", "VV")
	require.Error(t, err)
	assert.Contains(t, out, "invalid roman numeral")
	assert.Contains(t, out, "2 of 2 numerals are invalid")
}
