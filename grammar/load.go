// Package grammar turns EBNF grammars into parse.Parser trees.
//
// Grammars use the notation of golang.org/x/exp/ebnf:
//
//	Sum    = Number { "+" Number } .
//	Number = digit { digit } .
//	digit  = "0" … "9" .
//
// Every production becomes a parse.Rule, so productions may refer to
// each other recursively. Alternatives, options and repetitions are
// compiled with parse.Try around each attempt, which gives them PEG
// ordered-choice semantics instead of the engine's commit-on-attempt
// default.
package grammar

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/ebnf"
)

// Load reads and parses an EBNF grammar from a file.
func Load(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(filename, f)
}

// Parse parses an EBNF grammar. filename is only used in error positions.
func Parse(filename string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}
