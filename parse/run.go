package parse

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"
)

// Result describes a successful parse.
type Result struct {
	Output    string // text consumed by the root parser
	Pos       int    // cursor offset where the root parser stopped
	Actions   int    // number of deferred actions that were run
	ActionsOK bool   // false if any action handler returned false
}

// Run parses input with p. On success it runs every deferred action and
// returns the consumed text. On failure no action runs and the output
// is empty.
func Run(p Parser, input string) (string, bool) {
	res, ok := Execute(p, input)
	return res.Output, ok
}

// Execute is like Run but also reports what the deferred actions did.
// A handler returning false does not make the parse fail.
func Execute(p Parser, input string) (Result, bool) {
	log := commonlog.GetLogger("combo.parse")

	s := NewState(input)
	if !p.Attempt(s) {
		log.Debugf("no match, stopped at %d of %d", s.Pos(), len(input))
		return Result{}, false
	}

	res := Result{Pos: s.Pos(), Actions: s.Pending()}
	res.ActionsOK = s.Drain()
	res.Output, _ = s.Output()
	log.Debugf("matched %d of %d, ran %d actions", s.Pos(), len(input), res.Actions)
	return res, true
}

// RunReader reads r to the end and parses the result with p.
func RunReader(p Parser, r io.Reader) (string, bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", false, fmt.Errorf("read input: %w", err)
	}
	out, ok := Run(p, string(data))
	return out, ok, nil
}
