// Package parse is a small parser combinator engine.
//
// Grammars are built from primitives (Blank, Null, EOF, Char, Str) and
// combinators (And, Or, Many, Optional, Try, Until, Exec) and executed
// with Run. A parse yields the consumed text and, on success, runs the
// handlers attached with Exec in the order they were registered.
//
// Primitives commit to whatever they consume: a Str that matches "th"
// of "this" before failing leaves "th" consumed, and an Or tries its
// second branch from there. Wrap a branch in Try to get clean-slate
// alternation.
package parse

import (
	"fmt"
	"strings"
)

// Parser is implemented by every grammar node. Attempt reports whether
// the parser matched at the State's cursor, mutating the State as it
// goes. Implementations must not keep per-parse state of their own.
type Parser interface {
	Attempt(s *State) bool
}

// parent is implemented by parsers that own sub-parsers.
type parent interface {
	children() []Parser
}

// Rule is a named parser whose body is supplied after construction, so
// grammars can refer to themselves.
type Rule struct {
	Name string
	body Parser
}

// NewRule creates an undefined rule. Attempting it before Define fails.
func NewRule(name string) *Rule {
	return &Rule{Name: name}
}

// Define sets the rule's body.
func (r *Rule) Define(p Parser) {
	r.body = p
}

// Body returns the parser set with Define, or nil.
func (r *Rule) Body() Parser {
	return r.body
}

func (r *Rule) Attempt(s *State) bool {
	if r.body == nil {
		return false
	}
	return r.body.Attempt(s)
}

func (r *Rule) String() string {
	return r.Name
}

// Walk calls fn for p and, depth first, for every parser it owns. Each
// Rule is visited once no matter how often it is referenced. If fn
// returns false the children of that node are skipped.
func Walk(p Parser, fn func(Parser) bool) {
	seen := make(map[*Rule]bool)
	var walk func(Parser)
	walk = func(p Parser) {
		if p == nil {
			return
		}
		if r, ok := p.(*Rule); ok {
			if seen[r] {
				return
			}
			seen[r] = true
		}
		if !fn(p) {
			return
		}
		switch n := p.(type) {
		case *Rule:
			walk(n.body)
		case parent:
			for _, c := range n.children() {
				walk(c)
			}
		}
	}
	walk(p)
}

// Format renders p in constructor notation, followed by one
// "name = body" line for every rule reachable from p.
func Format(p Parser) string {
	var b strings.Builder
	fmt.Fprint(&b, p)

	var rules []*Rule
	Walk(p, func(n Parser) bool {
		if r, ok := n.(*Rule); ok {
			rules = append(rules, r)
		}
		return true
	})
	for _, r := range rules {
		fmt.Fprintf(&b, "\n%s = %v", r.Name, r.body)
	}
	return b.String()
}
