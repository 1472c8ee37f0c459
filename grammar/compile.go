package grammar

import (
	"fmt"

	"github.com/dhamidi/combo/parse"
	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"
)

type action struct {
	handler parse.Handler
	ctx     any
}

type compiler struct {
	grammar  ebnf.Grammar
	rules    map[string]*parse.Rule
	actions  map[string]action
	anchored bool
}

// Option configures Compile.
type Option func(*compiler)

// WithAction attaches handler to the named production. Every time the
// production matches on the successful path, handler receives the text
// it consumed once the whole parse has succeeded.
func WithAction(production string, handler parse.Handler, ctx any) Option {
	return func(c *compiler) {
		c.actions[production] = action{handler: handler, ctx: ctx}
	}
}

// Anchored requires the start production to consume the whole input.
func Anchored() Option {
	return func(c *compiler) {
		c.anchored = true
	}
}

// Compile verifies g from the start production and builds a parser
// for it.
func Compile(g ebnf.Grammar, start string, opts ...Option) (parse.Parser, error) {
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	c := &compiler{
		grammar: g,
		rules:   make(map[string]*parse.Rule, len(g)),
		actions: make(map[string]action),
	}
	for _, opt := range opts {
		opt(c)
	}
	for name := range c.actions {
		if _, ok := g[name]; !ok {
			return nil, fmt.Errorf("action for unknown production %q", name)
		}
	}

	for name := range g {
		c.rules[name] = parse.NewRule(name)
	}
	for name, prod := range g {
		body, err := c.expr(prod.Expr)
		if err != nil {
			return nil, fmt.Errorf("production %s: %w", name, err)
		}
		if a, ok := c.actions[name]; ok {
			body = parse.Exec(body, a.handler, a.ctx)
		}
		c.rules[name].Define(body)
	}

	commonlog.GetLogger("combo.grammar").Debugf("compiled %d productions from %q", len(g), start)

	var root parse.Parser = c.rules[start]
	if c.anchored {
		root = parse.And(root, parse.EOF())
	}
	return root, nil
}

func (c *compiler) expr(expr ebnf.Expression) (parse.Parser, error) {
	switch e := expr.(type) {
	case nil:
		// empty production
		return parse.Blank(), nil

	case ebnf.Alternative:
		alts, err := c.list(e)
		if err != nil {
			return nil, err
		}
		// every branch but the last must leave no trace when it fails
		for i := 0; i < len(alts)-1; i++ {
			alts[i] = parse.Try(alts[i])
		}
		return parse.Alt(alts...), nil

	case ebnf.Sequence:
		seq, err := c.list(e)
		if err != nil {
			return nil, err
		}
		return parse.Seq(seq...), nil

	case *ebnf.Name:
		r, ok := c.rules[e.String]
		if !ok {
			return nil, fmt.Errorf("%s: undefined production %q", e.Pos(), e.String)
		}
		return r, nil

	case *ebnf.Token:
		if len(e.String) == 1 {
			return parse.Char(e.String[0]), nil
		}
		return parse.Str(e.String), nil

	case *ebnf.Range:
		return c.charRange(e)

	case *ebnf.Group:
		return c.expr(e.Body)

	case *ebnf.Option:
		body, err := c.expr(e.Body)
		if err != nil {
			return nil, err
		}
		return parse.Optional(parse.Try(body)), nil

	case *ebnf.Repetition:
		if c.nullable(e.Body, map[string]bool{}) {
			return nil, fmt.Errorf("%s: repetition body can match empty input", e.Pos())
		}
		body, err := c.expr(e.Body)
		if err != nil {
			return nil, err
		}
		return parse.Many(parse.Try(body)), nil

	case *ebnf.Bad:
		return nil, fmt.Errorf("%s: %s", e.Pos(), e.Error)
	}

	return nil, fmt.Errorf("%s: unsupported expression %T", expr.Pos(), expr)
}

func (c *compiler) list(exprs []ebnf.Expression) ([]parse.Parser, error) {
	ps := make([]parse.Parser, 0, len(exprs))
	for _, e := range exprs {
		p, err := c.expr(e)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// charRange expands "a" … "z" into an alternation of single characters.
// The engine matches bytes, so both ends must be single bytes.
func (c *compiler) charRange(r *ebnf.Range) (parse.Parser, error) {
	begin, end := r.Begin.String, r.End.String
	if len(begin) != 1 || len(end) != 1 {
		return nil, fmt.Errorf("%s: range %q … %q is not a single-byte range", r.Pos(), begin, end)
	}
	chars := make([]parse.Parser, 0, int(end[0]-begin[0])+1)
	for b := int(begin[0]); b <= int(end[0]); b++ {
		chars = append(chars, parse.Char(byte(b)))
	}
	return parse.Alt(chars...), nil
}

// nullable reports whether expr can match without consuming input. A
// repetition over such a body would never stop. Productions already
// being visited count as non-nullable.
func (c *compiler) nullable(expr ebnf.Expression, visiting map[string]bool) bool {
	switch e := expr.(type) {
	case nil:
		return true
	case ebnf.Alternative:
		for _, x := range e {
			if c.nullable(x, visiting) {
				return true
			}
		}
		return false
	case ebnf.Sequence:
		for _, x := range e {
			if !c.nullable(x, visiting) {
				return false
			}
		}
		return true
	case *ebnf.Name:
		prod, ok := c.grammar[e.String]
		if !ok || visiting[e.String] {
			return false
		}
		visiting[e.String] = true
		defer delete(visiting, e.String)
		return c.nullable(prod.Expr, visiting)
	case *ebnf.Token:
		return e.String == ""
	case *ebnf.Group:
		return c.nullable(e.Body, visiting)
	case *ebnf.Option, *ebnf.Repetition:
		return true
	}
	return false
}
