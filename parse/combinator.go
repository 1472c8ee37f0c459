package parse

import "fmt"

type and struct {
	first, second Parser
}

// And matches first and then second. It does not undo what first
// consumed when second fails.
func And(first, second Parser) Parser {
	return &and{first: first, second: second}
}

func (p *and) Attempt(s *State) bool {
	if !p.first.Attempt(s) {
		return false
	}
	return p.second.Attempt(s)
}

func (p *and) children() []Parser { return []Parser{p.first, p.second} }

func (p *and) String() string {
	return fmt.Sprintf("and(%v, %v)", p.first, p.second)
}

type or struct {
	first, second Parser
}

// Or matches first, or else second from wherever first stopped.
func Or(first, second Parser) Parser {
	return &or{first: first, second: second}
}

func (p *or) Attempt(s *State) bool {
	if p.first.Attempt(s) {
		return true
	}
	return p.second.Attempt(s)
}

func (p *or) children() []Parser { return []Parser{p.first, p.second} }

func (p *or) String() string {
	return fmt.Sprintf("or(%v, %v)", p.first, p.second)
}

// Seq chains ps with And, nesting to the right. Seq() is Blank.
func Seq(ps ...Parser) Parser {
	return fold(ps, Blank(), And)
}

// Alt chains ps with Or, nesting to the right. Alt() is Null.
func Alt(ps ...Parser) Parser {
	return fold(ps, Null(), Or)
}

func fold(ps []Parser, empty Parser, join func(Parser, Parser) Parser) Parser {
	if len(ps) == 0 {
		return empty
	}
	p := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		p = join(ps[i], p)
	}
	return p
}

type many struct {
	target Parser
}

// Many matches target zero or more times and always succeeds. A target
// that can succeed without consuming input makes Many loop forever.
func Many(target Parser) Parser {
	return &many{target: target}
}

func (p *many) Attempt(s *State) bool {
	s.Mark()
	for p.target.Attempt(s) {
	}
	return true
}

func (p *many) children() []Parser { return []Parser{p.target} }

func (p *many) String() string {
	return fmt.Sprintf("many(%v)", p.target)
}

type optional struct {
	target Parser
}

// Optional matches target or nothing. It fails only when target fails
// after consuming input.
func Optional(target Parser) Parser {
	return &optional{target: target}
}

func (p *optional) Attempt(s *State) bool {
	pos := s.Pos()
	if !p.target.Attempt(s) && s.Pos() != pos {
		return false
	}
	s.Mark()
	return true
}

func (p *optional) children() []Parser { return []Parser{p.target} }

func (p *optional) String() string {
	return fmt.Sprintf("optional(%v)", p.target)
}

type try struct {
	target Parser
}

// Try matches target, restoring the State completely if it fails.
func Try(target Parser) Parser {
	return &try{target: target}
}

func (p *try) Attempt(s *State) bool {
	snap := s.Snapshot()
	if p.target.Attempt(s) {
		return true
	}
	s.Restore(snap)
	return false
}

func (p *try) children() []Parser { return []Parser{p.target} }

func (p *try) String() string {
	return fmt.Sprintf("try(%v)", p.target)
}

type until struct {
	target Parser
}

// Until consumes input up to the first position where target would
// match, without consuming the match itself. If target never matches it
// consumes the rest of the input. It never fails.
func Until(target Parser) Parser {
	return &until{target: target}
}

func (p *until) Attempt(s *State) bool {
	for !s.Finished() {
		snap := s.Snapshot()
		found := p.target.Attempt(s)
		s.Restore(snap)
		if found {
			break
		}
		c, _ := s.Read()
		s.Advance(c)
	}
	s.Mark()
	return true
}

func (p *until) children() []Parser { return []Parser{p.target} }

func (p *until) String() string {
	return fmt.Sprintf("until(%v)", p.target)
}

type exec struct {
	target  Parser
	handler Handler
	ctx     any
}

// Exec matches target and, if it does, queues handler to be called
// with the text target consumed once the whole parse has succeeded.
// Actions queued by target itself run before handler. If target fails
// nothing it produced is kept except the cursor movement.
func Exec(target Parser, handler Handler, ctx any) Parser {
	return &exec{target: target, handler: handler, ctx: ctx}
}

func (p *exec) Attempt(s *State) bool {
	snap := s.Snapshot()
	if !p.target.Attempt(s) {
		s.rollback(snap)
		return false
	}
	s.Register(p.handler, s.since(snap), p.ctx)
	s.Mark()
	return true
}

func (p *exec) children() []Parser { return []Parser{p.target} }

func (p *exec) String() string {
	return fmt.Sprintf("exe(%v)", p.target)
}
