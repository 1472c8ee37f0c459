package parse

import (
	"fmt"
	"strconv"
)

type blank struct{}

// Blank consumes nothing and always succeeds.
func Blank() Parser { return blank{} }

func (blank) Attempt(s *State) bool {
	s.Mark()
	return true
}

func (blank) String() string { return "blank" }

type null struct{}

// Null consumes nothing and always fails.
func Null() Parser { return null{} }

func (null) Attempt(*State) bool { return false }

func (null) String() string { return "null" }

type eof struct{}

// EOF succeeds only at the end of the input.
func EOF() Parser { return eof{} }

func (eof) Attempt(s *State) bool {
	if !s.Finished() {
		return false
	}
	s.Mark()
	return true
}

func (eof) String() string { return "eof" }

type char struct {
	c byte
}

// Char matches the single character c.
func Char(c byte) Parser { return char{c: c} }

func (p char) Attempt(s *State) bool {
	b, ok := s.Read()
	if !ok || b != p.c {
		return false
	}
	s.Advance(b)
	return true
}

func (p char) String() string {
	return fmt.Sprintf("ch(%s)", strconv.QuoteRune(rune(p.c)))
}

type str struct {
	s string
}

// Str matches the characters of lit one after another. On a mismatch
// the characters matched so far stay consumed.
func Str(lit string) Parser { return str{s: lit} }

func (p str) Attempt(s *State) bool {
	for i := 0; i < len(p.s); i++ {
		b, ok := s.Read()
		if !ok || b != p.s[i] {
			return false
		}
		s.Advance(b)
	}
	s.Mark()
	return true
}

func (p str) String() string {
	return fmt.Sprintf("str(%q)", p.s)
}
