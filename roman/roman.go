// Package roman reads Roman numerals with a parse grammar whose actions
// add up the value of each group of letters.
package roman

import (
	"errors"
	"fmt"

	"github.com/dhamidi/combo/parse"
)

// ErrInvalid is returned for text that is not a Roman numeral.
var ErrInvalid = errors.New("invalid roman numeral")

func value(c byte) int {
	switch c {
	case 'I':
		return 1
	case 'V':
		return 5
	case 'X':
		return 10
	case 'L':
		return 50
	case 'C':
		return 100
	case 'D':
		return 500
	case 'M':
		return 1000
	}
	return 0
}

// addRun adds a run of one repeated letter, e.g. "XXX".
func addRun(text string, ctx any) bool {
	if text == "" {
		return true
	}
	*ctx.(*int) += value(text[0]) * len(text)
	return true
}

// addPair adds a subtractive pair, e.g. "XC".
func addPair(text string, ctx any) bool {
	if len(text) != 2 {
		return false
	}
	*ctx.(*int) += value(text[1]) - value(text[0])
	return true
}

// run matches up to three of c.
func run(c byte, total *int) parse.Parser {
	one := parse.Char(c)
	upTo3 := parse.Optional(parse.And(one, parse.Optional(parse.And(one, parse.Optional(one)))))
	return parse.Exec(upTo3, addRun, total)
}

// single matches at most one c.
func single(c byte, total *int) parse.Parser {
	return parse.Exec(parse.Optional(parse.Char(c)), addRun, total)
}

func pair(s string, total *int) parse.Parser {
	return parse.Try(parse.Exec(parse.Str(s), addPair, total))
}

// digit matches one decimal place: the nine-pair, the four-pair or an
// optional five followed by up to three ones.
func digit(one, five, ten byte, total *int) parse.Parser {
	return parse.Alt(
		pair(string([]byte{one, ten}), total),
		pair(string([]byte{one, five}), total),
		parse.And(single(five, total), run(one, total)),
	)
}

// Parser returns a grammar for a whole Roman numeral up to MMMCMXCIX
// that adds its value to *total when a parse of it succeeds.
func Parser(total *int) parse.Parser {
	return parse.Seq(
		run('M', total),
		digit('C', 'D', 'M', total),
		digit('X', 'L', 'C', total),
		digit('I', 'V', 'X', total),
		parse.EOF(),
	)
}

// Value returns the value of the numeral s.
func Value(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalid)
	}
	total := 0
	if _, ok := parse.Run(Parser(&total), s); !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return total, nil
}
