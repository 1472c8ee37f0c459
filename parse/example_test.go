package parse_test

import (
	"fmt"

	"github.com/dhamidi/combo/parse"
)

func ExampleOr() {
	// Without Try the first branch keeps the "th" it matched.
	fmt.Println(parse.Run(parse.Or(parse.Str("this"), parse.Str("that")), "ththat"))
	fmt.Println(parse.Run(parse.Or(parse.Try(parse.Str("this")), parse.Str("that")), "that"))
	// Output:
	// ththat true
	// that true
}

func ExampleUntil() {
	p := parse.Until(parse.Str("one"))
	fmt.Println(parse.Run(p, "111one"))
	fmt.Println(parse.Run(p, "11111"))
	// Output:
	// 111 true
	// 11111 true
}

func ExampleExec() {
	count := func(text string, ctx any) bool {
		*ctx.(*int) += len(text)
		return true
	}

	var xs, is int
	p := parse.Seq(
		parse.Exec(parse.Many(parse.Char('X')), count, &xs),
		parse.Exec(parse.Many(parse.Char('I')), count, &is),
		parse.EOF(),
	)
	out, ok := parse.Run(p, "XXII")
	fmt.Println(out, ok, 10*xs+is)
	// Output: XXII true 22
}
