package main

import (
	"fmt"

	"github.com/dhamidi/combo/grammar"
	"github.com/dhamidi/combo/parse"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var grammarFile string
	var startProduction string
	var unanchored bool
	var dump bool
	var on []string

	cmd := &cobra.Command{
		Use:           "match --grammar <file> --start <production> [input...]",
		Short:         "Match inputs against an EBNF grammar",
		Long:          "Match each argument against the grammar. Without arguments standard input is read as a single input.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(grammarFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := []grammar.Option{}
			if !unanchored {
				opts = append(opts, grammar.Anchored())
			}
			for _, name := range on {
				opts = append(opts, grammar.WithAction(name, func(text string, ctx any) bool {
					fmt.Fprintf(out, "  %s %q\n", ctx, text)
					return true
				}, name))
			}

			p, err := grammar.Compile(g, startProduction, opts...)
			if err != nil {
				return err
			}
			if dump {
				fmt.Fprintln(out, parse.Format(p))
			}

			if len(args) == 0 {
				consumed, ok, err := parse.RunReader(p, cmd.InOrStdin())
				if err != nil {
					return err
				}
				report(cmd, "<stdin>", consumed, ok)
				if !ok {
					return fmt.Errorf("input did not match %s", startProduction)
				}
				return nil
			}

			failed := 0
			for _, input := range args {
				consumed, ok := parse.Run(p, input)
				report(cmd, input, consumed, ok)
				if !ok {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs did not match %s", failed, len(args), startProduction)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "EBNF grammar file")
	cmd.Flags().StringVarP(&startProduction, "start", "s", "", "start production")
	cmd.Flags().BoolVar(&unanchored, "unanchored", false, "accept a match of a prefix of the input")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the compiled parser before matching")
	cmd.Flags().StringSliceVar(&on, "on", nil, "print the text matched by these productions")
	cobra.CheckErr(cmd.MarkFlagRequired("grammar"))
	cobra.CheckErr(cmd.MarkFlagRequired("start"))

	return cmd
}

func report(cmd *cobra.Command, input, consumed string, ok bool) {
	if ok {
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "match %q: %q\n", input, consumed)
		return
	}
	color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "no match %q\n", input)
}
