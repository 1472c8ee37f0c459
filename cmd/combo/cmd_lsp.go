package main

import (
	"github.com/dhamidi/combo/grammar"
	"github.com/dhamidi/combo/lsp"
	"github.com/dhamidi/combo/parse"
	"github.com/dhamidi/combo/roman"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var grammarFile string
	var startProduction string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a Language Server that checks each line against a grammar",
		Long:  "Start a Language Server on stdio. Each line of an open document must match the grammar; without --grammar, lines must be Roman numerals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var p parse.Parser
			if grammarFile == "" {
				p = roman.Parser(new(int))
			} else {
				g, err := grammar.Load(grammarFile)
				if err != nil {
					return err
				}
				p, err = grammar.Compile(g, startProduction)
				if err != nil {
					return err
				}
			}

			server := lsp.NewServer("combo", "0.1.0", p)
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "EBNF grammar file")
	cmd.Flags().StringVarP(&startProduction, "start", "s", "", "start production")

	return cmd
}
