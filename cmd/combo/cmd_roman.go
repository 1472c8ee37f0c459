package main

import (
	"fmt"

	"github.com/dhamidi/combo/roman"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRomanCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "roman <numeral>...",
		Short:         "Print the value of Roman numerals",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, numeral := range args {
				v, err := roman.Value(numeral)
				if err != nil {
					color.New(color.FgRed).Fprintln(cmd.OutOrStdout(), err)
					invalid++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", numeral, v)
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d numerals are invalid", invalid, len(args))
			}
			return nil
		},
	}
}
