package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:           "combo",
		Short:         "Run parser combinator grammars",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newEbnfCmd())
	rootCmd.AddCommand(newRomanCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

// run executes cmd and prints the error it fails with, if any.
func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		printErrors(cmd.ErrOrStderr(), err)
	}
	return err
}

func main() {
	if err := run(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
