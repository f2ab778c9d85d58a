package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the minic command with its own configuration so that
// separate invocations (and tests) do not share flag state.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "minic <file.c>",
		Short: "minic lexical analyser",
		Long:  "minic tokenizes a C-like source file and prints one token per line: kind, row, column and value.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &UsageError{Message: err.Error()}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLex(cmd, args, v)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Message: err.Error()}
	})

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Print a token summary to stderr")
	cmd.PersistentFlags().Bool("debug", false, "Debug output")
	cmd.Flags().String("ext", ".c", "Required source file extension")
	cmd.Flags().Bool("comments", true, "Print comment tokens")

	_ = v.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("ext", cmd.Flags().Lookup("ext"))
	_ = v.BindPFlag("comments", cmd.Flags().Lookup("comments"))

	v.SetEnvPrefix("MINIC")
	v.AutomaticEnv()

	return cmd
}
