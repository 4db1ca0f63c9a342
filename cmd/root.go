package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/nahomanteneh/gitlet/core"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "gitlet",
	Short:         "Gitlet is a miniature, content-addressed version-control system",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	// A runnable root with ArbitraryArgs means cobra hands an unmatched
	// first token to this RunE rather than failing command resolution
	// with its own "unknown command" error, so that case has to be told
	// apart from bare "gitlet" here rather than by inspecting the error
	// cobra.Execute returns.
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return core.NewUserError("Please enter a command.")
		}
		return core.NewUserError("No command with that name exists.")
	},
}

// Execute runs the root command, printing any error's message to stderr
// and exiting with code 1, or exiting 0 on success.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
