package cmd

import (
	"github.com/nahomanteneh/gitlet/core"
	"github.com/spf13/cobra"
)

// checkoutCmd implements all three checkout forms by inspecting its raw
// argument list directly (flag parsing is disabled so a literal "--"
// survives) rather than declaring cobra flags, since the three forms share
// no common flag shape.
var checkoutCmd = &cobra.Command{
	Use:                "checkout",
	Short:              "Restore a file from a commit, or switch branches",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		switch {
		case len(args) == 2 && args[0] == "--":
			return repo.CheckoutFile(args[1])
		case len(args) == 3 && args[1] == "--":
			return repo.CheckoutCommitFile(args[0], args[2])
		case len(args) == 1:
			return repo.CheckoutBranch(args[0])
		default:
			return core.NewUserError("Incorrect operands.")
		}
	},
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
}
