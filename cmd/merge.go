package cmd

import (
	"fmt"

	"github.com/nahomanteneh/gitlet/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewCommand(
		"merge <branch>",
		"Merge another branch into the current branch",
		func(repo *vcs.Repository, args []string) error {
			result, err := repo.Merge(args[0])
			if err != nil {
				return err
			}
			switch {
			case result.AlreadyAncestor:
				fmt.Println("Given branch is an ancestor of the current branch.")
			case result.FastForwarded:
				fmt.Println("Current branch fast-forwarded.")
			default:
				if result.HadConflict {
					fmt.Println("Encountered a merge conflict.")
				}
			}
			return nil
		},
		1,
	))
}
