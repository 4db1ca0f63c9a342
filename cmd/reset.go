package cmd

import "github.com/nahomanteneh/gitlet/internal/vcs"

func init() {
	rootCmd.AddCommand(NewCommand(
		"reset <commit>",
		"Reset the working tree, staging area, and current branch to a commit",
		func(repo *vcs.Repository, args []string) error {
			return repo.Reset(args[0])
		},
		1,
	))
}
