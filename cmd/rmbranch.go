package cmd

import "github.com/nahomanteneh/gitlet/internal/vcs"

func init() {
	rootCmd.AddCommand(NewCommand(
		"rm-branch <name>",
		"Delete a branch pointer",
		func(repo *vcs.Repository, args []string) error {
			return repo.RmBranch(args[0])
		},
		1,
	))
}
