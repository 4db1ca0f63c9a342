package cmd

import "github.com/nahomanteneh/gitlet/internal/vcs"

func init() {
	rootCmd.AddCommand(NewCommand(
		"branch <name>",
		"Create a new branch pointing at the current head commit",
		func(repo *vcs.Repository, args []string) error {
			return repo.Branch(args[0])
		},
		1,
	))
}
