package cmd

import "github.com/nahomanteneh/gitlet/internal/vcs"

func init() {
	rootCmd.AddCommand(NewCommand(
		"commit <message>",
		"Record the staged changes as a new commit",
		func(repo *vcs.Repository, args []string) error {
			return repo.Commit(args[0])
		},
		1,
	))
}
