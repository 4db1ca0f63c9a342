package cmd

import "github.com/nahomanteneh/gitlet/internal/vcs"

func init() {
	rootCmd.AddCommand(NewCommand(
		"add <file>",
		"Stage a file for the next commit",
		func(repo *vcs.Repository, args []string) error {
			return repo.Add(args[0])
		},
		1,
	))
}
