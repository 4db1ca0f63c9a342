package cmd

import "github.com/nahomanteneh/gitlet/internal/vcs"

func init() {
	rootCmd.AddCommand(NewCommand(
		"rm <file>",
		"Unstage a file and, if tracked, stage it for removal",
		func(repo *vcs.Repository, args []string) error {
			return repo.Rm(args[0])
		},
		1,
	))
}
