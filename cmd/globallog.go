package cmd

import "github.com/nahomanteneh/gitlet/internal/vcs"

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"global-log",
		"Print every commit in the repository, in storage order",
		func(repo *vcs.Repository, args []string) error {
			entries, err := repo.GlobalLog()
			if err != nil {
				return err
			}
			for _, e := range entries {
				printLogEntry(e)
			}
			return nil
		},
	))
}
