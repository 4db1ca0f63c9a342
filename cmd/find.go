package cmd

import (
	"fmt"

	"github.com/nahomanteneh/gitlet/internal/vcs"
)

func init() {
	rootCmd.AddCommand(NewCommand(
		"find <message>",
		"Print the fingerprints of every commit with the given message",
		func(repo *vcs.Repository, args []string) error {
			fingerprints, err := repo.Find(args[0])
			if err != nil {
				return err
			}
			for _, fp := range fingerprints {
				fmt.Println(fp)
			}
			return nil
		},
		1,
	))
}
