package cmd

import (
	"fmt"

	"github.com/nahomanteneh/gitlet/core"
	"github.com/nahomanteneh/gitlet/internal/vcs"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new, empty Gitlet repository in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := currentDir()
		if err != nil {
			return err
		}
		repo := core.NewRepository(root)
		if err := vcs.Init(repo); err != nil {
			return err
		}
		fmt.Printf("Initialized empty Gitlet repository in %s\n", repo.GitletDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
