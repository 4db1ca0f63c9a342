package cmd

import (
	"github.com/nahomanteneh/gitlet/core"
	"github.com/nahomanteneh/gitlet/internal/vcs"
	"github.com/spf13/cobra"
)

// HandlerFunc is the signature every repository-scoped command handler
// implements: given an open repository and the command's positional
// arguments, do the work or return an error.
type HandlerFunc func(repo *vcs.Repository, args []string) error

// NewCommand creates a cobra.Command that locates the repository, opens
// it, and dispatches to handler, failing with the fixed catalogue message
// if no repository is found or the argument count doesn't match.
func NewCommand(use, short string, handler HandlerFunc, requiredArgs int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != requiredArgs {
				return core.NewUserError("Incorrect operands.")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}
			return handler(repo, args)
		},
	}
}

// NewRepoCommand is NewCommand with the required operand count fixed at
// zero, for commands (status, log, global-log) that take no operands.
func NewRepoCommand(use, short string, handler HandlerFunc) *cobra.Command {
	return NewCommand(use, short, handler, 0)
}

func openRepository() (*vcs.Repository, error) {
	root, err := core.FindGitletRoot()
	if err != nil {
		return nil, err
	}
	repo := core.NewRepository(root)
	if !repo.Exists() {
		return nil, core.NewUserError("Not in an initialized Gitlet directory.")
	}
	return vcs.Open(repo), nil
}
