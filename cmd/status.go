package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/nahomanteneh/gitlet/internal/vcs"
)

var (
	statusBranchColor   = color.New(color.FgCyan)
	statusStagedColor   = color.New(color.FgGreen)
	statusRemovedColor  = color.New(color.FgRed)
	statusModifiedColor = color.New(color.FgYellow)
)

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"status",
		"Print branches, staged changes, and working-tree differences",
		func(repo *vcs.Repository, args []string) error {
			report, err := repo.Status()
			if err != nil {
				return err
			}
			printStatus(report)
			return nil
		},
	))
}

func printStatus(r *vcs.StatusReport) {
	fmt.Println("=== Branches ===")
	for _, b := range r.Branches {
		if b == r.CurrentBranch {
			statusBranchColor.Printf("*%s\n", b)
		} else {
			fmt.Println(b)
		}
	}
	fmt.Println()

	fmt.Println("=== Staged Files ===")
	for _, f := range r.Staged {
		statusStagedColor.Println(f)
	}
	fmt.Println()

	fmt.Println("=== Removed Files ===")
	for _, f := range r.Removed {
		statusRemovedColor.Println(f)
	}
	fmt.Println()

	fmt.Println("=== Modifications Not Staged For Commit ===")
	for _, f := range r.ModifiedNotStaged {
		statusModifiedColor.Println(f)
	}
	fmt.Println()

	fmt.Println("=== Untracked Files ===")
	for _, f := range r.Untracked {
		fmt.Println(f)
	}
	fmt.Println()
}
