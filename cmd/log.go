package cmd

import (
	"fmt"
	"time"

	"github.com/nahomanteneh/gitlet/internal/vcs"
)

const logDateLayout = "Mon Jan 2 15:04:05 2006 -0700"

func printLogEntry(e vcs.LogEntry) {
	fmt.Println("===")
	fmt.Printf("commit %s\n", e.Fingerprint)
	if e.Parent2 != "" {
		fmt.Printf("Merge: %s %s\n", e.Parent1[:7], e.Parent2[:7])
	}
	fmt.Printf("Date: %s\n", time.Unix(e.Timestamp, 0).UTC().Format(logDateLayout))
	fmt.Println(e.Message)
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(NewRepoCommand(
		"log",
		"Print the commit history from HEAD along the first-parent chain",
		func(repo *vcs.Repository, args []string) error {
			entries, err := repo.Log()
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
