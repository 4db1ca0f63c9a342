// cmd/catfile.go
package cmd

import (
	"fmt"
	"sort"

	"github.com/nahomanteneh/gitlet/core"
	"github.com/nahomanteneh/gitlet/internal/objects"
	"github.com/spf13/cobra"
)

// catFileCmd is a supplemental, read-only debug command — not part of
// base spec's CLI surface — for inspecting a blob or commit object by
// fingerprint, grounded on the teacher's cmd/catfile.go pretty-print idiom
// but adapted to the two-object model (no trees). It never touches
// staging, HEAD, or refs.
var catFileCmd = &cobra.Command{
	Use:   "cat-file <fingerprint>",
	Short: "Print the content of a stored blob or commit object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		fingerprint := args[0]
		root := repo.Root()

		commits := objects.NewCommitStore(root)
		if c, err := commits.Get(fingerprint); err == nil {
			printCommitObject(fingerprint, c)
			return nil
		}

		blobs := objects.NewBlobStore(root)
		if content, err := blobs.Get(fingerprint); err == nil {
			fmt.Print(string(content))
			return nil
		}

		return core.NotFoundError(core.ErrCategoryObject, fmt.Sprintf("object '%s'", fingerprint))
	},
}

func printCommitObject(fingerprint string, c *objects.Commit) {
	fmt.Printf("commit %s\n", fingerprint)
	if p := c.Parents(); len(p) > 0 {
		fmt.Printf("parents %v\n", p)
	}
	fmt.Printf("timestamp %d\n", c.Timestamp)
	fmt.Printf("message %s\n", c.Message)
	names := make([]string, 0, len(c.Tree))
	for name := range c.Tree {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s %s\n", c.Tree[name], name)
	}
}

func init() {
	rootCmd.AddCommand(catFileCmd)
}
