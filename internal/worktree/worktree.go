// Package worktree implements the flat working-tree adapter: reading,
// writing, deleting, and listing files directly in the repository root,
// skipping the .gitlet metadata directory itself. Base spec scopes the
// working tree to a single flat directory with no nested subdirectories,
// so unlike the teacher's walk over arbitrary trees, this package never
// recurses.
package worktree

import (
	"os"
	"path/filepath"

	"github.com/nahomanteneh/gitlet/core"
)

// Tree is the working tree rooted at a repository.
type Tree struct {
	repo *core.Repository
}

// New returns a Tree for the given repository.
func New(repo *core.Repository) *Tree {
	return &Tree{repo: repo}
}

func (t *Tree) path(name string) string {
	return filepath.Join(t.repo.Root, name)
}

// Exists reports whether name exists as a regular file in the working
// tree.
func (t *Tree) Exists(name string) bool {
	info, err := os.Stat(t.path(name))
	return err == nil && !info.IsDir()
}

// Read returns the content of name in the working tree.
func (t *Tree) Read(name string) ([]byte, error) {
	content, err := os.ReadFile(t.path(name))
	if err != nil {
		return nil, core.FSError("failed to read working tree file "+name, err)
	}
	return content, nil
}

// Write overwrites (or creates) name in the working tree with content.
func (t *Tree) Write(name string, content []byte) error {
	if err := os.WriteFile(t.path(name), content, 0644); err != nil {
		return core.FSError("failed to write working tree file "+name, err)
	}
	return nil
}

// Delete removes name from the working tree. Deleting a file that does not
// exist is not an error.
func (t *Tree) Delete(name string) error {
	if err := os.Remove(t.path(name)); err != nil && !os.IsNotExist(err) {
		return core.FSError("failed to delete working tree file "+name, err)
	}
	return nil
}

// List returns every regular file name present at the top level of the
// working tree, excluding the .gitlet directory.
func (t *Tree) List() ([]string, error) {
	entries, err := os.ReadDir(t.repo.Root)
	if err != nil {
		return nil, core.FSError("failed to list working tree", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if e.Name() == core.GitletDirName {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
