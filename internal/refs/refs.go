// Package refs implements the ref store: HEAD and the flat set of branch
// pointers it can point at, grounded on the teacher's repo.ReadHead/WriteRef
// idiom in cmd/branch.go but adapted to the simpler base-spec layout — no
// refs/heads subdirectory, no tags, no remote-tracking refs, just
// .gitlet/branches/<name> files and a single .gitlet/HEAD file.
package refs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nahomanteneh/gitlet/core"
)

const headPrefix = "ref: "

// Store reads and writes HEAD and branch pointers for a repository.
type Store struct {
	repo *core.Repository
}

// NewStore returns a ref Store for the given repository.
func NewStore(repo *core.Repository) *Store {
	return &Store{repo: repo}
}

// CurrentBranch returns the name of the branch HEAD points at. It returns
// an error if HEAD is detached, which base spec's command set never
// produces — checkout <branch> and merge/reset always leave HEAD attached
// to a branch.
func (s *Store) CurrentBranch() (string, error) {
	content, err := os.ReadFile(s.repo.HeadFile)
	if err != nil {
		return "", core.RefError("failed to read HEAD", err)
	}
	line := strings.TrimSpace(string(content))
	if !strings.HasPrefix(line, headPrefix) {
		return "", core.RefError("HEAD is not attached to a branch", nil)
	}
	return strings.TrimPrefix(line, headPrefix), nil
}

// SetHead points HEAD at the given branch name.
func (s *Store) SetHead(branch string) error {
	content := headPrefix + branch + "\n"
	if err := core.WriteFileAtomic(s.repo.HeadFile, []byte(content)); err != nil {
		return core.RefError("failed to write HEAD", err)
	}
	return nil
}

// HeadCommit resolves HEAD to the fingerprint of the commit the current
// branch points at.
func (s *Store) HeadCommit() (string, error) {
	branch, err := s.CurrentBranch()
	if err != nil {
		return "", err
	}
	return s.ReadBranch(branch)
}

// BranchPath returns the on-disk path of a branch's ref file.
func (s *Store) BranchPath(name string) string {
	return filepath.Join(s.repo.BranchesDir, name)
}

// BranchExists reports whether a branch with the given name exists.
func (s *Store) BranchExists(name string) bool {
	return core.FileExists(s.BranchPath(name))
}

// ReadBranch returns the commit fingerprint a branch currently points at.
func (s *Store) ReadBranch(name string) (string, error) {
	content, err := os.ReadFile(s.BranchPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", core.NotFoundError(core.ErrCategoryRef, fmt.Sprintf("branch '%s'", name))
		}
		return "", core.RefError(fmt.Sprintf("failed to read branch '%s'", name), err)
	}
	return strings.TrimSpace(string(content)), nil
}

// WriteBranch sets a branch to point at the given commit fingerprint,
// creating the branch file if it does not already exist.
func (s *Store) WriteBranch(name, commitFingerprint string) error {
	if err := core.WriteFileAtomic(s.BranchPath(name), []byte(commitFingerprint+"\n")); err != nil {
		return core.RefError(fmt.Sprintf("failed to write branch '%s'", name), err)
	}
	return nil
}

// DeleteBranch removes a branch's ref file.
func (s *Store) DeleteBranch(name string) error {
	if err := os.Remove(s.BranchPath(name)); err != nil {
		if os.IsNotExist(err) {
			return core.NotFoundError(core.ErrCategoryRef, fmt.Sprintf("branch '%s'", name))
		}
		return core.RefError(fmt.Sprintf("failed to delete branch '%s'", name), err)
	}
	return nil
}

// ListBranches returns every branch name in sorted order.
func (s *Store) ListBranches() ([]string, error) {
	entries, err := os.ReadDir(s.repo.BranchesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, core.RefError("failed to list branches", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
