package vcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nahomanteneh/gitlet/core"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dir, err := os.MkdirTemp("", "gitlet-vcs-test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	repo := core.NewRepository(dir)
	require.NoError(t, Init(repo))
	return Open(repo)
}

func writeFile(t *testing.T, r *Repository, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(r.repo.Root, name), []byte(content), 0644))
}

func TestInitAddCommitLog(t *testing.T) {
	r := newTestRepository(t)
	writeFile(t, r, "a.txt", "hi")
	require.NoError(t, r.Add("a.txt"))
	require.NoError(t, r.Commit("m1"))

	entries, err := r.Log()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "m1", entries[0].Message)
	require.Equal(t, "initial commit", entries[1].Message)
	require.Equal(t, int64(0), entries[1].Timestamp)
}

func TestAddClearsStaleStageWhenContentUnchanged(t *testing.T) {
	r := newTestRepository(t)
	writeFile(t, r, "a.txt", "hi")
	require.NoError(t, r.Add("a.txt"))
	require.NoError(t, r.Commit("m1"))

	writeFile(t, r, "a.txt", "hi")
	require.NoError(t, r.Add("a.txt"))

	area, err := r.stagingArea()
	require.NoError(t, err)
	require.True(t, area.IsEmpty())

	err = r.Commit("m2")
	require.Error(t, err)
	require.Equal(t, "No changes added to the commit.", err.Error())
}

func TestCheckoutFileFromEarlierCommit(t *testing.T) {
	r := newTestRepository(t)
	writeFile(t, r, "a.txt", "hi")
	require.NoError(t, r.Add("a.txt"))
	require.NoError(t, r.Commit("m1"))
	firstLog, err := r.Log()
	require.NoError(t, err)
	firstCommit := firstLog[0].Fingerprint

	writeFile(t, r, "a.txt", "bye")
	require.NoError(t, r.Add("a.txt"))
	require.NoError(t, r.Commit("m2"))

	require.NoError(t, r.CheckoutCommitFile(firstCommit, "a.txt"))
	content, err := r.tree.Read("a.txt")
	require.NoError(t, err)
	require.Equal(t, "hi", string(content))
}

func TestBranchMergeFastForward(t *testing.T) {
	r := newTestRepository(t)
	require.NoError(t, r.Branch("b"))
	require.NoError(t, r.CheckoutBranch("b"))

	writeFile(t, r, "f", "x")
	require.NoError(t, r.Add("f"))
	require.NoError(t, r.Commit("on b"))

	require.NoError(t, r.CheckoutBranch("master"))
	result, err := r.Merge("b")
	require.NoError(t, err)
	require.True(t, result.FastForwarded)

	masterFp, err := r.refs.ReadBranch("master")
	require.NoError(t, err)
	bFp, err := r.refs.ReadBranch("b")
	require.NoError(t, err)
	require.Equal(t, bFp, masterFp)
}

func TestMergeAlreadyAncestor(t *testing.T) {
	r := newTestRepository(t)
	require.NoError(t, r.Branch("b"))

	writeFile(t, r, "f", "x")
	require.NoError(t, r.Add("f"))
	require.NoError(t, r.Commit("on master"))

	result, err := r.Merge("b")
	require.NoError(t, err)
	require.True(t, result.AlreadyAncestor)
}

func TestMergeWithConflict(t *testing.T) {
	r := newTestRepository(t)
	writeFile(t, r, "f", "base")
	require.NoError(t, r.Add("f"))
	require.NoError(t, r.Commit("base commit"))

	require.NoError(t, r.Branch("other"))

	writeFile(t, r, "f", "mine")
	require.NoError(t, r.Add("f"))
	require.NoError(t, r.Commit("mine"))

	require.NoError(t, r.CheckoutBranch("other"))
	writeFile(t, r, "f", "theirs")
	require.NoError(t, r.Add("f"))
	require.NoError(t, r.Commit("theirs"))

	require.NoError(t, r.CheckoutBranch("master"))
	result, err := r.Merge("other")
	require.NoError(t, err)
	require.True(t, result.HadConflict)

	content, err := r.tree.Read("f")
	require.NoError(t, err)
	require.Contains(t, string(content), "<<<<<<< HEAD")
	require.Contains(t, string(content), "mine")
	require.Contains(t, string(content), "=======")
	require.Contains(t, string(content), "theirs")

	entries, err := r.Log()
	require.NoError(t, err)
	require.NotEmpty(t, entries[0].Parent2)
}

func TestMergeWithNoNetChangeStillCommits(t *testing.T) {
	r := newTestRepository(t)
	writeFile(t, r, "f", "shared")
	require.NoError(t, r.Add("f"))
	require.NoError(t, r.Commit("base commit"))

	require.NoError(t, r.Branch("other"))

	require.NoError(t, r.Rm("f"))
	require.NoError(t, r.Commit("remove f on master"))

	require.NoError(t, r.CheckoutBranch("other"))
	require.NoError(t, r.Rm("f"))
	require.NoError(t, r.Commit("remove f on other"))

	require.NoError(t, r.CheckoutBranch("master"))
	result, err := r.Merge("other")
	require.NoError(t, err)
	require.False(t, result.FastForwarded)
	require.False(t, result.AlreadyAncestor)
	require.False(t, result.HadConflict)

	entries, err := r.Log()
	require.NoError(t, err)
	require.Equal(t, "Merged other into master.", entries[0].Message)
	require.NotEmpty(t, entries[0].Parent1)
	require.NotEmpty(t, entries[0].Parent2)
}

func TestUntrackedFileInTheWayBlocksReset(t *testing.T) {
	r := newTestRepository(t)
	writeFile(t, r, "a.txt", "hi")
	require.NoError(t, r.Add("a.txt"))
	require.NoError(t, r.Commit("m1"))
	log1, err := r.Log()
	require.NoError(t, err)
	firstCommit := log1[0].Fingerprint

	require.NoError(t, r.Rm("a.txt"))
	require.NoError(t, r.Commit("remove a"))

	writeFile(t, r, "a.txt", "untracked content")

	err = r.Reset(firstCommit)
	require.Error(t, err)
	require.Equal(t, "There is an untracked file in the way; delete it, or add and commit it first.", err.Error())

	content, err := r.tree.Read("a.txt")
	require.NoError(t, err)
	require.Equal(t, "untracked content", string(content))
}

func TestBranchLocality(t *testing.T) {
	r := newTestRepository(t)
	before, err := r.refs.ListBranches()
	require.NoError(t, err)

	require.NoError(t, r.Branch("feature"))
	require.NoError(t, r.RmBranch("feature"))

	after, err := r.refs.ListBranches()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestRmBranchRefusesCurrentBranch(t *testing.T) {
	r := newTestRepository(t)
	err := r.RmBranch("master")
	require.Error(t, err)
	require.Equal(t, "Cannot remove the current branch.", err.Error())
}

func TestStatusSections(t *testing.T) {
	r := newTestRepository(t)
	writeFile(t, r, "a.txt", "hi")
	require.NoError(t, r.Add("a.txt"))
	require.NoError(t, r.Commit("m1"))

	writeFile(t, r, "a.txt", "changed")
	writeFile(t, r, "untracked.txt", "u")

	status, err := r.Status()
	require.NoError(t, err)
	require.Contains(t, status.ModifiedNotStaged, "a.txt (modified)")
	require.Contains(t, status.Untracked, "untracked.txt")
	require.Equal(t, "master", status.CurrentBranch)
}

func TestFindReturnsMatchingFingerprints(t *testing.T) {
	r := newTestRepository(t)
	writeFile(t, r, "a.txt", "hi")
	require.NoError(t, r.Add("a.txt"))
	require.NoError(t, r.Commit("shared message"))

	matches, err := r.Find("shared message")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	_, err = r.Find("no such message")
	require.Error(t, err)
	require.Equal(t, "Found no commit with that message.", err.Error())
}
