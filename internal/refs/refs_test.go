package refs

import (
	"os"
	"testing"

	"github.com/nahomanteneh/gitlet/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir, err := os.MkdirTemp("", "gitlet-refs-test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	repo := core.NewRepository(dir)
	if err := os.MkdirAll(repo.BranchesDir, 0755); err != nil {
		t.Fatal(err)
	}
	return NewStore(repo)
}

func TestHeadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetHead("master"); err != nil {
		t.Fatal(err)
	}
	branch, err := s.CurrentBranch()
	if err != nil {
		t.Fatal(err)
	}
	if branch != "master" {
		t.Fatalf("expected master, got %s", branch)
	}
}

func TestBranchRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.WriteBranch("master", "deadbeef"); err != nil {
		t.Fatal(err)
	}
	if !s.BranchExists("master") {
		t.Fatal("expected branch to exist")
	}
	fp, err := s.ReadBranch("master")
	if err != nil {
		t.Fatal(err)
	}
	if fp != "deadbeef" {
		t.Fatalf("expected deadbeef, got %s", fp)
	}
}

func TestBranchLocality(t *testing.T) {
	s := newTestStore(t)
	if err := s.WriteBranch("master", "fp0"); err != nil {
		t.Fatal(err)
	}
	before, err := s.ListBranches()
	if err != nil {
		t.Fatal(err)
	}

	if err := s.WriteBranch("feature", "fp0"); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteBranch("feature"); err != nil {
		t.Fatal(err)
	}

	after, err := s.ListBranches()
	if err != nil {
		t.Fatal(err)
	}
	if len(before) != len(after) || before[0] != after[0] {
		t.Fatalf("branch list not restored: before=%v after=%v", before, after)
	}
}

func TestDeleteMissingBranch(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteBranch("missing"); err == nil {
		t.Fatal("expected error deleting a branch that does not exist")
	}
}
