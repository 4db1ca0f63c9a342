package graph

import (
	"os"
	"testing"

	"github.com/nahomanteneh/gitlet/core"
	"github.com/nahomanteneh/gitlet/internal/objects"
)

func newTestGraph(t *testing.T) (*Graph, *objects.CommitStore) {
	t.Helper()
	dir, err := os.MkdirTemp("", "gitlet-graph-test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	repo := core.NewRepository(dir)
	if err := os.MkdirAll(repo.CommitsDir, 0755); err != nil {
		t.Fatal(err)
	}
	store := objects.NewCommitStore(repo)
	return New(store), store
}

func put(t *testing.T, store *objects.CommitStore, message, parent1, parent2 string) string {
	t.Helper()
	fp, err := store.Put(&objects.Commit{
		Message: message,
		Parent1: parent1,
		Parent2: parent2,
		Tree:    map[string]string{},
	})
	if err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestAncestorsIncludesSelf(t *testing.T) {
	g, store := newTestGraph(t)
	root := put(t, store, "root", "", "")

	ancestors, err := g.Ancestors(root)
	if err != nil {
		t.Fatal(err)
	}
	if !ancestors[root] {
		t.Fatal("expected commit to be its own ancestor")
	}
}

func TestAncestorsFollowsBothParents(t *testing.T) {
	g, store := newTestGraph(t)
	root := put(t, store, "root", "", "")
	left := put(t, store, "left", root, "")
	right := put(t, store, "right", root, "")
	merge := put(t, store, "merge", left, right)

	ancestors, err := g.Ancestors(merge)
	if err != nil {
		t.Fatal(err)
	}
	for _, fp := range []string{root, left, right, merge} {
		if !ancestors[fp] {
			t.Fatalf("expected %s in ancestors of merge", fp)
		}
	}
}

func TestFirstParentWalkFollowsOnlyParent1(t *testing.T) {
	g, store := newTestGraph(t)
	root := put(t, store, "root", "", "")
	onlyOnSide := put(t, store, "side", root, "")
	second := put(t, store, "second", root, "")
	merge := put(t, store, "merge", second, onlyOnSide)

	var walked []string
	next := g.FirstParentWalk(merge)
	for {
		fp, ok, err := next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		walked = append(walked, fp)
	}

	want := []string{merge, second, root}
	if len(walked) != len(want) {
		t.Fatalf("expected %v, got %v", want, walked)
	}
	for i, fp := range want {
		if walked[i] != fp {
			t.Fatalf("expected %v, got %v", want, walked)
		}
	}
}

func TestLCADirectAncestor(t *testing.T) {
	g, store := newTestGraph(t)
	root := put(t, store, "root", "", "")
	child := put(t, store, "child", root, "")

	lca, err := g.LCA(child, root)
	if err != nil {
		t.Fatal(err)
	}
	if lca != root {
		t.Fatalf("expected %s, got %s", root, lca)
	}

	lca, err = g.LCA(root, child)
	if err != nil {
		t.Fatal(err)
	}
	if lca != root {
		t.Fatalf("expected %s, got %s", root, lca)
	}
}

func TestLCADivergentBranches(t *testing.T) {
	g, store := newTestGraph(t)
	root := put(t, store, "root", "", "")
	a := put(t, store, "a", root, "")
	b := put(t, store, "b", root, "")

	lca, err := g.LCA(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if lca != root {
		t.Fatalf("expected split point %s, got %s", root, lca)
	}
}
