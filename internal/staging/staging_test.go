package staging

import (
	"os"
	"testing"

	"github.com/nahomanteneh/gitlet/core"
)

func newTestArea(t *testing.T) (*core.Repository, *Area) {
	t.Helper()
	dir, err := os.MkdirTemp("", "gitlet-staging-test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	repo := core.NewRepository(dir)
	if err := os.MkdirAll(repo.StagingDir, 0755); err != nil {
		t.Fatal(err)
	}
	area, err := Load(repo)
	if err != nil {
		t.Fatal(err)
	}
	return repo, area
}

func TestFreshAreaIsEmpty(t *testing.T) {
	_, area := newTestArea(t)
	if !area.IsEmpty() {
		t.Fatal("expected a freshly loaded area to be empty")
	}
}

func TestStageAndSaveRoundTrip(t *testing.T) {
	repo, area := newTestArea(t)
	area.Stage("a.txt", "fp-a")
	area.StageRemoval("b.txt")
	if err := area.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(repo)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Addition()["a.txt"] != "fp-a" {
		t.Fatalf("expected a.txt staged with fp-a, got %v", reloaded.Addition())
	}
	if !reloaded.Removal()["b.txt"] {
		t.Fatalf("expected b.txt staged for removal, got %v", reloaded.Removal())
	}
}

func TestStagingExclusivity(t *testing.T) {
	_, area := newTestArea(t)
	area.StageRemoval("f")
	area.Stage("f", "fp")
	if area.Removal()["f"] {
		t.Fatal("staging for addition must clear a pending removal of the same file")
	}

	area.StageRemoval("f")
	if _, staged := area.Addition()["f"]; staged {
		t.Fatal("staging for removal must clear a pending addition of the same file")
	}
}

func TestClearEmptiesBothStructures(t *testing.T) {
	_, area := newTestArea(t)
	area.Stage("a", "fp")
	area.StageRemoval("b")
	area.Clear()
	if !area.IsEmpty() {
		t.Fatal("expected area to be empty after Clear")
	}
}
