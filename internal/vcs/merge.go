package vcs

import (
	"fmt"

	"github.com/nahomanteneh/gitlet/core"
)

const conflictHeader = "<<<<<<< HEAD\n"
const conflictDivider = "=======\n"
const conflictFooter = ">>>>>>>\n"

// MergeResult reports how Merge concluded, for the cmd layer to print. The
// two short-circuit outcomes (AlreadyAncestor, FastForwarded) are messages
// per base spec §4.7, not errors — Merge returns them with a nil error and
// exit code 0.
type MergeResult struct {
	FastForwarded   bool
	AlreadyAncestor bool
	HadConflict     bool
}

// Merge merges the given branch into the current branch, per base spec
// §4.7's merge planning algorithm.
func (r *Repository) Merge(other string) (*MergeResult, error) {
	area, err := r.stagingArea()
	if err != nil {
		return nil, err
	}
	if !area.IsEmpty() {
		return nil, core.NewUserError("You have uncommitted changes.")
	}
	if !r.refs.BranchExists(other) {
		return nil, core.NewUserError("A branch with that name does not exist.")
	}
	current, err := r.refs.CurrentBranch()
	if err != nil {
		return nil, err
	}
	if other == current {
		return nil, core.NewUserError("Cannot merge a branch with itself.")
	}

	currentFp, err := r.refs.HeadCommit()
	if err != nil {
		return nil, err
	}
	otherFp, err := r.refs.ReadBranch(other)
	if err != nil {
		return nil, err
	}

	splitFp, err := r.graph.LCA(currentFp, otherFp)
	if err != nil {
		return nil, err
	}

	if splitFp == otherFp {
		return &MergeResult{AlreadyAncestor: true}, nil
	}
	if splitFp == currentFp {
		if err := r.CheckoutBranch(other); err != nil {
			return nil, err
		}
		if err := r.refs.SetHead(current); err != nil {
			return nil, err
		}
		if err := r.refs.WriteBranch(current, otherFp); err != nil {
			return nil, err
		}
		return &MergeResult{FastForwarded: true}, nil
	}

	splitCommit, err := r.commits.Get(splitFp)
	if err != nil {
		return nil, err
	}
	currCommit, err := r.commits.Get(currentFp)
	if err != nil {
		return nil, err
	}
	otherCommit, err := r.commits.Get(otherFp)
	if err != nil {
		return nil, err
	}
	s, c, o := splitCommit.Tree, currCommit.Tree, otherCommit.Tree

	currRemoved := diffKeys(s, c)
	otherRemoved := diffKeys(s, o)
	currAdded := diffKeys(c, s)
	otherAdded := diffKeys(o, s)
	currModified := modifiedKeys(s, c)
	otherModified := modifiedKeys(s, o)

	type conflictEntry struct {
		currContent  []byte
		otherContent []byte
	}

	plannedAdd := map[string]string{}    // name -> fingerprint to add from O
	plannedRemove := map[string]bool{}   // name -> stage for removal
	conflicts := map[string]bool{}

	for f := range otherRemoved {
		if currModified[f] {
			conflicts[f] = true
		} else if !currRemoved[f] {
			plannedRemove[f] = true
		}
	}
	for f := range otherAdded {
		if !currAdded[f] {
			plannedAdd[f] = o[f]
		} else if c[f] != o[f] {
			conflicts[f] = true
		}
	}
	for f := range otherModified {
		if currRemoved[f] {
			conflicts[f] = true
		} else if !currModified[f] {
			plannedAdd[f] = o[f]
		} else if c[f] != o[f] {
			conflicts[f] = true
		}
	}

	touched := map[string]bool{}
	for f := range plannedAdd {
		touched[f] = true
	}
	for f := range plannedRemove {
		touched[f] = true
	}
	for f := range conflicts {
		touched[f] = true
	}

	working, err := r.tree.List()
	if err != nil {
		return nil, err
	}
	workingSet := map[string]bool{}
	for _, name := range working {
		workingSet[name] = true
	}
	for f := range touched {
		_, inAddition := area.Addition()[f]
		_, tracked := currCommit.Tree[f]
		if workingSet[f] && !inAddition && !tracked {
			return nil, core.NewUserError("There is an untracked file in the way; delete it, or add and commit it first.")
		}
	}

	hadConflict := len(conflicts) > 0

	for f := range plannedRemove {
		if err := r.tree.Delete(f); err != nil {
			return nil, err
		}
		area.StageRemoval(f)
	}
	for f, fp := range plannedAdd {
		content, err := r.blobs.Get(fp)
		if err != nil {
			return nil, err
		}
		if err := r.tree.Write(f, content); err != nil {
			return nil, err
		}
		area.Stage(f, fp)
	}
	for f := range conflicts {
		currContent, err := contentOrEmpty(r, c, f)
		if err != nil {
			return nil, err
		}
		otherContent, err := contentOrEmpty(r, o, f)
		if err != nil {
			return nil, err
		}
		merged := conflictHeader + string(currContent) + conflictDivider + string(otherContent) + conflictFooter
		if err := r.tree.Write(f, []byte(merged)); err != nil {
			return nil, err
		}
		fp, err := r.blobs.Put([]byte(merged))
		if err != nil {
			return nil, err
		}
		area.Stage(f, fp)
	}

	if err := area.Save(); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Merged %s into %s.", other, current)
	if err := r.commitWithParents(message, otherFp); err != nil {
		return nil, err
	}

	return &MergeResult{HadConflict: hadConflict}, nil
}

func contentOrEmpty(r *Repository, tree map[string]string, name string) ([]byte, error) {
	fp, ok := tree[name]
	if !ok {
		return nil, nil
	}
	return r.blobs.Get(fp)
}

// diffKeys returns the set of keys in a that are absent from b.
func diffKeys(a, b map[string]string) map[string]bool {
	result := map[string]bool{}
	for k := range a {
		if _, ok := b[k]; !ok {
			result[k] = true
		}
	}
	return result
}

// modifiedKeys returns the set of keys present in both a and b whose
// values differ.
func modifiedKeys(a, b map[string]string) map[string]bool {
	result := map[string]bool{}
	for k, av := range a {
		if bv, ok := b[k]; ok && av != bv {
			result[k] = true
		}
	}
	return result
}
