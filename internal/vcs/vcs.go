// Package vcs implements the version-control system's command semantics —
// init, add, rm, commit, log, global-log, find, status, branch, rm-branch,
// checkout, reset, and merge — wiring together the object store, ref
// store, staging area, working tree, and commit graph. Grounded on the
// overall command shape of the nhtsai-gitlet-go reference implementation
// (other_examples) and the teacher's cmd/*.go split between pure command
// logic and I/O/printing, but with the exact error strings, tree
// semantics, and LCA algorithm base spec fixes.
package vcs

import (
	"fmt"
	"sort"

	"github.com/nahomanteneh/gitlet/core"
	"github.com/nahomanteneh/gitlet/internal/graph"
	"github.com/nahomanteneh/gitlet/internal/hash"
	"github.com/nahomanteneh/gitlet/internal/objects"
	"github.com/nahomanteneh/gitlet/internal/refs"
	"github.com/nahomanteneh/gitlet/internal/staging"
	"github.com/nahomanteneh/gitlet/internal/worktree"
)

const defaultBranch = "master"

// Repository is the VCS handle wiring every subsystem together for a
// single repository root.
type Repository struct {
	repo    *core.Repository
	blobs   *objects.BlobStore
	commits *objects.CommitStore
	refs    *refs.Store
	tree    *worktree.Tree
	graph   *graph.Graph
}

// Open wires a Repository onto an already-initialized on-disk repository.
func Open(repo *core.Repository) *Repository {
	commits := objects.NewCommitStore(repo)
	return &Repository{
		repo:    repo,
		blobs:   objects.NewBlobStore(repo),
		commits: commits,
		refs:    refs.NewStore(repo),
		tree:    worktree.New(repo),
		graph:   graph.New(commits),
	}
}

// Root returns the underlying core.Repository handle, for callers (e.g.
// cmd/catfile.go, cmd/diff.go) that need direct store access beyond the
// command surface below.
func (r *Repository) Root() *core.Repository { return r.repo }

// HeadFingerprint returns the commit fingerprint the current branch
// points at, for callers (e.g. cmd/diff.go) that need it directly.
func (r *Repository) HeadFingerprint() (string, error) {
	return r.refs.HeadCommit()
}

func (r *Repository) stagingArea() (*staging.Area, error) {
	return staging.Load(r.repo)
}

func (r *Repository) headCommit() (*objects.Commit, error) {
	fp, err := r.refs.HeadCommit()
	if err != nil {
		return nil, err
	}
	return r.commits.Get(fp)
}

// Init creates a brand-new repository at repo.Root. It fails if one
// already exists there.
func Init(repo *core.Repository) error {
	if repo.Exists() {
		return core.NewUserError("A Gitlet version-control system already exists in the current directory.")
	}

	for _, dir := range []string{repo.GitletDir, repo.BlobsDir, repo.CommitsDir, repo.StagingDir, repo.BranchesDir} {
		if err := core.EnsureDirExists(dir); err != nil {
			return core.RepositoryError("failed to initialize repository", err)
		}
	}

	area, err := staging.Load(repo)
	if err != nil {
		return err
	}
	if err := area.Save(); err != nil {
		return err
	}

	initial := &objects.Commit{
		Message:   "initial commit",
		Timestamp: 0,
		Tree:      map[string]string{},
	}
	commits := objects.NewCommitStore(repo)
	fp, err := commits.Put(initial)
	if err != nil {
		return err
	}

	refStore := refs.NewStore(repo)
	if err := refStore.WriteBranch(defaultBranch, fp); err != nil {
		return err
	}
	if err := refStore.SetHead(defaultBranch); err != nil {
		return err
	}
	return nil
}

// Add stages name for addition, or clears a stale stage matching the
// current commit's tree.
func (r *Repository) Add(name string) error {
	if !r.tree.Exists(name) {
		return core.NewUserError("File does not exist.")
	}
	content, err := r.tree.Read(name)
	if err != nil {
		return err
	}
	fp := hash.FingerprintObject("blob", content)

	head, err := r.headCommit()
	if err != nil {
		return err
	}
	area, err := r.stagingArea()
	if err != nil {
		return err
	}

	area.ClearRemoval(name)

	if head.Tree[name] == fp {
		area.Unstage(name)
	} else {
		if _, err := r.blobs.Put(content); err != nil {
			return err
		}
		area.Stage(name, fp)
	}

	return area.Save()
}

// Rm unstages name and, if tracked, stages it for removal and deletes it
// from the working tree.
func (r *Repository) Rm(name string) error {
	if name == "" {
		return core.NewUserError("Please enter a file name.")
	}

	head, err := r.headCommit()
	if err != nil {
		return err
	}
	area, err := r.stagingArea()
	if err != nil {
		return err
	}

	_, staged := area.Addition()[name]
	_, tracked := head.Tree[name]
	if !staged && !tracked {
		return core.NewUserError("No reason to remove the file.")
	}

	area.Unstage(name)
	if tracked {
		area.StageRemoval(name)
		if err := r.tree.Delete(name); err != nil {
			return err
		}
	}

	return area.Save()
}

// Commit builds a new commit from the current staging area and advances
// the current branch to it. Refuses if nothing is staged — that
// precondition is specific to the commit command, not to commit creation
// in general (see commitWithParents).
func (r *Repository) Commit(message string) error {
	if isBlank(message) {
		return core.NewUserError("Please enter a commit message.")
	}
	area, err := r.stagingArea()
	if err != nil {
		return err
	}
	if area.IsEmpty() {
		return core.NewUserError("No changes added to the commit.")
	}
	return r.commitWithParents(message, "")
}

// commitWithParents builds a new commit from whatever is currently staged
// — including nothing at all — and advances the current branch to it. A
// merge commit must always be created once planning completes, even when
// the two branches' changes cancel out to an empty diff, so this carries
// no "staging area is empty" precondition; callers that need one (plain
// commit) check it themselves before calling in.
func (r *Repository) commitWithParents(message, secondParent string) error {
	if isBlank(message) {
		return core.NewUserError("Please enter a commit message.")
	}

	area, err := r.stagingArea()
	if err != nil {
		return err
	}

	head, err := r.headCommit()
	if err != nil {
		return err
	}
	headFp, err := r.refs.HeadCommit()
	if err != nil {
		return err
	}

	newTree := make(map[string]string, len(head.Tree))
	for name, fp := range head.Tree {
		newTree[name] = fp
	}
	for name, fp := range area.Addition() {
		newTree[name] = fp
	}
	for name := range area.Removal() {
		delete(newTree, name)
	}

	c := &objects.Commit{
		Message:   message,
		Timestamp: now(),
		Parent1:   headFp,
		Parent2:   secondParent,
		Tree:      newTree,
	}
	fp, err := r.commits.Put(c)
	if err != nil {
		return err
	}

	branch, err := r.refs.CurrentBranch()
	if err != nil {
		return err
	}
	if err := r.refs.WriteBranch(branch, fp); err != nil {
		return err
	}
	area.Clear()
	return area.Save()
}

// LogEntry is one printable record of commit metadata.
type LogEntry struct {
	Fingerprint string
	Parent1     string
	Parent2     string
	Timestamp   int64
	Message     string
}

func entryFor(fp string, c *objects.Commit) LogEntry {
	return LogEntry{
		Fingerprint: fp,
		Parent1:     c.Parent1,
		Parent2:     c.Parent2,
		Timestamp:   c.Timestamp,
		Message:     c.Message,
	}
}

// Log returns the first-parent history from HEAD, most recent first.
func (r *Repository) Log() ([]LogEntry, error) {
	headFp, err := r.refs.HeadCommit()
	if err != nil {
		return nil, err
	}
	var entries []LogEntry
	walk := r.graph.FirstParentWalk(headFp)
	for {
		fp, ok, err := walk()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		c, err := r.commits.Get(fp)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entryFor(fp, c))
	}
	return entries, nil
}

// GlobalLog returns every commit in the store, in the order
// CommitStore.All lists them (sorted by fingerprint).
func (r *Repository) GlobalLog() ([]LogEntry, error) {
	all, err := r.commits.All()
	if err != nil {
		return nil, err
	}
	entries := make([]LogEntry, 0, len(all))
	for _, fp := range all {
		c, err := r.commits.Get(fp)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entryFor(fp, c))
	}
	return entries, nil
}

// Find returns the fingerprints of every commit whose message exactly
// matches the given text.
func (r *Repository) Find(message string) ([]string, error) {
	all, err := r.commits.All()
	if err != nil {
		return nil, err
	}
	var matches []string
	for _, fp := range all {
		c, err := r.commits.Get(fp)
		if err != nil {
			return nil, err
		}
		if c.Message == message {
			matches = append(matches, fp)
		}
	}
	if len(matches) == 0 {
		return nil, core.NewUserError("Found no commit with that message.")
	}
	return matches, nil
}

// StatusReport is the structured result of Status; printing and coloring
// live entirely in the cmd package.
type StatusReport struct {
	Branches          []string
	CurrentBranch     string
	Staged            []string
	Removed           []string
	ModifiedNotStaged []string
	Untracked         []string
}

// Status computes the five status sections.
func (r *Repository) Status() (*StatusReport, error) {
	branches, err := r.refs.ListBranches()
	if err != nil {
		return nil, err
	}
	current, err := r.refs.CurrentBranch()
	if err != nil {
		return nil, err
	}
	head, err := r.headCommit()
	if err != nil {
		return nil, err
	}
	area, err := r.stagingArea()
	if err != nil {
		return nil, err
	}
	working, err := r.tree.List()
	if err != nil {
		return nil, err
	}
	workingSet := map[string]bool{}
	for _, name := range working {
		workingSet[name] = true
	}

	staged := sortedKeysFromAddition(area.Addition())
	removed := sortedKeysFromRemoval(area.Removal())

	var modifiedNotStaged []string
	seen := map[string]bool{}

	for _, name := range working {
		content, err := r.tree.Read(name)
		if err != nil {
			return nil, err
		}
		h := hash.FingerprintObject("blob", content)
		if fp, inAddition := area.Addition()[name]; inAddition {
			if fp != h {
				modifiedNotStaged = append(modifiedNotStaged, name+" (modified)")
				seen[name] = true
			}
			continue
		}
		if fp, tracked := head.Tree[name]; tracked {
			if fp != h {
				modifiedNotStaged = append(modifiedNotStaged, name+" (modified)")
				seen[name] = true
			}
		}
	}

	for name := range head.Tree {
		if seen[name] {
			continue
		}
		_, inRemoval := area.Removal()[name]
		if !workingSet[name] && !inRemoval {
			modifiedNotStaged = append(modifiedNotStaged, name+" (deleted)")
			seen[name] = true
		}
	}
	for name := range area.Addition() {
		if seen[name] {
			continue
		}
		if !workingSet[name] {
			modifiedNotStaged = append(modifiedNotStaged, name+" (deleted)")
			seen[name] = true
		}
	}
	sort.Strings(modifiedNotStaged)

	var untracked []string
	for _, name := range working {
		_, inAddition := area.Addition()[name]
		_, tracked := head.Tree[name]
		if !inAddition && !tracked {
			untracked = append(untracked, name)
		}
	}
	sort.Strings(untracked)

	return &StatusReport{
		Branches:          branches,
		CurrentBranch:     current,
		Staged:            staged,
		Removed:           removed,
		ModifiedNotStaged: modifiedNotStaged,
		Untracked:         untracked,
	}, nil
}

// Branch creates a new branch pointing at the current head commit.
func (r *Repository) Branch(name string) error {
	if r.refs.BranchExists(name) {
		return core.AlreadyExistsError(core.ErrCategoryRef, fmt.Sprintf("branch '%s'", name))
	}
	headFp, err := r.refs.HeadCommit()
	if err != nil {
		return err
	}
	return r.refs.WriteBranch(name, headFp)
}

// RmBranch deletes a branch pointer, refusing to delete the current
// branch.
func (r *Repository) RmBranch(name string) error {
	current, err := r.refs.CurrentBranch()
	if err != nil {
		return err
	}
	if name == current {
		return core.NewUserError("Cannot remove the current branch.")
	}
	if !r.refs.BranchExists(name) {
		return core.NewUserError("A branch with that name does not exist.")
	}
	return r.refs.DeleteBranch(name)
}

// CheckoutFile overwrites name in the working tree with its content from
// the current commit.
func (r *Repository) CheckoutFile(name string) error {
	head, err := r.headCommit()
	if err != nil {
		return err
	}
	return r.checkoutFileFromCommit(head, name, "File does not exist in that commit.")
}

// CheckoutCommitFile overwrites name in the working tree with its content
// from the commit identified by (a possibly abbreviated) fingerprint.
func (r *Repository) CheckoutCommitFile(commitID, name string) error {
	fp, err := r.commits.ResolvePrefix(commitID)
	if err != nil {
		return core.NewUserError("No commit with that id exists.")
	}
	c, err := r.commits.Get(fp)
	if err != nil {
		return err
	}
	return r.checkoutFileFromCommit(c, name, "File does not exist in that commit.")
}

func (r *Repository) checkoutFileFromCommit(c *objects.Commit, name, missingMessage string) error {
	fp, ok := c.Tree[name]
	if !ok {
		return core.NewUserError(missingMessage)
	}
	content, err := r.blobs.Get(fp)
	if err != nil {
		return err
	}
	return r.tree.Write(name, content)
}

// CheckoutBranch performs a safe reset to branch's head commit, then moves
// HEAD to branch without moving any branch pointer.
func (r *Repository) CheckoutBranch(name string) error {
	if !r.refs.BranchExists(name) {
		return core.NewUserError("No such branch exists.")
	}
	current, err := r.refs.CurrentBranch()
	if err != nil {
		return err
	}
	if name == current {
		return core.NewUserError("No need to checkout the current branch.")
	}

	targetFp, err := r.refs.ReadBranch(name)
	if err != nil {
		return err
	}
	if err := r.safeResetTo(targetFp); err != nil {
		return err
	}
	return r.refs.SetHead(name)
}

// Reset performs a safe reset of the working tree and staging area to the
// given commit, and moves the current branch pointer to it.
func (r *Repository) Reset(commitID string) error {
	fp, err := r.commits.ResolvePrefix(commitID)
	if err != nil {
		return core.NewUserError("No commit with that id exists.")
	}
	if err := r.safeResetTo(fp); err != nil {
		return err
	}
	branch, err := r.refs.CurrentBranch()
	if err != nil {
		return err
	}
	return r.refs.WriteBranch(branch, fp)
}

// safeResetTo rewrites the working tree and staging area to match the
// target commit, refusing if doing so would overwrite an untracked file.
func (r *Repository) safeResetTo(targetFp string) error {
	head, err := r.headCommit()
	if err != nil {
		return err
	}
	target, err := r.commits.Get(targetFp)
	if err != nil {
		return err
	}
	working, err := r.tree.List()
	if err != nil {
		return err
	}
	workingSet := map[string]bool{}
	for _, name := range working {
		workingSet[name] = true
	}

	for name := range target.Tree {
		_, trackedByHead := head.Tree[name]
		if workingSet[name] && !trackedByHead {
			return core.NewUserError("There is an untracked file in the way; delete it, or add and commit it first.")
		}
	}

	for name := range head.Tree {
		if _, inTarget := target.Tree[name]; !inTarget {
			if err := r.tree.Delete(name); err != nil {
				return err
			}
		}
	}
	for name, fp := range target.Tree {
		content, err := r.blobs.Get(fp)
		if err != nil {
			return err
		}
		if err := r.tree.Write(name, content); err != nil {
			return err
		}
	}

	area, err := r.stagingArea()
	if err != nil {
		return err
	}
	area.Clear()
	return area.Save()
}

func sortedKeysFromAddition(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysFromRemoval(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
