package core

import "path/filepath"

// Repository locates the on-disk layout of a Gitlet repository rooted at
// Root. It carries no cached state — every reader re-opens the files it
// needs, which keeps commands trivially safe to re-run without a stale
// handle (there is no server process holding this open across commands).
type Repository struct {
	Root       string
	GitletDir  string
	BlobsDir   string
	CommitsDir string
	StagingDir string
	BranchesDir string
	HeadFile   string
}

// NewRepository builds a Repository handle rooted at dir, without checking
// that a repository actually exists there — callers that require an
// existing repository should resolve the root via FindGitletRoot first.
func NewRepository(dir string) *Repository {
	gitletDir := filepath.Join(dir, GitletDirName)
	return &Repository{
		Root:        dir,
		GitletDir:   gitletDir,
		BlobsDir:    filepath.Join(gitletDir, "blobs"),
		CommitsDir:  filepath.Join(gitletDir, "commits"),
		StagingDir:  filepath.Join(gitletDir, "stagingArea"),
		BranchesDir: filepath.Join(gitletDir, "branches"),
		HeadFile:    filepath.Join(gitletDir, "HEAD"),
	}
}

// Exists reports whether this repository has already been initialized on
// disk.
func (r *Repository) Exists() bool {
	return FileExists(r.GitletDir)
}
