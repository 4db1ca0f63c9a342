// Package objects implements the two content-addressed stores — blobs and
// commits — that back the version-control system's object model.
package objects

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nahomanteneh/gitlet/core"
	"github.com/nahomanteneh/gitlet/internal/hash"
)

// ErrNotFound is returned when a requested blob or commit is absent from the
// store. It is a programmer-visible error, not one of the fixed user-facing
// catalogue strings (base spec §7): a missing object that ought to exist is
// a dangling reference, not a validated precondition.
var ErrNotFound = fmt.Errorf("object not found")

// BlobStore persists raw file content keyed by its fingerprint.
type BlobStore struct {
	dir string
}

// NewBlobStore returns a BlobStore rooted at the repository's blobs
// directory.
func NewBlobStore(repo *core.Repository) *BlobStore {
	return &BlobStore{dir: repo.BlobsDir}
}

// Put writes content under its fingerprint, idempotently, and returns the
// fingerprint.
func (s *BlobStore) Put(content []byte) (string, error) {
	fp := hash.FingerprintObject("blob", content)
	path := filepath.Join(s.dir, fp)
	if core.FileExists(path) {
		return fp, nil
	}
	if err := core.WriteFileAtomic(path, content); err != nil {
		return "", core.ObjectError(fmt.Sprintf("failed to write blob %s", fp), err)
	}
	return fp, nil
}

// Get retrieves a blob's content by fingerprint.
func (s *BlobStore) Get(fp string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, fp))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, core.ObjectError(fmt.Sprintf("failed to read blob %s", fp), err)
	}
	return content, nil
}

// Exists reports whether a blob with the given fingerprint is stored.
func (s *BlobStore) Exists(fp string) bool {
	return core.FileExists(filepath.Join(s.dir, fp))
}
