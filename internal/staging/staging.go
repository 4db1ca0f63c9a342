// Package staging implements the staging area: an addition map from file
// name to blob fingerprint and a removal set of file names, each persisted
// as its own byte-format file under .gitlet/stagingArea. Grounded on the
// teacher's internal/staging/staging.go WriteIndex/readIndex length-prefixed
// byte format, simplified to base spec's shape — no stage numbers, no mode
// bits, no zlib-compressed blob storage (that lives in internal/objects
// now), and addition/removal are mutually exclusive per file.
package staging

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/nahomanteneh/gitlet/core"
)

const (
	additionFileName = "ADDITION"
	removalFileName  = "REMOVAL"
)

// Area is the staging area for a single repository.
type Area struct {
	additionPath string
	removalPath  string
	addition     map[string]string // file name -> blob fingerprint
	removal      map[string]bool   // file name -> staged for removal
}

// Load reads the current staging area from disk, returning an empty Area if
// no staging files exist yet (as when init loads it before first saving it).
func Load(repo *core.Repository) (*Area, error) {
	a := &Area{
		additionPath: filepath.Join(repo.StagingDir, additionFileName),
		removalPath:  filepath.Join(repo.StagingDir, removalFileName),
		addition:     make(map[string]string),
		removal:      make(map[string]bool),
	}

	if err := a.readAddition(); err != nil {
		return nil, err
	}
	if err := a.readRemoval(); err != nil {
		return nil, err
	}
	return a, nil
}

// Addition returns the file-name-to-blob-fingerprint map of staged
// additions/modifications. Callers must not mutate the returned map.
func (a *Area) Addition() map[string]string {
	return a.addition
}

// Removal returns the set of file names staged for removal. Callers must
// not mutate the returned map.
func (a *Area) Removal() map[string]bool {
	return a.removal
}

// Stage records name as staged for addition with the given blob
// fingerprint, clearing any pending removal of the same name (addition and
// removal are mutually exclusive per file).
func (a *Area) Stage(name, blobFingerprint string) {
	a.addition[name] = blobFingerprint
	delete(a.removal, name)
}

// Unstage clears any staged addition for name, without affecting removal.
func (a *Area) Unstage(name string) {
	delete(a.addition, name)
}

// StageRemoval marks name as staged for removal, clearing any pending
// addition of the same name.
func (a *Area) StageRemoval(name string) {
	a.removal[name] = true
	delete(a.addition, name)
}

// ClearRemoval clears a pending removal for name without staging an
// addition.
func (a *Area) ClearRemoval(name string) {
	delete(a.removal, name)
}

// Clear empties both the addition map and the removal set, as happens after
// a successful commit.
func (a *Area) Clear() {
	a.addition = make(map[string]string)
	a.removal = make(map[string]bool)
}

// IsEmpty reports whether there is nothing staged.
func (a *Area) IsEmpty() bool {
	return len(a.addition) == 0 && len(a.removal) == 0
}

// Save persists both the addition map and removal set to disk.
func (a *Area) Save() error {
	if err := a.writeAddition(); err != nil {
		return err
	}
	return a.writeRemoval()
}

func (a *Area) writeAddition() error {
	names := sortedKeys(a.addition)
	var buf []byte
	buf = appendUint32(buf, uint32(len(names)))
	for _, name := range names {
		buf = appendLengthPrefixedString(buf, name)
		buf = appendLengthPrefixedString(buf, a.addition[name])
	}
	if err := core.WriteFileAtomic(a.additionPath, buf); err != nil {
		return core.IndexError("failed to write staged additions", err)
	}
	return nil
}

func (a *Area) readAddition() error {
	content, err := os.ReadFile(a.additionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return core.IndexError("failed to read staged additions", err)
	}
	offset := 0
	count, n, err := readUint32(content, offset)
	if err != nil {
		return core.IndexError("corrupt staged additions", err)
	}
	offset = n
	for i := uint32(0); i < count; i++ {
		name, next, err := readLengthPrefixedString(content, offset)
		if err != nil {
			return core.IndexError("corrupt staged additions", err)
		}
		offset = next
		fp, next, err := readLengthPrefixedString(content, offset)
		if err != nil {
			return core.IndexError("corrupt staged additions", err)
		}
		offset = next
		a.addition[name] = fp
	}
	return nil
}

func (a *Area) writeRemoval() error {
	names := make([]string, 0, len(a.removal))
	for name := range a.removal {
		names = append(names, name)
	}
	sort.Strings(names)
	var buf []byte
	buf = appendUint32(buf, uint32(len(names)))
	for _, name := range names {
		buf = appendLengthPrefixedString(buf, name)
	}
	if err := core.WriteFileAtomic(a.removalPath, buf); err != nil {
		return core.IndexError("failed to write staged removals", err)
	}
	return nil
}

func (a *Area) readRemoval() error {
	content, err := os.ReadFile(a.removalPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return core.IndexError("failed to read staged removals", err)
	}
	offset := 0
	count, n, err := readUint32(content, offset)
	if err != nil {
		return core.IndexError("corrupt staged removals", err)
	}
	offset = n
	for i := uint32(0); i < count; i++ {
		name, next, err := readLengthPrefixedString(content, offset)
		if err != nil {
			return core.IndexError("corrupt staged removals", err)
		}
		offset = next
		a.removal[name] = true
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func appendUint32(buf []byte, v uint32) []byte {
	tmp := make([]byte, 4)
	binary.LittleEndian.PutUint32(tmp, v)
	return append(buf, tmp...)
}

func appendLengthPrefixedString(buf []byte, s string) []byte {
	buf = appendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

func readUint32(content []byte, offset int) (uint32, int, error) {
	if offset+4 > len(content) {
		return 0, 0, fmt.Errorf("unexpected end of data reading length")
	}
	return binary.LittleEndian.Uint32(content[offset : offset+4]), offset + 4, nil
}

func readLengthPrefixedString(content []byte, offset int) (string, int, error) {
	length, offset, err := readUint32(content, offset)
	if err != nil {
		return "", 0, err
	}
	if offset+int(length) > len(content) {
		return "", 0, fmt.Errorf("unexpected end of data reading string")
	}
	return string(content[offset : offset+int(length)]), offset + int(length), nil
}
