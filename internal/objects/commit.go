package objects

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/nahomanteneh/gitlet/core"
	"github.com/nahomanteneh/gitlet/internal/hash"
)

// Commit is an immutable record: a message, a timestamp, up to two parent
// fingerprints, and a flat tree mapping file name to blob fingerprint.
type Commit struct {
	ID        string // fingerprint of the serialized form; not itself serialized
	Message   string
	Timestamp int64 // unix seconds; the initial commit uses 0
	Parent1   string
	Parent2   string // empty unless this is a merge commit
	Tree      map[string]string
}

// Parents returns the commit's parent fingerprints in order, omitting any
// that are absent.
func (c *Commit) Parents() []string {
	var parents []string
	if c.Parent1 != "" {
		parents = append(parents, c.Parent1)
	}
	if c.Parent2 != "" {
		parents = append(parents, c.Parent2)
	}
	return parents
}

// IsMerge reports whether the commit has two parents.
func (c *Commit) IsMerge() bool {
	return c.Parent2 != ""
}

// serialize produces the canonical byte encoding of the commit, excluding
// its own ID, using the length-prefixed-field shape the teacher's
// internal/objects/commit.go serializer uses for its own commit record.
func (c *Commit) serialize() []byte {
	var buf bytes.Buffer

	names := make([]string, 0, len(c.Tree))
	for name := range c.Tree {
		names = append(names, name)
	}
	sort.Strings(names)

	writeUint32(&buf, uint32(len(names)))
	for _, name := range names {
		writeLengthPrefixedString(&buf, name)
		writeLengthPrefixedString(&buf, c.Tree[name])
	}

	parents := c.Parents()
	writeUint32(&buf, uint32(len(parents)))
	for _, p := range parents {
		writeLengthPrefixedString(&buf, p)
	}

	binary.Write(&buf, binary.LittleEndian, c.Timestamp)
	writeLengthPrefixedString(&buf, c.Message)

	return buf.Bytes()
}

func deserializeCommit(data []byte) (*Commit, error) {
	buf := bytes.NewReader(data)
	c := &Commit{Tree: make(map[string]string)}

	entryCount, err := readUint32(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree entry count: %w", err)
	}
	for i := uint32(0); i < entryCount; i++ {
		name, err := readLengthPrefixedString(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to read tree entry name: %w", err)
		}
		fp, err := readLengthPrefixedString(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to read tree entry fingerprint: %w", err)
		}
		c.Tree[name] = fp
	}

	parentCount, err := readUint32(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read parent count: %w", err)
	}
	parents := make([]string, parentCount)
	for i := uint32(0); i < parentCount; i++ {
		parents[i], err = readLengthPrefixedString(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to read parent: %w", err)
		}
	}
	if len(parents) > 0 {
		c.Parent1 = parents[0]
	}
	if len(parents) > 1 {
		c.Parent2 = parents[1]
	}

	if err := binary.Read(buf, binary.LittleEndian, &c.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to read timestamp: %w", err)
	}

	c.Message, err = readLengthPrefixedString(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}

	return c, nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	binary.Write(buf, binary.LittleEndian, v)
}

func readUint32(buf *bytes.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(buf, binary.LittleEndian, &v)
	return v, err
}

func writeLengthPrefixedString(buf *bytes.Buffer, s string) {
	b := []byte(s)
	writeUint32(buf, uint32(len(b)))
	buf.Write(b)
}

func readLengthPrefixedString(buf *bytes.Reader) (string, error) {
	length, err := readUint32(buf)
	if err != nil {
		return "", err
	}
	b := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(buf, b); err != nil {
			return "", err
		}
	}
	return string(b), nil
}

// CommitStore persists serialized commit records keyed by fingerprint.
type CommitStore struct {
	dir string
}

// NewCommitStore returns a CommitStore rooted at the repository's commits
// directory.
func NewCommitStore(repo *core.Repository) *CommitStore {
	return &CommitStore{dir: repo.CommitsDir}
}

// Put serializes and writes c, assigning and returning its fingerprint. A
// second write of an identical commit is a no-op, matching object
// immutability.
func (s *CommitStore) Put(c *Commit) (string, error) {
	data := c.serialize()
	fp := hash.FingerprintObject("commit", data)
	path := filepath.Join(s.dir, fp)
	if core.FileExists(path) {
		return fp, nil
	}
	if err := core.WriteFileAtomic(path, data); err != nil {
		return "", core.ObjectError(fmt.Sprintf("failed to write commit %s", fp), err)
	}
	return fp, nil
}

// Get reads and deserializes the commit stored under fp.
func (s *CommitStore) Get(fp string) (*Commit, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, fp))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, core.ObjectError(fmt.Sprintf("failed to read commit %s", fp), err)
	}
	c, err := deserializeCommit(data)
	if err != nil {
		return nil, core.ObjectError(fmt.Sprintf("corrupt commit %s", fp), err)
	}
	c.ID = fp
	return c, nil
}

// Exists reports whether a commit with the given fingerprint is stored.
func (s *CommitStore) Exists(fp string) bool {
	return core.FileExists(filepath.Join(s.dir, fp))
}

// All returns every commit fingerprint currently in the store, sorted by
// fingerprint (os.ReadDir sorts entries by file name) — global-log's
// iteration order.
func (s *CommitStore) All() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, core.ObjectError("failed to list commits", err)
	}
	fps := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			fps = append(fps, e.Name())
		}
	}
	return fps, nil
}

// ResolvePrefix resolves a possibly-abbreviated fingerprint to a full one.
// Per base spec §3, an unambiguous prefix of one or more characters
// resolves; on multiple matches this implementation deterministically picks
// the lexicographically smallest match (an explicit open-question decision,
// see DESIGN.md) rather than leaving the choice to filesystem iteration
// order.
func (s *CommitStore) ResolvePrefix(prefix string) (string, error) {
	if len(prefix) == 40 {
		if s.Exists(prefix) {
			return prefix, nil
		}
		return "", ErrNotFound
	}

	all, err := s.All()
	if err != nil {
		return "", err
	}
	var matches []string
	for _, fp := range all {
		if len(fp) >= len(prefix) && fp[:len(prefix)] == prefix {
			matches = append(matches, fp)
		}
	}
	if len(matches) == 0 {
		return "", ErrNotFound
	}
	sort.Strings(matches)
	return matches[0], nil
}
