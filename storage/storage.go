// Package storage is the filesystem backing of spec.md §6's storage
// utility: one sub-directory per mailbox under a base directory, one
// file per message entry. The core packages reach the filesystem only
// through it; the import tooling (legacymbox, importpipeline) opens its
// own files.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/ShadowGabbo/mua/muaerr"
)

// emptyBoxDir is the reserved on-disk name for the mailbox whose name is
// the empty string; a directory entry cannot literally be named "".
const emptyBoxDir = "_"

// Store roots a set of Boxes at a base directory on disk.
type Store struct {
	baseDir string
}

// Open validates baseDir exists and is a directory, returning a Store
// rooted there.
func Open(baseDir string) (*Store, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: base directory must not be empty", muaerr.ErrEmptyInput)
	}
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: stat base directory: %v", muaerr.ErrIO, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", muaerr.ErrIO, baseDir)
	}
	return &Store{baseDir: baseDir}, nil
}

// BaseDir returns the store's root directory.
func (s *Store) BaseDir() string { return s.baseDir }

func boxDirName(name string) string {
	if name == "" {
		return emptyBoxDir
	}
	return name
}

func boxName(dirName string) string {
	if dirName == emptyBoxDir {
		return ""
	}
	return dirName
}

// Boxes returns every mailbox sub-directory under the base directory, in
// ascending mailbox-name order (the reserved "_" directory sorts as "").
func (s *Store) Boxes() ([]*Box, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: list base directory: %v", muaerr.ErrIO, err)
	}
	var boxes []*Box
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		boxes = append(boxes, &Box{
			store: s,
			name:  boxName(e.Name()),
			dir:   filepath.Join(s.baseDir, e.Name()),
		})
	}
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].name < boxes[j].name })
	return boxes, nil
}

// CreateBox creates a new, empty mailbox directory named name.
func (s *Store) CreateBox(name string) (*Box, error) {
	dir := filepath.Join(s.baseDir, boxDirName(name))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create mailbox directory: %v", muaerr.ErrIO, err)
	}
	return &Box{store: s, name: name, dir: dir}, nil
}

// Box is a mailbox's on-disk directory.
type Box struct {
	store *Store
	name  string
	dir   string
}

// Name returns the mailbox's display name.
func (b *Box) Name() string { return b.name }

// Entries returns every message entry in the box, ordered by the
// numeric sequence they were appended in.
func (b *Box) Entries() ([]*Entry, error) {
	files, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list mailbox directory: %v", muaerr.ErrIO, err)
	}
	var entries []*Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		seq, convErr := strconv.Atoi(f.Name())
		if convErr != nil {
			continue
		}
		entries = append(entries, &Entry{box: b, seq: seq, path: filepath.Join(b.dir, f.Name())})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	return entries, nil
}

// Entry appends content as a new entry file and returns a handle to it.
func (b *Box) Entry(content string) (*Entry, error) {
	existing, err := b.Entries()
	if err != nil {
		return nil, err
	}
	next := 1
	if len(existing) > 0 {
		next = existing[len(existing)-1].seq + 1
	}
	path := filepath.Join(b.dir, strconv.Itoa(next))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("%w: write mailbox entry: %v", muaerr.ErrIO, err)
	}
	return &Entry{box: b, seq: next, path: path}, nil
}

// Entry is a single message's on-disk file.
type Entry struct {
	box  *Box
	seq  int
	path string
}

// Content returns the entry's raw text.
func (e *Entry) Content() (string, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		return "", fmt.Errorf("%w: read mailbox entry: %v", muaerr.ErrIO, err)
	}
	return string(data), nil
}

// Delete removes the entry's file.
func (e *Entry) Delete() error {
	if err := os.Remove(e.path); err != nil {
		return fmt.Errorf("%w: delete mailbox entry: %v", muaerr.ErrIO, err)
	}
	return nil
}
