// Package fsys lists directories for the file browser.
package fsys

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrInvalidPath is returned for paths that do not name a readable directory.
	ErrInvalidPath = errors.New("invalid path")
	// ErrEmpty is returned for directories without entries.
	ErrEmpty = errors.New("empty directory")
)

// EntryType classifies directory entries.
type EntryType string

const (
	TypeFile EntryType = "file"
	TypeDir  EntryType = "dir"
	TypeLink EntryType = "lnk"
)

// Entry is one directory member.
type Entry struct {
	Name string
	Type EntryType
}

// Lister reads directory listings.
type Lister interface {
	List(path string) ([]Entry, error)
}

// FS lists directories and reads files for viewing.
type FS interface {
	Lister
	ReadFile(path string) (string, error)
}

// maxViewSize caps how much of a file is read for display.
const maxViewSize = 1 << 20

// OS lists directories on the local filesystem.
type OS struct {
	ShowHidden bool
}

// List returns the entries of path with directories first, each group sorted
// by name.
func (o OS) List(path string) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, path)
	}
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if !o.ShowHidden && strings.HasPrefix(d.Name(), ".") {
			continue
		}
		entries = append(entries, Entry{Name: d.Name(), Type: entryType(d)})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	Sort(entries)
	return entries, nil
}

// Sort orders entries directories first, then by name.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].Type == TypeDir, entries[j].Type == TypeDir
		if di != dj {
			return di
		}
		return entries[i].Name < entries[j].Name
	})
}

func entryType(d fs.DirEntry) EntryType {
	switch {
	case d.Type()&fs.ModeSymlink != 0:
		return TypeLink
	case d.IsDir():
		return TypeDir
	default:
		return TypeFile
	}
}

// Up returns the parent of path. The root has no parent.
func Up(path string) (string, error) {
	clean := filepath.Clean(path)
	if clean == string(filepath.Separator) || clean == "." {
		return "", fmt.Errorf("%w: %s has no parent", ErrInvalidPath, path)
	}
	return filepath.Dir(clean), nil
}

// ReadFile returns up to maxViewSize bytes of path as text.
func (o OS) ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}
	data, err := io.ReadAll(io.LimitReader(f, maxViewSize))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
