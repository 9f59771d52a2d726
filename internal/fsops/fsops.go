// Package fsops performs the filesystem operations the tree panel requests:
// directory listings, create, rename, and trash. Everything here is
// synchronous; the panel runs these inside tea.Cmds so the UI never blocks.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is one directory-listing result.
type Entry struct {
	Name  string
	IsDir bool
}

// List returns the entries of a directory. Entries that cannot be statted
// are skipped rather than failing the whole listing.
func List(path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, Entry{Name: d.Name(), IsDir: d.IsDir()})
	}
	return entries, nil
}

// CreateFile creates an empty file, failing if the path already exists.
func CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create file %s: %w", path, err)
	}
	return f.Close()
}

// CreateDir creates a directory, failing if the path already exists.
func CreateDir(path string) error {
	if err := os.Mkdir(path, 0755); err != nil {
		return fmt.Errorf("create dir %s: %w", path, err)
	}
	return nil
}

// Rename moves old to new within the filesystem, refusing to clobber an
// existing target.
func Rename(old, new string) error {
	if _, err := os.Lstat(new); err == nil {
		return fmt.Errorf("rename %s: %s already exists", old, new)
	}
	if err := os.Rename(old, new); err != nil {
		return fmt.Errorf("rename %s: %w", old, err)
	}
	return nil
}

// Trash moves the path into a per-user trash directory instead of deleting
// it outright. The stored name carries a timestamp so repeated trashing of
// the same name never collides.
func Trash(path string) error {
	dir, err := trashDir()
	if err != nil {
		return fmt.Errorf("trash %s: %w", path, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("trash %s: %w", path, err)
	}
	dest := filepath.Join(dir, fmt.Sprintf("%s.%d", filepath.Base(path), time.Now().UnixNano()))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("trash %s: %w", path, err)
	}
	return nil
}

// userHomeDir is swapped out in tests.
var userHomeDir = os.UserHomeDir

func trashDir() (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "treetop", "trash"), nil
}
