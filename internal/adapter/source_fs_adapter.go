// Package adapter contains filesystem and terminal adapters for the ggrep CLI.
package adapter

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/ggrep/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when walking a search tree. It hides direct `os` access so the
// traversal logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses root in lexical order. maxDepth limits how many directory
	// levels below root are entered (0 = unlimited). Symbolic links are
	// reported with their target's info but linked directories are never
	// descended into.
	Walk(root m.Path, maxDepth int, fn FilepathWalkFunc) error

	// Open opens a file for reading. Callers close it.
	Open(path m.Path) (io.ReadCloser, error)

	// FileInfo returns metadata for a path, following symbolic links.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer. info is nil when err is reported for a path that could not
// be inspected.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over entries under root in deterministic lexical order.
func (a *LocalSourceFSAdapter) Walk(root m.Path, maxDepth int, fn FilepathWalkFunc) error {
	rootStr := walkRoot(string(root))

	return filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(path, nil, err)
		}

		info, err := resolveEntry(path, d)
		if err != nil {
			return fn(path, nil, err)
		}

		if err := fn(path, info, nil); err != nil {
			return err
		}

		if d.IsDir() && path != rootStr && maxDepth > 0 && depth(rootStr, path) >= maxDepth {
			return filepath.SkipDir
		}

		return nil
	})
}

// Open opens the file at path.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - reading user-selected files is the purpose of the tool
	return os.Open(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// walkRoot makes WalkDir enter a root that is itself a symbolic link to a
// directory: a trailing separator forces the link to be resolved.
func walkRoot(root string) string {
	if root == "" {
		return "."
	}

	info, err := os.Lstat(root)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return root
	}

	if strings.HasSuffix(root, string(os.PathSeparator)) {
		return root
	}

	return root + string(os.PathSeparator)
}

func resolveEntry(path string, d fs.DirEntry) (os.FileInfo, error) {
	if d.Type()&fs.ModeSymlink != 0 {
		return os.Stat(path)
	}

	return d.Info()
}

func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}

	return strings.Count(rel, string(filepath.Separator)) + 1
}
