package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts filesystem reads for testability.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns the file info for path.
	Stat(path string) (iofs.FileInfo, error)
	// WalkDir walks the tree rooted at root.
	WalkDir(root string, fn iofs.WalkDirFunc) error
}

// OSFS implements FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is a lockfile candidate chosen by the caller
	return os.ReadFile(path)
}

// Stat returns the file info for path.
func (o *OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// WalkDir walks the tree rooted at root.
func (o *OSFS) WalkDir(root string, fn iofs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// MapFSAdapter adapts an fs.FS (typically fstest.MapFS) to FileSystem for testing.
type MapFSAdapter struct {
	FS   iofs.FS
	Root string // simulated root path
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys iofs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: root,
	}
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(m.FS, m.toRelPath(path))
}

// Stat returns the file info for path.
func (m *MapFSAdapter) Stat(path string) (iofs.FileInfo, error) {
	rel := m.toRelPath(path)
	if rel == "" {
		rel = "."
	}
	return iofs.Stat(m.FS, rel)
}

// WalkDir walks the tree rooted at root, reporting paths joined with the simulated root.
func (m *MapFSAdapter) WalkDir(root string, fn iofs.WalkDirFunc) error {
	rel := m.toRelPath(root)
	if rel == "" {
		rel = "."
	}
	return iofs.WalkDir(m.FS, rel, func(path string, d iofs.DirEntry, err error) error {
		return fn(filepath.Join(m.Root, path), d, err)
	})
}

// toRelPath converts an absolute path to a relative path within the filesystem.
// Paths outside the root are returned unchanged so that lookups fail with "not exist".
func (m *MapFSAdapter) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return filepath.ToSlash(absPath)
	}

	if m.Root != "/" && absPath != m.Root && !strings.HasPrefix(absPath, m.Root+string(filepath.Separator)) {
		return absPath
	}

	rel := strings.TrimPrefix(absPath, m.Root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	return filepath.ToSlash(rel)
}
