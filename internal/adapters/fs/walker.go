package fs

import (
	iofs "io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
)

var _ ports.ProjectFinder = (*Walker)(nil)

// Walker discovers project directories that carry a committed lockfile.
type Walker struct {
	fs FileSystem
}

// NewWalker creates a new Walker over the OS filesystem.
func NewWalker() *Walker {
	return NewWalkerWithFS(NewOSFS())
}

// NewWalkerWithFS creates a new Walker over fsys.
func NewWalkerWithFS(fsys FileSystem) *Walker {
	return &Walker{fs: fsys}
}

// FindProjects yields every directory under root that contains a lockfile,
// skipping VCS metadata, installed dependencies and ignored directories.
// Unreadable subtrees are skipped.
func (w *Walker) FindProjects(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = w.fs.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != root && shouldSkipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if d.Name() != domain.WantedLockfileName {
				return nil
			}

			if !yield(filepath.Dir(path)) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func shouldSkipDir(name string, ignores []string) bool {
	switch name {
	case ".git", ".jj", "node_modules":
		return true
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
