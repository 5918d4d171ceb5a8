// Package fs provides file system adapters for reading, discovering and hashing lockfiles.
package fs

import (
	"bytes"
	"errors"
	iofs "io/fs"

	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileSource = (*Source)(nil)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Source reads lockfile candidates from a FileSystem.
type Source struct {
	fs FileSystem
}

// NewSource creates a new Source reading from the OS filesystem.
func NewSource() *Source {
	return NewSourceWithFS(NewOSFS())
}

// NewSourceWithFS creates a new Source reading from fsys.
func NewSourceWithFS(fsys FileSystem) *Source {
	return &Source{fs: fsys}
}

// Load reads the file at path and strips a leading byte-order mark.
// A missing file is not an error.
func (s *Source) Load(path string) ([]byte, bool, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(errors.Join(domain.ErrLockfileReadFailed, err), "failed to read "+path), "path", path)
	}

	return bytes.TrimPrefix(data, byteOrderMark), true, nil
}
