package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/locksmith/internal/adapters/fs"
	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/zerr"
)

type failingFS struct {
	err error
}

func (f failingFS) ReadFile(string) ([]byte, error) { return nil, f.err }

func (f failingFS) WalkDir(string, iofs.WalkDirFunc) error { return f.err }

func (f failingFS) Stat(string) (iofs.FileInfo, error) { return nil, f.err }

func TestSource_Load(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, domain.WantedLockfileName)
	require.NoError(t, os.WriteFile(path, []byte("lockfileVersion: '6.0'\n"), 0o600))

	data, found, err := fs.NewSource().Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "lockfileVersion: '6.0'\n", string(data))
}

func TestSource_Load_StripsByteOrderMark(t *testing.T) {
	fsys := fstest.MapFS{
		"pnpm-lock.yaml": &fstest.MapFile{Data: []byte("\xEF\xBB\xBFlockfileVersion: '6.0'\n")},
	}
	source := fs.NewSourceWithFS(fs.NewMapFSAdapter("/project", fsys))

	data, found, err := source.Load("/project/pnpm-lock.yaml")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "lockfileVersion: '6.0'\n", string(data))
}

func TestSource_Load_Missing(t *testing.T) {
	data, found, err := fs.NewSource().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestSource_Load_ReadFailure(t *testing.T) {
	source := fs.NewSourceWithFS(failingFS{err: iofs.ErrPermission})

	_, found, err := source.Load("/project/pnpm-lock.yaml")
	require.Error(t, err)
	assert.False(t, found)
	assert.ErrorIs(t, err, domain.ErrLockfileReadFailed)
	assert.ErrorIs(t, err, iofs.ErrPermission)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "/project/pnpm-lock.yaml", zErr.Metadata()["path"])
}
