package fs_test

import (
	iofs "io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/locksmith/internal/adapters/fs"
)

func TestMapFSAdapter_Stat(t *testing.T) {
	adapter := fs.NewMapFSAdapter("/repo", fstest.MapFS{
		"pnpm-lock.yaml":   &fstest.MapFile{Data: []byte("lockfileVersion: '6.0'\n")},
		"packages/web/a.x": &fstest.MapFile{},
	})

	info, err := adapter.Stat("/repo/pnpm-lock.yaml")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	info, err = adapter.Stat("/repo/packages/web")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = adapter.Stat("/elsewhere/pnpm-lock.yaml")
	assert.ErrorIs(t, err, iofs.ErrNotExist)
}

func TestOSFS_Stat(t *testing.T) {
	dir := t.TempDir()

	info, err := fs.NewOSFS().Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = fs.NewOSFS().Stat(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, iofs.ErrNotExist)
}
