package git_test

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/locksmith/internal/adapters/git"
	"go.trai.ch/locksmith/internal/core/domain"
)

func TestDetector_CurrentBranch(t *testing.T) {
	var gotDir string
	var gotArgs []string
	d := git.NewDetectorWithRunner(func(dir string, args ...string) (string, error) {
		gotDir, gotArgs = dir, args
		return "feature/login\n", nil
	})

	branch, err := d.CurrentBranch("/repo")
	require.NoError(t, err)
	assert.Equal(t, "feature/login", branch)
	assert.Equal(t, "/repo", gotDir)
	assert.Equal(t, []string{"symbolic-ref", "--short", "HEAD"}, gotArgs)
}

func TestDetector_CurrentBranch_NotOnBranch(t *testing.T) {
	d := git.NewDetectorWithRunner(func(string, ...string) (string, error) {
		return "", &exec.ExitError{}
	})

	branch, err := d.CurrentBranch("/repo")
	require.NoError(t, err)
	assert.Empty(t, branch)
}

func TestDetector_CurrentBranch_GitMissing(t *testing.T) {
	d := git.NewDetectorWithRunner(func(string, ...string) (string, error) {
		return "", exec.ErrNotFound
	})

	_, err := d.CurrentBranch("/repo")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBranchDetectionFailed)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestDetector_CurrentBranch_OutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	branch, err := git.NewDetector().CurrentBranch(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, branch)
}
