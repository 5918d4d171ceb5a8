// Package git detects the version-control branch of a project directory.
package git

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BranchDetector = (*Detector)(nil)

// Runner runs git with args in dir and returns its standard output.
type Runner func(dir string, args ...string) (string, error)

// Detector implements ports.BranchDetector by asking the git binary.
type Detector struct {
	run Runner
}

// NewDetector creates a new Detector that executes the git binary.
func NewDetector() *Detector {
	return NewDetectorWithRunner(execGit)
}

// NewDetectorWithRunner creates a new Detector using run to invoke git.
func NewDetectorWithRunner(run Runner) *Detector {
	return &Detector{run: run}
}

// CurrentBranch returns the short name of the branch checked out in dir.
// A detached HEAD or a directory outside a repository yields "".
func (d *Detector) CurrentBranch(dir string) (string, error) {
	out, err := d.run(dir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", zerr.With(errors.Join(domain.ErrBranchDetectionFailed, err), "dir", dir)
	}
	return strings.TrimSpace(out), nil
}

func execGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return stdout.String(), nil
}
