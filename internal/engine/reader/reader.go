// Package reader implements the lockfile read pipeline: candidate selection,
// conflict recovery, parsing, schema normalization and compatibility gating.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/locksmith/internal/engine/compat"
	"go.trai.ch/zerr"
)

// Reader reads lockfiles from a project directory.
// It holds no state between calls; every read goes back to storage.
type Reader struct {
	source    ports.LockfileSource
	codec     ports.DocumentCodec
	recoverer *Recoverer
	gate      *compat.Gate
	branches  ports.BranchDetector
	logger    ports.Logger
}

// NewReader creates a new Reader.
func NewReader(
	source ports.LockfileSource,
	codec ports.DocumentCodec,
	resolver ports.ConflictResolver,
	gate *compat.Gate,
	branches ports.BranchDetector,
	logger ports.Logger,
) *Reader {
	return &Reader{
		source:    source,
		codec:     codec,
		recoverer: NewRecoverer(resolver),
		gate:      gate,
		branches:  branches,
		logger:    logger,
	}
}

// ReadWanted reads the committed lockfile of dir.
// A nil document with a nil error means no usable lockfile exists.
func (r *Reader) ReadWanted(dir string, opts domain.ReadOptions) (*domain.Document, error) {
	outcome, err := r.ReadWantedAndAutofix(dir, opts)
	if err != nil {
		return nil, err
	}
	return outcome.Document, nil
}

// ReadWantedAndAutofix reads the committed lockfile of dir with conflict
// autofix enabled and reports whether conflicts were resolved.
// A zero outcome (nil Document) means no usable lockfile exists.
func (r *Reader) ReadWantedAndAutofix(dir string, opts domain.ReadOptions) (domain.ReadOutcome, error) {
	branch := ""
	if opts.UseBranchVariant {
		detected, err := r.branches.CurrentBranch(dir)
		if err != nil {
			r.logger.Warn("Failed to detect the current branch, falling back to the default lockfile", "dir", dir, "error", err.Error())
		} else {
			branch = detected
		}
	}

	return r.read(dir, domain.WantedCandidates(dir, branch, true), opts)
}

// ReadCurrent reads the lockfile describing the installed state of dir.
// Conflict autofix is never applied to it.
func (r *Reader) ReadCurrent(dir string, opts domain.ReadOptions) (*domain.Document, error) {
	outcome, err := r.read(dir, []domain.Candidate{domain.CurrentCandidate(dir)}, opts)
	if err != nil {
		return nil, err
	}
	return outcome.Document, nil
}

// read tries candidates in order and returns the first usable document.
func (r *Reader) read(dir string, candidates []domain.Candidate, opts domain.ReadOptions) (domain.ReadOutcome, error) {
	for _, candidate := range candidates {
		outcome, ok, err := r.readCandidate(dir, candidate, opts)
		if err != nil {
			return domain.ReadOutcome{}, err
		}
		if ok {
			return outcome, nil
		}
	}
	return domain.ReadOutcome{}, nil
}

// readCandidate returns ok == false when the candidate is missing or was
// rejected as incompatible with IgnoreIncompatible set.
func (r *Reader) readCandidate(dir string, c domain.Candidate, opts domain.ReadOptions) (domain.ReadOutcome, bool, error) {
	data, found, err := r.source.Load(c.Path)
	if err != nil {
		return domain.ReadOutcome{}, false, err
	}
	if !found {
		return domain.ReadOutcome{}, false, nil
	}

	clean, hadConflicts, err := r.recoverer.Recover(data, c.AllowAutofix)
	if err != nil {
		return domain.ReadOutcome{}, false, withPath(err, "failed to resolve merge conflicts in "+c.Path, c.Path)
	}

	parsed, err := r.codec.Parse(clean)
	if err != nil {
		return domain.ReadOutcome{}, false, withPath(errors.Join(domain.ErrBrokenLockfile, err), "failed to parse "+c.Path, c.Path)
	}
	if hadConflicts {
		r.logger.Info(
			fmt.Sprintf("Merge conflict detected in %s and successfully merged", filepath.Base(c.Path)),
			"prefix", dir,
		)
	}

	doc := domain.Normalize(*parsed)
	if !doc.Root.IsZero() {
		r.logger.Warn("Ignoring project fields at the root of a lockfile that has importers", "path", c.Path)
	}

	verdict, err := r.gate.Evaluate(doc.LockfileVersion, opts.WantedVersions)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFormatVersion) {
			err = errors.Join(domain.ErrBrokenLockfile, err)
		}
		return domain.ReadOutcome{}, false, withPath(err, "failed to check the format version of "+c.Path, c.Path)
	}

	switch verdict.Kind {
	case domain.VerdictAcceptWithWarning:
		r.logger.Warn(verdict.Message, "path", c.Path)
		return domain.ReadOutcome{Document: &doc, HadConflicts: hadConflicts}, true, nil
	case domain.VerdictAccept:
		return domain.ReadOutcome{Document: &doc, HadConflicts: hadConflicts}, true, nil
	}

	if opts.IgnoreIncompatible {
		r.logger.Warn("Ignoring not compatible lockfile", "path", c.Path)
		return domain.ReadOutcome{}, false, nil
	}

	cause := errors.Join(domain.ErrLockfileBreakingChange, zerr.New(verdict.Message))
	return domain.ReadOutcome{}, false, withPath(cause, "lockfile "+c.Path+" is not compatible with the current version", c.Path)
}

func withPath(err error, msg, path string) error {
	return zerr.With(zerr.Wrap(err, msg), "path", path)
}
