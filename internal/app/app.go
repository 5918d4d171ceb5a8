// Package app implements the application layer for locksmith.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/locksmith/internal/engine/reader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	reader   *reader.Reader
	codec    ports.DocumentCodec
	hasher   ports.Hasher
	settings ports.SettingsLoader
	finder   ports.ProjectFinder
	logger   ports.Logger
	limit    int
}

// New creates a new App instance.
func New(
	r *reader.Reader,
	codec ports.DocumentCodec,
	hasher ports.Hasher,
	settings ports.SettingsLoader,
	finder ports.ProjectFinder,
	log ports.Logger,
) *App {
	return &App{
		reader:   r,
		codec:    codec,
		hasher:   hasher,
		settings: settings,
		finder:   finder,
		logger:   log,
		limit:    runtime.NumCPU(),
	}
}

// WithConcurrency caps the number of directories checked at once.
// Values below one are ignored.
func (a *App) WithConcurrency(n int) *App {
	if n > 0 {
		a.limit = n
	}
	return a
}

// UseJSONLogs switches the logger to JSON output when it supports it.
func (a *App) UseJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(enable)
	}
}

// Options carries the command-line overrides for a read.
// Unset fields fall back to the settings file, then to the defaults.
type Options struct {
	WantedVersions     []string
	IgnoreIncompatible domain.Optional[bool]
	UseBranchLockfile  domain.Optional[bool]

	// Current reads the installed-state lockfile instead of the committed one.
	Current bool

	// ConfigPath points at an explicit settings file. When empty the nearest
	// settings file above the project directory is used, if any.
	ConfigPath string
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	Options

	// Recursive checks every project below the root instead of the root alone.
	Recursive bool

	// Ignores lists directory name globs skipped by a recursive check.
	Ignores []string
}

// CheckStatus is the verdict for one checked directory.
type CheckStatus string

const (
	// StatusOK means a usable lockfile was read.
	StatusOK CheckStatus = "ok"
	// StatusMerged means a usable lockfile was read after resolving merge conflicts.
	StatusMerged CheckStatus = "merged"
	// StatusMissing means no usable lockfile exists.
	StatusMissing CheckStatus = "missing"
	// StatusFailed means the lockfile could not be used.
	StatusFailed CheckStatus = "failed"
)

// CheckResult is the outcome of checking one directory.
type CheckResult struct {
	Dir             string
	Status          CheckStatus
	LockfileVersion string
	Digest          string
	Err             error
}

// Read loads the lockfile of dir and writes it to w in the canonical schema.
func (a *App) Read(ctx context.Context, dir string, opts Options, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "dir", dir)
	}

	readOpts, err := a.resolveOptions(abs, opts)
	if err != nil {
		return err
	}

	outcome, err := a.read(abs, opts.Current, readOpts)
	if err != nil {
		return err
	}
	if outcome.Document == nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileNotFound, "nothing to read"), "dir", abs)
	}

	data, err := a.codec.Encode(outcome.Document)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to render lockfile"), "dir", abs)
	}

	if _, err := w.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write lockfile")
	}
	return nil
}

// Check evaluates the lockfile of root, or of every project below it, and
// returns one result per directory sorted by path.
// It returns domain.ErrCheckFailed when at least one directory failed.
func (a *App) Check(ctx context.Context, root string, opts CheckOptions) ([]CheckResult, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "dir", root)
	}

	dirs := []string{abs}
	if opts.Recursive {
		dirs = slices.Collect(a.finder.FindProjects(abs, opts.Ignores))
		slices.Sort(dirs)
	}

	results := make([]CheckResult, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.limit)

	for i, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.checkDir(dir, opts.Options)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, res := range results {
		if res.Status == StatusFailed {
			failed++
		}
	}
	if failed > 0 {
		err := zerr.Wrap(domain.ErrCheckFailed, fmt.Sprintf("%d of %d lockfiles cannot be used", failed, len(results)))
		return results, err
	}
	return results, nil
}

func (a *App) checkDir(dir string, opts Options) CheckResult {
	res := CheckResult{Dir: dir}

	readOpts, err := a.resolveOptions(dir, opts)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	outcome, err := a.read(dir, opts.Current, readOpts)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	if outcome.Document == nil {
		res.Status = StatusMissing
		return res
	}

	res.Status = StatusOK
	if outcome.HadConflicts {
		res.Status = StatusMerged
	}
	res.LockfileVersion = outcome.Document.LockfileVersion.OrElse(domain.BaselineFormatVersion)

	data, err := a.codec.Encode(outcome.Document)
	if err != nil {
		res.Status = StatusFailed
		res.Err = zerr.With(zerr.Wrap(err, "failed to render lockfile"), "dir", dir)
		return res
	}
	res.Digest = a.hasher.Hash(data)
	return res
}

func (a *App) read(dir string, current bool, opts domain.ReadOptions) (domain.ReadOutcome, error) {
	if current {
		doc, err := a.reader.ReadCurrent(dir, opts)
		return domain.ReadOutcome{Document: doc}, err
	}
	return a.reader.ReadWantedAndAutofix(dir, opts)
}

// resolveOptions merges command-line overrides with the settings file.
func (a *App) resolveOptions(dir string, opts Options) (domain.ReadOptions, error) {
	settings := &domain.Settings{}

	path := opts.ConfigPath
	if path == "" {
		if found, ok := a.settings.Discover(dir); ok {
			path = found
		}
	}

	if path != "" {
		loaded, err := a.settings.Load(path)
		switch {
		case err == nil:
			settings = loaded
		case errors.Is(err, domain.ErrConfigNotFound) && opts.ConfigPath == "":
			// Discovered file vanished before it was read.
		default:
			return domain.ReadOptions{}, zerr.Wrap(err, "failed to load settings")
		}
	}

	wanted := settings.WantedVersions
	if len(opts.WantedVersions) > 0 {
		wanted = opts.WantedVersions
	}

	return domain.ReadOptions{
		WantedVersions:     wanted,
		IgnoreIncompatible: orElse(opts.IgnoreIncompatible, settings.IgnoreIncompatible, false),
		UseBranchVariant:   orElse(opts.UseBranchLockfile, settings.UseBranchLockfile, false),
	}, nil
}

func orElse(flag, setting domain.Optional[bool], def bool) bool {
	if v, ok := flag.Get(); ok {
		return v
	}
	return setting.OrElse(def)
}
