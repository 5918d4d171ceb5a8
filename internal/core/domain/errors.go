package domain

import "go.trai.ch/zerr"

var (
	// ErrBrokenLockfile is returned when a lockfile exists but cannot be parsed
	// or declares a malformed format version.
	ErrBrokenLockfile = zerr.New("broken lockfile")

	// ErrLockfileBreakingChange is returned when a lockfile format version is
	// incompatible with every wanted version and incompatibilities are not ignored.
	ErrLockfileBreakingChange = zerr.New("lockfile breaking change")

	// ErrLockfileNotFound is returned by commands that require a lockfile when none exists.
	ErrLockfileNotFound = zerr.New("no lockfile found")

	// ErrLockfileReadFailed is returned when a lockfile exists but cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrInvalidWantedVersion is returned when a wanted format version is not a valid version token.
	ErrInvalidWantedVersion = zerr.New("invalid wanted lockfile version")

	// ErrInvalidFormatVersion is returned when a lockfile declares a malformed format version.
	ErrInvalidFormatVersion = zerr.New("invalid lockfile format version")

	// ErrMergeConflictUnresolved is returned when merge-conflict markers cannot be resolved.
	ErrMergeConflictUnresolved = zerr.New("merge conflict could not be resolved")

	// ErrConfigNotFound is returned when the settings file does not exist.
	ErrConfigNotFound = zerr.New("settings file not found")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrBranchDetectionFailed is returned when the current VCS branch cannot be determined.
	ErrBranchDetectionFailed = zerr.New("failed to detect current branch")

	// ErrEncodeFailed is returned when a document cannot be serialized.
	ErrEncodeFailed = zerr.New("failed to encode lockfile")

	// ErrCheckFailed is returned when at least one checked directory has an unusable lockfile.
	ErrCheckFailed = zerr.New("lockfile check failed")
)
