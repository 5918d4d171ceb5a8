package domain

import (
	"path/filepath"
	"strings"
)

const (
	// WantedLockfileName is the file name of the committed lockfile.
	WantedLockfileName = "pnpm-lock.yaml"

	// CurrentLockfilePath is the location, relative to the project, of the
	// lockfile describing what is actually installed.
	CurrentLockfilePath = "node_modules/.pnpm/lock.yaml"

	// DefaultImporterID is the importer id legacy documents are migrated into.
	DefaultImporterID = "."

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "locksmith.yaml"

	// BaselineFormatVersion is assumed for documents that declare no format version.
	BaselineFormatVersion = "0"

	// TransitionalFormatVersion is the one format version that is accepted by
	// every reader of its major line, including strict readers.
	TransitionalFormatVersion = "6.1"
)

// BranchLockfileName returns the file name of the lockfile scoped to branch.
// Path separators in the branch name are replaced with "!".
func BranchLockfileName(branch string) string {
	return "pnpm-lock." + strings.ReplaceAll(branch, "/", "!") + ".yaml"
}

// WantedCandidates returns the candidate lockfiles for the committed lockfile
// of dir, in the order they are tried. An empty branch yields only the default.
func WantedCandidates(dir, branch string, autofix bool) []Candidate {
	var candidates []Candidate
	if branch != "" {
		candidates = append(candidates, Candidate{
			Path:         filepath.Join(dir, BranchLockfileName(branch)),
			Rank:         0,
			AllowAutofix: autofix,
		})
	}
	return append(candidates, Candidate{
		Path:         filepath.Join(dir, WantedLockfileName),
		Rank:         len(candidates),
		AllowAutofix: autofix,
	})
}

// CurrentCandidate returns the candidate for the installed-state lockfile of dir.
func CurrentCandidate(dir string) Candidate {
	return Candidate{Path: filepath.Join(dir, CurrentLockfilePath)}
}
