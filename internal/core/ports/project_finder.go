package ports

import "iter"

// ProjectFinder discovers project directories below a root.
//
//go:generate mockgen -source=project_finder.go -destination=mocks/mock_project_finder.go -package=mocks
type ProjectFinder interface {
	// FindProjects yields directories that contain a committed lockfile.
	// Directories whose base name matches one of the ignore globs are not descended into.
	FindProjects(root string, ignores []string) iter.Seq[string]
}
