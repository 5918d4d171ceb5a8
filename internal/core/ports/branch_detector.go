package ports

// BranchDetector reports the version-control branch a directory is checked out on.
//
//go:generate mockgen -source=branch_detector.go -destination=mocks/mock_branch_detector.go -package=mocks
type BranchDetector interface {
	// CurrentBranch returns the branch name, or "" when dir is not on a named branch.
	CurrentBranch(dir string) (string, error)
}
