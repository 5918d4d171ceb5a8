package domain

// Settings is the content of the optional settings file.
// Absent fields leave the corresponding default untouched.
type Settings struct {
	WantedVersions     []string
	IgnoreIncompatible Optional[bool]
	UseBranchLockfile  Optional[bool]
}
