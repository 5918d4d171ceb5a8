package domain

import "fmt"

// VerdictKind is the outcome class of a compatibility check.
type VerdictKind int

const (
	// VerdictAccept means the document can be used as is.
	VerdictAccept VerdictKind = iota

	// VerdictAcceptWithWarning means the document can be used but was written by a newer tool.
	VerdictAcceptWithWarning

	// VerdictReject means the document is incompatible with every wanted version.
	VerdictReject
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictAccept:
		return "accept"
	case VerdictAcceptWithWarning:
		return "accept-with-warning"
	case VerdictReject:
		return "reject"
	default:
		return fmt.Sprintf("VerdictKind(%d)", int(k))
	}
}

// Verdict is the result of a compatibility check.
type Verdict struct {
	Kind    VerdictKind
	Message string
}

// Accept returns an accepting verdict.
func Accept() Verdict {
	return Verdict{Kind: VerdictAccept}
}

// AcceptWithWarning returns an accepting verdict carrying a warning.
func AcceptWithWarning(message string) Verdict {
	return Verdict{Kind: VerdictAcceptWithWarning, Message: message}
}

// Reject returns a rejecting verdict.
func Reject(message string) Verdict {
	return Verdict{Kind: VerdictReject, Message: message}
}

// Accepted reports whether the verdict allows the document to be used.
func (v Verdict) Accepted() bool {
	return v.Kind != VerdictReject
}

// FormatVersion is an expanded lockfile format version.
type FormatVersion struct {
	// Raw is the token the version was expanded from.
	Raw string

	Major uint64
	Minor uint64
	Patch uint64
}

func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
