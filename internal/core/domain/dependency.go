package domain

// DependencyKind names one of the per-kind dependency maps of a project.
type DependencyKind string

const (
	// DependencyKindProd is the regular "dependencies" map.
	DependencyKindProd DependencyKind = "dependencies"

	// DependencyKindDev is the "devDependencies" map.
	DependencyKindDev DependencyKind = "devDependencies"

	// DependencyKindOptional is the "optionalDependencies" map.
	DependencyKindOptional DependencyKind = "optionalDependencies"
)

// DependencyKinds lists the recognized dependency kinds in their canonical order.
var DependencyKinds = []DependencyKind{
	DependencyKindOptional,
	DependencyKindProd,
	DependencyKindDev,
}

// String returns the document field name of the kind.
func (k DependencyKind) String() string {
	return string(k)
}
