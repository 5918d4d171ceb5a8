package yamlcodec

import (
	"gopkg.in/yaml.v3"
	"go.trai.ch/zerr"
)

// LockfileDTO is the on-disk shape of a lockfile, covering both the legacy
// flat schema and the importer-keyed schema.
type LockfileDTO struct {
	LockfileVersion *VersionToken          `yaml:"lockfileVersion"`
	Importers       map[string]*ProjectDTO `yaml:"importers"`

	ProjectDTO `yaml:",inline"`

	Rest map[string]any `yaml:",inline"`
}

// ProjectDTO is the on-disk shape of a single project snapshot.
type ProjectDTO struct {
	Specifiers           map[string]string        `yaml:"specifiers"`
	Dependencies         map[string]DependencyRef `yaml:"dependencies"`
	DevDependencies      map[string]DependencyRef `yaml:"devDependencies"`
	OptionalDependencies map[string]DependencyRef `yaml:"optionalDependencies"`
	DependenciesMeta     map[string]MetaDTO       `yaml:"dependenciesMeta"`
	PublishDirectory     *string                  `yaml:"publishDirectory"`
}

// MetaDTO is the on-disk shape of a dependenciesMeta entry.
type MetaDTO struct {
	Injected bool   `yaml:"injected,omitempty"`
	Node     string `yaml:"node,omitempty"`
	Patch    string `yaml:"patch,omitempty"`
}

// VersionToken keeps the literal text of the lockfileVersion scalar.
// Decoding it as a number would turn "6.0" into "6" and lose the token.
type VersionToken string

// UnmarshalYAML accepts any scalar and keeps its source text.
func (v *VersionToken) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return zerr.With(zerr.New("lockfileVersion must be a scalar"), "line", node.Line)
	}
	*v = VersionToken(node.Value)
	return nil
}

// DependencyRef is a dependency entry. Older documents store only the resolved
// version; newer ones store a mapping with the specifier next to it.
type DependencyRef struct {
	Specifier string `yaml:"specifier,omitempty"`
	Version   string `yaml:"version"`
}

// UnmarshalYAML accepts either a version scalar or a {specifier, version} mapping.
func (r *DependencyRef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		r.Version = node.Value
		return nil
	case yaml.MappingNode:
		type plain DependencyRef
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*r = DependencyRef(p)
		return nil
	default:
		return zerr.With(zerr.New("dependency entry must be a version or a mapping"), "line", node.Line)
	}
}
