// Package yamlcodec converts lockfile YAML to and from the domain document.
package yamlcodec

import (
	"bytes"
	"errors"
	"maps"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DocumentCodec = (*Codec)(nil)

// inlineSpecifierMajor is the first format major that stores specifiers inline
// with each dependency instead of in a separate specifiers map.
const inlineSpecifierMajor = 6

// keyOrder lists the top-level keys that are written first, in this order.
var keyOrder = []string{"lockfileVersion", "settings", "importers"}

// Codec implements ports.DocumentCodec with gopkg.in/yaml.v3.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Parse decodes lockfile YAML. Empty input and non-mapping roots are rejected.
func (c *Codec) Parse(data []byte) (*domain.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.Wrap(err, "failed to parse lockfile YAML")
	}
	if len(root.Content) == 0 {
		return nil, zerr.New("lockfile is empty")
	}
	if top := root.Content[0]; top.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.New("lockfile root must be a mapping"), "line", top.Line)
	}

	var dto LockfileDTO
	if err := root.Decode(&dto); err != nil {
		return nil, zerr.Wrap(err, "failed to decode lockfile")
	}

	return toDomain(&dto), nil
}

// Encode writes doc in the importer-keyed schema.
// Legacy documents are normalized first.
func (c *Codec) Encode(doc *domain.Document) ([]byte, error) {
	canonical := domain.Normalize(*doc)
	token, _ := canonical.LockfileVersion.Get()
	inline := usesInlineSpecifiers(token)

	root := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value any) error {
		var v yaml.Node
		if err := v.Encode(value); err != nil {
			return zerr.With(zerr.Wrap(errors.Join(domain.ErrEncodeFailed, err), "failed to encode field"), "field", key)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, &v)
		return nil
	}

	if canonical.LockfileVersion.Present() {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "lockfileVersion"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: token, Style: yaml.SingleQuotedStyle},
		)
	}
	if settings, ok := canonical.Metadata["settings"]; ok {
		if err := add("settings", settings); err != nil {
			return nil, err
		}
	}

	importers, _ := canonical.Importers.Get()
	out := make(map[string]*projectOut, len(importers))
	for id, project := range importers {
		out[id] = fromProject(project, inline)
	}
	if err := add("importers", out); err != nil {
		return nil, err
	}

	for _, key := range slices.Sorted(maps.Keys(canonical.Metadata)) {
		if slices.Contains(keyOrder, key) {
			continue
		}
		if err := add(key, canonical.Metadata[key]); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, errors.Join(domain.ErrEncodeFailed, err)
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrEncodeFailed, err), "failed to flush lockfile encoder")
	}
	return buf.Bytes(), nil
}

func toDomain(dto *LockfileDTO) *domain.Document {
	doc := &domain.Document{
		Root:     toProject(&dto.ProjectDTO),
		Metadata: dto.Rest,
	}
	if dto.LockfileVersion != nil {
		doc.LockfileVersion = domain.Some(string(*dto.LockfileVersion))
	}
	if dto.Importers != nil {
		importers := make(map[string]domain.ProjectSnapshot, len(dto.Importers))
		for id, project := range dto.Importers {
			if project == nil {
				project = &ProjectDTO{}
			}
			importers[id] = toProject(project)
		}
		doc.Importers = domain.Some(importers)
	}
	return doc
}

func toProject(dto *ProjectDTO) domain.ProjectSnapshot {
	snapshot := domain.ProjectSnapshot{
		Specifiers: dto.Specifiers,
	}
	if dto.DependenciesMeta != nil {
		snapshot.DependenciesMeta = make(map[string]domain.DependencyMeta, len(dto.DependenciesMeta))
		for name, meta := range dto.DependenciesMeta {
			snapshot.DependenciesMeta[name] = domain.DependencyMeta(meta)
		}
	}
	if dto.PublishDirectory != nil {
		snapshot.PublishDirectory = domain.Some(*dto.PublishDirectory)
	}

	refs := map[domain.DependencyKind]map[string]DependencyRef{
		domain.DependencyKindProd:     dto.Dependencies,
		domain.DependencyKindDev:      dto.DevDependencies,
		domain.DependencyKindOptional: dto.OptionalDependencies,
	}
	for _, kind := range domain.DependencyKinds {
		entries := refs[kind]
		if entries == nil {
			continue
		}
		if snapshot.Dependencies == nil {
			snapshot.Dependencies = make(map[domain.DependencyKind]map[string]string, len(refs))
		}
		versions := make(map[string]string, len(entries))
		for name, ref := range entries {
			versions[name] = ref.Version
			if ref.Specifier == "" {
				continue
			}
			if snapshot.Specifiers == nil {
				snapshot.Specifiers = make(map[string]string)
			}
			snapshot.Specifiers[name] = ref.Specifier
		}
		snapshot.Dependencies[kind] = versions
	}
	return snapshot
}

type projectOut struct {
	Specifiers           map[string]string  `yaml:"specifiers,omitempty"`
	Dependencies         map[string]any     `yaml:"dependencies,omitempty"`
	OptionalDependencies map[string]any     `yaml:"optionalDependencies,omitempty"`
	DevDependencies      map[string]any     `yaml:"devDependencies,omitempty"`
	DependenciesMeta     map[string]MetaDTO `yaml:"dependenciesMeta,omitempty"`
	PublishDirectory     *string            `yaml:"publishDirectory,omitempty"`
}

func fromProject(project domain.ProjectSnapshot, inline bool) *projectOut {
	out := &projectOut{}
	if !inline && len(project.Specifiers) > 0 {
		out.Specifiers = project.Specifiers
	}
	if project.DependenciesMeta != nil {
		out.DependenciesMeta = make(map[string]MetaDTO, len(project.DependenciesMeta))
		for name, meta := range project.DependenciesMeta {
			out.DependenciesMeta[name] = MetaDTO(meta)
		}
	}
	if dir, ok := project.PublishDirectory.Get(); ok {
		out.PublishDirectory = &dir
	}

	encode := func(kind domain.DependencyKind) map[string]any {
		versions, ok := project.Dependencies[kind]
		if !ok {
			return nil
		}
		entries := make(map[string]any, len(versions))
		for name, version := range versions {
			specifier, hasSpecifier := project.Specifiers[name]
			if inline && hasSpecifier {
				entries[name] = DependencyRef{Specifier: specifier, Version: version}
				continue
			}
			entries[name] = version
		}
		return entries
	}
	out.Dependencies = encode(domain.DependencyKindProd)
	out.OptionalDependencies = encode(domain.DependencyKindOptional)
	out.DevDependencies = encode(domain.DependencyKindDev)
	return out
}

// usesInlineSpecifiers reports whether token names a format that stores
// specifiers inline. Unparseable tokens keep the separate map.
func usesInlineSpecifiers(token string) bool {
	major, _, _ := strings.Cut(token, ".")
	n, err := strconv.Atoi(major)
	return err == nil && n >= inlineSpecifierMajor
}
