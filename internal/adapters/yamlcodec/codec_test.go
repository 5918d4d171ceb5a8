package yamlcodec_test

import (
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/locksmith/internal/adapters/yamlcodec"
	"go.trai.ch/locksmith/internal/core/domain"
)

const inlineLockfile = `lockfileVersion: '6.0'

settings:
  autoInstallPeers: true

importers:
  .:
    dependencies:
      foo:
        specifier: ^1.0.0
        version: 1.0.0
    devDependencies:
      bar:
        specifier: ^2.0.0
        version: 2.1.0
  packages/web:
    publishDirectory: dist
    dependenciesMeta:
      foo:
        injected: true

packages:
  /foo@1.0.0:
    resolution: {integrity: sha512-abc}
`

const separateSpecifiersLockfile = `lockfileVersion: 5.4

importers:
  .:
    specifiers:
      foo: ^1.0.0
    dependencies:
      foo: 1.0.0
    optionalDependencies:
      fsevents: 2.3.2
`

const legacyLockfile = `lockfileVersion: 5.3
specifiers:
  foo: ^1.0.0
dependencies:
  foo: 1.0.0
devDependencies:
  bar: 2.0.0
packages:
  /foo/1.0.0:
    dev: false
`

func TestCodec_Parse_InlineSpecifiers(t *testing.T) {
	doc, err := yamlcodec.NewCodec().Parse([]byte(inlineLockfile))
	require.NoError(t, err)

	token, ok := doc.LockfileVersion.Get()
	require.True(t, ok)
	assert.Equal(t, "6.0", token)

	root, ok := doc.Project(".")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"foo": "^1.0.0", "bar": "^2.0.0"}, root.Specifiers)
	assert.Equal(t, map[string]string{"foo": "1.0.0"}, root.Dependencies[domain.DependencyKindProd])
	assert.Equal(t, map[string]string{"bar": "2.1.0"}, root.Dependencies[domain.DependencyKindDev])
	_, hasOptional := root.Dependencies[domain.DependencyKindOptional]
	assert.False(t, hasOptional)

	web, ok := doc.Project("packages/web")
	require.True(t, ok)
	dir, ok := web.PublishDirectory.Get()
	require.True(t, ok)
	assert.Equal(t, "dist", dir)
	assert.True(t, web.DependenciesMeta["foo"].Injected)

	assert.Contains(t, doc.Metadata, "settings")
	assert.Contains(t, doc.Metadata, "packages")
	assert.NotContains(t, doc.Metadata, "importers")
	assert.NotContains(t, doc.Metadata, "lockfileVersion")
	assert.True(t, doc.Root.IsZero())
}

func TestCodec_Parse_SeparateSpecifiers(t *testing.T) {
	doc, err := yamlcodec.NewCodec().Parse([]byte(separateSpecifiersLockfile))
	require.NoError(t, err)

	token, _ := doc.LockfileVersion.Get()
	assert.Equal(t, "5.4", token)

	root, ok := doc.Project(".")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"foo": "^1.0.0"}, root.Specifiers)
	assert.Equal(t, map[string]string{"fsevents": "2.3.2"}, root.Dependencies[domain.DependencyKindOptional])
}

func TestCodec_Parse_Legacy(t *testing.T) {
	doc, err := yamlcodec.NewCodec().Parse([]byte(legacyLockfile))
	require.NoError(t, err)

	assert.False(t, doc.Importers.Present())
	assert.Equal(t, map[string]string{"foo": "^1.0.0"}, doc.Root.Specifiers)
	assert.Equal(t, map[string]string{"foo": "1.0.0"}, doc.Root.Dependencies[domain.DependencyKindProd])
	assert.Equal(t, map[string]string{"bar": "2.0.0"}, doc.Root.Dependencies[domain.DependencyKindDev])
	assert.Contains(t, doc.Metadata, "packages")
	assert.NotContains(t, doc.Metadata, "dependencies")
}

func TestCodec_Parse_VersionTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Optional[string]
	}{
		{"plain float", "lockfileVersion: 5.4\nimporters: {}\n", domain.Some("5.4")},
		{"quoted", "lockfileVersion: '6.0'\nimporters: {}\n", domain.Some("6.0")},
		{"trailing zero kept", "lockfileVersion: 6.0\nimporters: {}\n", domain.Some("6.0")},
		{"integer", "lockfileVersion: 5\nimporters: {}\n", domain.Some("5")},
		{"absent", "importers: {}\n", domain.None[string]()},
		{"null", "lockfileVersion: ~\nimporters: {}\n", domain.None[string]()},
	}

	codec := yamlcodec.NewCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := codec.Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.LockfileVersion)
		})
	}
}

func TestCodec_Parse_Importers(t *testing.T) {
	codec := yamlcodec.NewCodec()

	doc, err := codec.Parse([]byte("lockfileVersion: '6.0'\nimporters: {}\n"))
	require.NoError(t, err)
	importers, ok := doc.Importers.Get()
	assert.True(t, ok)
	assert.Empty(t, importers)

	doc, err = codec.Parse([]byte("lockfileVersion: '6.0'\nimporters:\n"))
	require.NoError(t, err)
	assert.False(t, doc.Importers.Present())
}

func TestCodec_Parse_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":            "",
		"comment only":     "# nothing here\n",
		"sequence root":    "- a\n- b\n",
		"scalar root":      "hello\n",
		"malformed":        "lockfileVersion: '6.0'\nimporters: [\n",
		"conflict markers": "lockfileVersion: '6.0'\n<<<<<<< HEAD\nfoo: 1\n=======\nfoo: 2\n>>>>>>> branch\n",
		"version mapping":  "lockfileVersion:\n  major: 6\n",
		"dependency list":  "importers:\n  .:\n    dependencies:\n      foo: [1, 2]\n",
	}

	codec := yamlcodec.NewCodec()
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Parse([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestCodec_Encode(t *testing.T) {
	codec := yamlcodec.NewCodec()
	doc, err := codec.Parse([]byte(inlineLockfile))
	require.NoError(t, err)

	out, err := codec.Encode(doc)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "encode_inline", out)
}

func TestCodec_Encode_LegacyIsNormalized(t *testing.T) {
	codec := yamlcodec.NewCodec()
	doc, err := codec.Parse([]byte(legacyLockfile))
	require.NoError(t, err)

	out, err := codec.Encode(doc)
	require.NoError(t, err)

	reparsed, err := codec.Parse(out)
	require.NoError(t, err)

	project, ok := reparsed.Project(domain.DefaultImporterID)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"foo": "^1.0.0"}, project.Specifiers)
	assert.Equal(t, map[string]string{"foo": "1.0.0"}, project.Dependencies[domain.DependencyKindProd])
	assert.Equal(t, map[string]string{"bar": "2.0.0"}, project.Dependencies[domain.DependencyKindDev])
	assert.True(t, reparsed.Root.IsZero())

	token, _ := reparsed.LockfileVersion.Get()
	assert.Equal(t, "5.3", token)
}

type unencodable struct{}

func (unencodable) MarshalYAML() (any, error) {
	return nil, errors.New("value has no YAML form")
}

func TestCodec_Encode_Failure(t *testing.T) {
	doc := &domain.Document{
		LockfileVersion: domain.Some("6.0"),
		Importers:       domain.Some(map[string]domain.ProjectSnapshot{".": {}}),
		Metadata:        map[string]any{"packages": unencodable{}},
	}

	_, err := yamlcodec.NewCodec().Encode(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEncodeFailed)
	assert.Contains(t, err.Error(), "value has no YAML form")
}
