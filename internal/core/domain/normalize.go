package domain

import "maps"

// Normalize migrates a document written with the legacy flat schema into the
// importer-keyed schema and returns the result as a new value.
//
// A document is legacy if and only if it has no importers. The legacy root
// fields move into a single importer registered under DefaultImporterID; no
// other field is touched. The input is never modified and documents that
// already have importers are returned as they are, so Normalize is idempotent.
func Normalize(doc Document) Document {
	if doc.Importers.Present() {
		return doc
	}

	root := doc.Root
	project := ProjectSnapshot{
		Specifiers:       maps.Clone(root.Specifiers),
		DependenciesMeta: maps.Clone(root.DependenciesMeta),
		PublishDirectory: root.PublishDirectory,
	}
	if project.Specifiers == nil {
		project.Specifiers = make(map[string]string)
	}

	for _, kind := range DependencyKinds {
		deps, ok := root.Dependencies[kind]
		if !ok || deps == nil {
			continue
		}
		if project.Dependencies == nil {
			project.Dependencies = make(map[DependencyKind]map[string]string, len(DependencyKinds))
		}
		project.Dependencies[kind] = maps.Clone(deps)
	}

	out := doc
	out.Metadata = maps.Clone(doc.Metadata)
	out.Importers = Some(map[string]ProjectSnapshot{DefaultImporterID: project})
	out.Root = ProjectSnapshot{}
	return out
}
