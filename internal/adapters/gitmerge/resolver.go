// Package gitmerge resolves version-control merge-conflict markers in lockfiles.
package gitmerge

import (
	"bytes"
	"errors"
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConflictResolver = (*Resolver)(nil)

const (
	markerOurs   = "<<<<<<<"
	markerBase   = "|||||||"
	markerSplit  = "======="
	markerTheirs = ">>>>>>>"
)

type section int

const (
	sectionBoth section = iota
	sectionOurs
	sectionBase
	sectionTheirs
)

// Resolver merges the two sides of a conflicted lockfile.
//
// Each side is rebuilt from the shared lines plus its own hunks and parsed as
// YAML. The sides are then merged key by key: mappings merge recursively,
// differing scalars that are both semantic versions resolve to the higher one,
// and any other difference resolves to "theirs". Common-ancestor hunks
// (diff3 style) are dropped.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// HasConflicts reports whether data contains a conflict start and end marker.
func (r *Resolver) HasConflicts(data []byte) bool {
	var start, end bool
	for text := range strings.Lines(string(data)) {
		switch markerOf(text) {
		case markerOurs:
			start = true
		case markerTheirs:
			end = start
		}
		if start && end {
			return true
		}
	}
	return false
}

// Resolve returns the merged document text.
func (r *Resolver) Resolve(data []byte) ([]byte, error) {
	ours, theirs, err := split(data)
	if err != nil {
		return nil, unresolved(err)
	}

	oursNode, err := parseSide(ours)
	if err != nil {
		return nil, unresolved(zerr.With(err, "side", "ours"))
	}
	theirsNode, err := parseSide(theirs)
	if err != nil {
		return nil, unresolved(zerr.With(err, "side", "theirs"))
	}

	var merged *yaml.Node
	switch {
	case oursNode == nil && theirsNode == nil:
		return nil, unresolved(zerr.New("both sides of the conflict are empty"))
	case oursNode == nil:
		merged = theirsNode
	case theirsNode == nil:
		merged = oursNode
	default:
		merged = mergeNodes(oursNode, theirsNode)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(merged); err != nil {
		return nil, unresolved(zerr.Wrap(err, "failed to encode merged lockfile"))
	}
	if err := enc.Close(); err != nil {
		return nil, unresolved(zerr.Wrap(err, "failed to flush merged lockfile"))
	}
	return buf.Bytes(), nil
}

func unresolved(err error) error {
	return errors.Join(domain.ErrMergeConflictUnresolved, err)
}

// split rebuilds the "ours" and "theirs" texts from a conflicted file.
func split(data []byte) (ours, theirs []byte, err error) {
	var oursBuf, theirsBuf bytes.Buffer
	state := sectionBoth
	line := 0

	for raw := range strings.Lines(string(data)) {
		line++
		text := strings.TrimRight(raw, "\r\n")

		next, isMarker, err := transition(state, markerOf(text))
		if err != nil {
			return nil, nil, zerr.With(err, "line", line)
		}
		if isMarker {
			state = next
			continue
		}

		switch state {
		case sectionBoth:
			oursBuf.WriteString(text + "\n")
			theirsBuf.WriteString(text + "\n")
		case sectionOurs:
			oursBuf.WriteString(text + "\n")
		case sectionTheirs:
			theirsBuf.WriteString(text + "\n")
		case sectionBase:
		}
	}
	if state != sectionBoth {
		return nil, nil, zerr.With(zerr.New("unterminated conflict"), "line", line)
	}

	return oursBuf.Bytes(), theirsBuf.Bytes(), nil
}

func transition(state section, marker string) (section, bool, error) {
	if marker == "" {
		return state, false, nil
	}

	switch {
	case marker == markerOurs && state == sectionBoth:
		return sectionOurs, true, nil
	case marker == markerBase && state == sectionOurs:
		return sectionBase, true, nil
	case marker == markerSplit && (state == sectionOurs || state == sectionBase):
		return sectionTheirs, true, nil
	case marker == markerTheirs && state == sectionTheirs:
		return sectionBoth, true, nil
	case marker == markerSplit && state == sectionBoth:
		// A bare separator outside a conflict is ordinary content.
		return state, false, nil
	default:
		return state, false, zerr.With(zerr.New("unexpected conflict marker"), "marker", marker)
	}
}

// markerOf returns the conflict marker text starts with, or "".
func markerOf(text string) string {
	text = strings.TrimRight(text, "\r\n")
	for _, marker := range []string{markerOurs, markerBase, markerTheirs} {
		if text == marker || strings.HasPrefix(text, marker+" ") {
			return marker
		}
	}
	if text == markerSplit {
		return markerSplit
	}
	return ""
}

func parseSide(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse conflict side")
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return doc.Content[0], nil
}

func mergeNodes(ours, theirs *yaml.Node) *yaml.Node {
	switch {
	case ours.Kind == yaml.MappingNode && theirs.Kind == yaml.MappingNode:
		return mergeMappings(ours, theirs)
	case ours.Kind == yaml.ScalarNode && theirs.Kind == yaml.ScalarNode:
		if higherVersion(ours.Value, theirs.Value) {
			return ours
		}
		return theirs
	default:
		return theirs
	}
}

func mergeMappings(ours, theirs *yaml.Node) *yaml.Node {
	merged := &yaml.Node{
		Kind:  yaml.MappingNode,
		Tag:   ours.Tag,
		Style: ours.Style,
	}

	theirsIndex := make(map[string]*yaml.Node, len(theirs.Content)/2)
	for i := 0; i+1 < len(theirs.Content); i += 2 {
		theirsIndex[theirs.Content[i].Value] = theirs.Content[i+1]
	}

	seen := make(map[string]struct{}, len(ours.Content)/2)
	for i := 0; i+1 < len(ours.Content); i += 2 {
		key, value := ours.Content[i], ours.Content[i+1]
		seen[key.Value] = struct{}{}
		if other, ok := theirsIndex[key.Value]; ok {
			value = mergeNodes(value, other)
		}
		merged.Content = append(merged.Content, key, value)
	}

	for i := 0; i+1 < len(theirs.Content); i += 2 {
		key := theirs.Content[i]
		if _, ok := seen[key.Value]; ok {
			continue
		}
		merged.Content = append(merged.Content, key, theirs.Content[i+1])
	}
	return merged
}

// higherVersion reports whether a is a semantic version strictly greater than b.
func higherVersion(a, b string) bool {
	if a == b {
		return false
	}
	va, err := mmsemver.NewVersion(a)
	if err != nil {
		return false
	}
	vb, err := mmsemver.NewVersion(b)
	if err != nil {
		return false
	}
	return va.GreaterThan(vb)
}
