// Package treelist projects object graphs into flat, self-referencing
// row lists for tree-style grids, and writes edits back into the graph.
//
// Typed Go values go straight to project.Project; this package adds the
// document seam: YAML/JSON loading and RFC 6902 patching for untyped
// settings documents.
package treelist

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/goccy/go-yaml"

	"github.com/fieldline/treelist/node"
	"github.com/fieldline/treelist/project"
)

// FromYAML parses a YAML document (JSON included) and projects it.
func FromYAML(data []byte, opts ...project.Option) (node.List, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return project.Project(doc, opts...)
}

// ApplyPatch applies an RFC 6902 patch to a YAML or JSON document and
// projects the result. The patch itself may also be written in YAML.
func ApplyPatch(doc, patch []byte, opts ...project.Option) (node.List, error) {
	var v any
	if err := yaml.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	jsonDoc, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var pv any
	if err := yaml.Unmarshal(patch, &pv); err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}
	jsonPatch, err := json.Marshal(pv)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(jsonPatch)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	out, err := p.Apply(jsonDoc)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	var patched any
	if err := json.Unmarshal(out, &patched); err != nil {
		return nil, err
	}
	return project.Project(patched, opts...)
}
