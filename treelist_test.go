package treelist

import (
	"testing"

	"github.com/fieldline/treelist/project"
)

var sampleDoc = []byte(`
network:
  host: h
  port: 502
tags:
  - a
  - b
extras:
  k1: v1
`)

func TestFromYAML(t *testing.T) {
	rows, err := FromYAML(sampleDoc, project.RootName("settings"))
	if err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if rows[0].Name != "settings" || rows[0].ParentID != 0 {
		t.Fatalf("root row = %+v", rows[0])
	}
	host := rows.Find("Key=network.Value.Key=host.Value")
	if host == nil || host.Value != "h" {
		t.Errorf("host row = %v", host)
	}
	if n := rows.Find("Key=tags.Value.[1]"); n == nil || n.Value != "b" {
		t.Errorf("tags[1] row = %v", n)
	}
}

func TestFromYAMLJSONDocument(t *testing.T) {
	rows, err := FromYAML([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatalf("FromYAML(json) error = %v", err)
	}
	if n := rows.Find("Key=a.Value"); n == nil || n.Value != "1" {
		t.Errorf("a row = %v", n)
	}
}

func TestFromYAMLBadDocument(t *testing.T) {
	if _, err := FromYAML([]byte("a: [unclosed")); err == nil {
		t.Error("FromYAML on malformed input succeeded")
	}
}

func TestApplyPatch(t *testing.T) {
	patch := []byte(`[{"op": "replace", "path": "/network/host", "value": "other"}]`)
	rows, err := ApplyPatch(sampleDoc, patch)
	if err != nil {
		t.Fatalf("ApplyPatch() error = %v", err)
	}
	host := rows.Find("Key=network.Value.Key=host.Value")
	if host == nil || host.Value != "other" {
		t.Errorf("host row after patch = %v", host)
	}
}

func TestApplyPatchYAMLPatch(t *testing.T) {
	patch := []byte("- op: add\n  path: /tags/-\n  value: c\n")
	rows, err := ApplyPatch(sampleDoc, patch)
	if err != nil {
		t.Fatalf("ApplyPatch() error = %v", err)
	}
	if n := rows.Find("Key=tags.Value.[2]"); n == nil || n.Value != "c" {
		t.Errorf("tags[2] row = %v", n)
	}
}

func TestApplyPatchBadPointer(t *testing.T) {
	patch := []byte(`[{"op": "replace", "path": "/missing", "value": 1}]`)
	if _, err := ApplyPatch(sampleDoc, patch); err == nil {
		t.Error("ApplyPatch on missing pointer succeeded")
	}
}

func TestDocumentRowsAreDisplayOnly(t *testing.T) {
	rows, err := FromYAML(sampleDoc)
	if err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	for _, n := range rows {
		if n.IsLeaf() {
			t.Errorf("row %s has a write target; untyped documents have no addressable slots", rows.Path(n))
		}
	}
}
