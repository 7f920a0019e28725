package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fieldline/treelist/node"
	"github.com/fieldline/treelist/project"
)

type sample struct {
	Host string
	Port int
	Tags []string
}

func sampleRows(t *testing.T) node.List {
	t.Helper()
	rows, err := project.Project(&sample{Host: "h", Port: 502, Tags: nil}, project.RootName("cfg"))
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	return rows
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(sampleRows(t), &buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := strings.Join([]string{
		"cfg",
		"  Host = h (string)",
		"  Port = 502 (int)",
		"  Tags = null ([]string)",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Encode() =\n%q\nwant\n%q", got, want)
	}
}

func TestEncodeShowIDs(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(sampleRows(t), &buf, ShowIDs(true)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	first, _, _ := strings.Cut(buf.String(), "\n")
	if !strings.HasPrefix(first, "   1 ") {
		t.Errorf("first line %q missing id column", first)
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(sampleRows(t), &buf); err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Table() produced %d lines, want 5:\n%s", len(lines), buf.String())
	}
	header := strings.Fields(lines[0])
	if header[0] != node.KeyColumn || header[1] != node.ParentKeyColumn {
		t.Errorf("header = %v, want %s %s first", header, node.KeyColumn, node.ParentKeyColumn)
	}
}

func TestEncodeColorsCoverKinds(t *testing.T) {
	c := NewColors()
	for _, k := range node.Kinds() {
		if got := c.Color(k, NameColor, "x"); got == "" {
			t.Errorf("no name color output for kind %s", k)
		}
	}
}
