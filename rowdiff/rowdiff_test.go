package rowdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fieldline/treelist/node"
	"github.com/fieldline/treelist/project"
)

type cfg struct {
	Host string
	Port int
	Note *string
}

func projectOrDie(t *testing.T, v any) node.List {
	t.Helper()
	rows, err := project.Project(v, project.RootName("cfg"))
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	return rows
}

func TestDiff(t *testing.T) {
	note := "n"
	from := projectOrDie(t, &cfg{Host: "a", Port: 1, Note: &note})
	to := projectOrDie(t, &cfg{Host: "b", Port: 1})

	res := Diff(from, to)
	if len(res.Changed) != 2 {
		t.Fatalf("Changed = %v, want Host and Note", res.Changed)
	}
	if res.Changed[0].Path != "Host" || res.Changed[0].From != "a" || res.Changed[0].To != "b" {
		t.Errorf("Host change = %+v", res.Changed[0])
	}
	if res.Changed[1].Path != "Note" || res.Changed[1].To != "null" {
		t.Errorf("Note change = %+v", res.Changed[1])
	}
	if len(res.Added) != 0 || len(res.Removed) != 0 {
		t.Errorf("Added/Removed = %v/%v, want none", res.Added, res.Removed)
	}
}

func TestDiffAddedRemoved(t *testing.T) {
	from := projectOrDie(t, map[string]any{"a": 1, "b": 2})
	to := projectOrDie(t, map[string]any{"b": 2, "c": 3})

	res := Diff(from, to)
	if len(res.Added) != 2 {
		t.Fatalf("Added = %v", res.Added)
	}
	if len(res.Removed) != 2 {
		t.Fatalf("Removed = %v", res.Removed)
	}
	// both the entry key leaf and its value move together
	if res.Added[0] != "Key=c.Key" || res.Added[1] != "Key=c.Value" {
		t.Errorf("Added = %v", res.Added)
	}
	if res.Removed[0] != "Key=a.Key" || res.Removed[1] != "Key=a.Value" {
		t.Errorf("Removed = %v", res.Removed)
	}
}

func TestDiffEmpty(t *testing.T) {
	a := projectOrDie(t, &cfg{Host: "x", Port: 9})
	b := projectOrDie(t, &cfg{Host: "x", Port: 9})
	if res := Diff(a, b); !res.Empty() {
		t.Errorf("identical projections diff = %+v", res)
	}
}

func TestFormat(t *testing.T) {
	from := projectOrDie(t, &cfg{Host: "a", Port: 1})
	to := projectOrDie(t, &cfg{Host: "b", Port: 1})
	var buf bytes.Buffer
	if err := Format(Diff(from, to), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "~ Host") {
		t.Errorf("Format output %q missing change line", out)
	}
}
