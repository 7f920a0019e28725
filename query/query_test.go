package query

import (
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
	rows, err := project.Project(&sample{Host: "h", Port: 502, Tags: []string{"a"}})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	return rows
}

func TestFilter(t *testing.T) {
	rows := sampleRows(t)
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "by type",
			src:  `Type == "int"`,
			want: []string{"Port"},
		},
		{
			name: "editable leaves",
			src:  `Leaf`,
			want: []string{"Host", "Port"},
		},
		{
			name: "by value",
			src:  `Value == "a"`,
			want: []string{"[0]"},
		},
		{
			name: "by path",
			src:  `Path == "Tags.[0]"`,
			want: []string{"[0]"},
		},
		{
			name: "groups",
			src:  `Kind == "Slice"`,
			want: []string{"Tags"},
		},
		{
			name: "none",
			src:  `ID > 1000`,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(rows, tt.src)
			if err != nil {
				t.Fatalf("Filter(%q) error = %v", tt.src, err)
			}
			var names []string
			for _, n := range got {
				names = append(names, n.Name)
			}
			if len(names) != len(tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.src, names, tt.want)
			}
			for i := range names {
				if names[i] != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q", tt.src, i, names[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterBadQuery(t *testing.T) {
	rows := sampleRows(t)
	if _, err := Filter(rows, "Name +"); err == nil {
		t.Error("Filter with bad syntax succeeded")
	}
	if _, err := Filter(rows, "Name"); err == nil {
		t.Error("Filter with non-bool result succeeded")
	}
}
