// Package rowdiff compares two projections by structural path and
// reports added, removed, and changed value rows.
package rowdiff

import (
	"fmt"
	"io"
	"sort"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fieldline/treelist/node"
)

// Change is one value row present in both projections with differing
// display values.
type Change struct {
	Path  string
	From  string
	To    string
	Diffs []diffpatch.Diff
}

type Result struct {
	Added   []string
	Removed []string
	Changed []Change
}

func (r *Result) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0
}

// Diff indexes the value rows (leaves, nulls, and collection terminals)
// of both lists by path and compares them. Group rows are structural and
// only show up through their members.
func Diff(from, to node.List) *Result {
	fromVals := valueRows(from)
	toVals := valueRows(to)

	res := &Result{}
	dmp := diffpatch.New()
	for path, fv := range fromVals {
		tv, ok := toVals[path]
		if !ok {
			res.Removed = append(res.Removed, path)
			continue
		}
		if fv != tv {
			res.Changed = append(res.Changed, Change{
				Path:  path,
				From:  fv,
				To:    tv,
				Diffs: dmp.DiffMain(fv, tv, false),
			})
		}
	}
	for path := range toVals {
		if _, ok := fromVals[path]; !ok {
			res.Added = append(res.Added, path)
		}
	}
	sort.Strings(res.Added)
	sort.Strings(res.Removed)
	sort.Slice(res.Changed, func(i, j int) bool { return res.Changed[i].Path < res.Changed[j].Path })
	return res
}

func valueRows(rows node.List) map[string]string {
	m := map[string]string{}
	for _, n := range rows {
		switch n.Kind {
		case node.LeafKind:
			m[rows.Path(n)] = n.Value
		case node.NullKind:
			m[rows.Path(n)] = "null"
		}
	}
	return m
}

// Format writes a unified-style summary: one line per added, removed, or
// changed path, with an inline character diff for changes.
func Format(r *Result, w io.Writer) error {
	dmp := diffpatch.New()
	for _, p := range r.Removed {
		if _, err := fmt.Fprintf(w, "- %s\n", p); err != nil {
			return err
		}
	}
	for _, p := range r.Added {
		if _, err := fmt.Fprintf(w, "+ %s\n", p); err != nil {
			return err
		}
	}
	for _, c := range r.Changed {
		if _, err := fmt.Fprintf(w, "~ %s: %s\n", c.Path, dmp.DiffPrettyText(c.Diffs)); err != nil {
			return err
		}
	}
	return nil
}
