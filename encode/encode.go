package encode

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fieldline/treelist/node"
)

type EncState struct {
	indent  int
	showIDs bool

	Color func(node.Kind, ColorAttr, string) string
}

// Encode writes rows as an indented tree, one row per line, parents
// before children as they appear in the list.
func Encode(rows node.List, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	for _, n := range rows {
		pad := strings.Repeat(" ", es.indent*rows.Depth(n))
		if es.showIDs {
			if err := writeString(w, fmt.Sprintf("%4d %s", n.ID, pad)); err != nil {
				return err
			}
		} else if err := writeString(w, pad); err != nil {
			return err
		}
		if err := writeString(w, es.line(n)); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) line(n *node.Node) string {
	name := es.color(n.Kind, NameColor, n.Name)
	switch n.Kind {
	case node.LeafKind:
		sep := es.color(n.Kind, SepColor, " = ")
		val := es.color(n.Kind, ValueColor, n.Value)
		typ := es.color(n.Kind, TypeColor, "("+n.Type+")")
		return name + sep + val + " " + typ
	case node.NullKind:
		sep := es.color(n.Kind, SepColor, " = ")
		val := es.color(n.Kind, ValueColor, "null")
		typ := es.color(n.Kind, TypeColor, "("+n.Type+")")
		return name + sep + val + " " + typ
	case node.EmptyKind:
		return name
	default:
		if n.Type == "" {
			return name
		}
		typ := es.color(n.Kind, TypeColor, "("+n.Type+")")
		return name + " " + typ
	}
}

func (es *EncState) color(k node.Kind, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, attr, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// Table writes rows as a flat aligned table with the key and parent-key
// columns first, the shape a self-referencing grid widget binds to.
func Table(rows node.List, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	tw := tabwriter.NewWriter(w, 2, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\tNAME\tKIND\tTYPE\tVALUE\n", node.KeyColumn, node.ParentKeyColumn)
	for _, n := range rows {
		val := n.Value
		if n.Kind == node.NullKind {
			val = "null"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			n.ID, n.ParentID,
			es.color(n.Kind, NameColor, n.Name),
			es.color(n.Kind, TypeColor, n.Kind.String()),
			n.Type,
			es.color(n.Kind, ValueColor, val))
	}
	return tw.Flush()
}
