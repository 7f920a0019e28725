// Package query filters projected row lists with expr-lang expressions,
// one boolean evaluation per row.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/fieldline/treelist/debug"
	"github.com/fieldline/treelist/node"
)

// Env is the expression environment exposed for each row.
type Env struct {
	ID       int
	ParentID int
	Name     string
	Kind     string
	Type     string
	Value    string
	Leaf     bool
	Terminal bool
	Depth    int
	Path     string
}

// Compile compiles src against the row environment. The program must
// yield a boolean.
func Compile(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(Env{}), expr.AsBool())
}

// Filter returns the rows for which src evaluates to true, in their
// original order. The input list is never mutated.
func Filter(rows node.List, src string) (node.List, error) {
	prg, err := Compile(src)
	if err != nil {
		return nil, fmt.Errorf("bad query %q: %w", src, err)
	}
	var res node.List
	for _, n := range rows {
		env := Env{
			ID:       n.ID,
			ParentID: n.ParentID,
			Name:     n.Name,
			Kind:     n.Kind.String(),
			Type:     n.Type,
			Value:    n.Value,
			Leaf:     n.IsLeaf(),
			Terminal: rows.Terminal(n),
			Depth:    rows.Depth(n),
			Path:     rows.Path(n),
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("query %q on row %d: %w", src, n.ID, err)
		}
		keep, _ := out.(bool)
		if keep {
			res = append(res, n)
		}
	}
	if debug.Query() {
		debug.Logf("query %q matched %d/%d rows\n", src, len(res), len(rows))
	}
	return res, nil
}
