// Package project flattens arbitrary Go object graphs into the
// self-referencing row lists defined in package node, and writes edited
// values back into the graph with type-directed coercion.
//
// Projection is a single synchronous depth-first walk. Row identifiers
// come from one counter threaded through the walker, so ids are unique,
// start at 1, and parents always precede children.
package project

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/fieldline/treelist/debug"
	"github.com/fieldline/treelist/node"
)

type walker struct {
	opts    projOpts
	rows    node.List
	nextID  int
	visited map[uintptr]string // pointer/map/slice addresses by field path
}

// Project converts root into an ordered row list. The output always
// begins with one synthetic root row; root's direct members hang under
// it. Pass a pointer to root if edits should be committable: fields
// reached through a non-pointer root are copies and their targets
// decline writes.
//
// Project either returns a complete list or an *IntrospectionError for
// the whole call; it never returns a partial projection.
func Project(root any, opts ...Option) (node.List, error) {
	o := projOpts{sortKeys: true}
	for _, f := range opts {
		f(&o)
	}
	w := &walker{opts: o, visited: map[uintptr]string{}}

	rv := reflect.ValueOf(root)
	name := o.rootName
	if name == "" {
		name = "root"
		if rv.IsValid() {
			name = typeName(rv.Type())
		}
	}
	rootRow := w.emit(0, name, node.RootKind, "", "", nil)
	if err := w.walkInto(rv, rootRow.ID, name, 1); err != nil {
		return nil, err
	}
	if debug.Walk() {
		debug.Logf("projected %d rows from %s\n", len(w.rows), name)
	}
	return w.rows, nil
}

// emit appends one row, assigning the next identifier. The counter is
// incremented immediately before the append, which is what guarantees
// the parent-precedes-child invariant without a sorting pass.
func (w *walker) emit(parentID int, name string, kind node.Kind, typ, val string, tgt node.Target) *node.Node {
	w.nextID++
	n := &node.Node{
		ID:       w.nextID,
		ParentID: parentID,
		Name:     name,
		Kind:     kind,
		Type:     typ,
		Value:    val,
		Target:   tgt,
	}
	w.rows = append(w.rows, n)
	return n
}

// walkInto emits the members of v directly under parentID, without a
// group row for v itself. Used only for the root value, whose group row
// is the synthetic root.
func (w *walker) walkInto(v reflect.Value, parentID int, path string, depth int) error {
	v, isNil := unwrap(v)
	if isNil {
		return nil
	}
	switch classify(v) {
	case classNull:
		return nil
	case classAggregate:
		return w.walkFields(v, parentID, path, depth)
	case classMap:
		return w.walkEntries(v, parentID, path, depth)
	case classSeq:
		return w.walkElements(v, parentID, path, depth)
	default:
		w.emit(parentID, "Value", node.LeafKind, typeName(v.Type()), formatValue(v), nil)
		return nil
	}
}

// walk classifies one value and emits its row (plus any subtree).
// declared is the slot's declared type, used for type tags on null rows;
// tgt is attached only when the value lands on a scalar or null row.
func (w *walker) walk(v reflect.Value, declared reflect.Type, name string, parentID int, tgt node.Target, path string, depth int) error {
	if w.opts.maxDepth > 0 && depth > w.opts.maxDepth {
		return &IntrospectionError{Path: path, Message: fmt.Sprintf("nesting deeper than %d", w.opts.maxDepth)}
	}
	// Pointer cycles are the only struct cycles possible; struct values
	// themselves are never tracked (a first or embedded field shares its
	// owner's address).
	var released []uintptr
	defer func() {
		for _, p := range released {
			delete(w.visited, p)
		}
	}()
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			break
		}
		if v.Kind() == reflect.Pointer {
			ptr := v.Pointer()
			if _, seen := w.visited[ptr]; seen {
				return &IntrospectionError{Path: path, Message: "self-referencing graph"}
			}
			w.visited[ptr] = path
			released = append(released, ptr)
		}
		v = v.Elem()
	}
	if !v.IsValid() || classify(v) == classNull {
		w.emit(parentID, name, node.NullKind, typeName(declared), "", tgt)
		return nil
	}
	switch classify(v) {
	case classLeaf:
		w.emit(parentID, name, node.LeafKind, typeName(v.Type()), formatValue(v), tgt)
		return nil
	case classMap:
		return w.walkMap(v, name, parentID, path, depth)
	case classSeq:
		return w.walkSeq(v, name, parentID, path, depth)
	default:
		row := w.emit(parentID, name, node.ObjectKind, typeName(v.Type()), "", nil)
		return w.walkFields(v, row.ID, path, depth)
	}
}

// unwrap removes pointer and interface wrappers. It reports nil for a
// nil wrapper at any level; classification of what null means (and
// which target it carries) stays with the caller.
func unwrap(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return v, true
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return v, true
	}
	return v, false
}

// walkFields emits one row per exported field of the struct v under
// parentID. Each field row gets a write target owned by v; only scalar
// and null rows keep it. Embedded structs are flattened the way their
// fields read in Go.
func (w *walker) walkFields(v reflect.Value, parentID int, path string, depth int) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := v.Field(i)
		if field.Anonymous && fv.Kind() == reflect.Struct {
			if err := w.walkFields(fv, parentID, path, depth); err != nil {
				return err
			}
			continue
		}
		fieldPath := joinPath(path, field.Name)
		tgt := newFieldTarget(v, i)
		if err := w.walk(fv, field.Type, field.Name, parentID, tgt, fieldPath, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkSeq(v reflect.Value, name string, parentID int, path string, depth int) error {
	elem := v.Type().Elem()
	row := w.emit(parentID, name, node.SliceKind, typeName(elem), "", nil)
	return w.walkElementsUnder(v, row.ID, path, depth)
}

func (w *walker) walkElements(v reflect.Value, parentID int, path string, depth int) error {
	return w.walkElementsUnder(v, parentID, path, depth)
}

// walkElementsUnder emits the `[i]` children of a sequence. Elements
// carry no write target: they have no addressable owner slot.
func (w *walker) walkElementsUnder(v reflect.Value, parentID int, path string, depth int) error {
	if v.Kind() == reflect.Slice && !v.IsNil() {
		if ptr, tracked := w.track(v, path); tracked {
			defer delete(w.visited, ptr)
		} else if ptr != 0 {
			return &IntrospectionError{Path: path, Message: "self-referencing graph"}
		}
	}
	n := v.Len()
	if n == 0 {
		w.emit(parentID, node.EmptyName, node.EmptyKind, "", "", nil)
		return nil
	}
	elem := v.Type().Elem()
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("[%d]", i)
		if err := w.walk(v.Index(i), elem, name, parentID, nil, joinPath(path, name), depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkMap(v reflect.Value, name string, parentID int, path string, depth int) error {
	t := v.Type()
	tag := fmt.Sprintf("map[%s]%s", typeName(t.Key()), typeName(t.Elem()))
	row := w.emit(parentID, name, node.MapKind, tag, "", nil)
	return w.walkEntriesUnder(v, row.ID, path, depth)
}

func (w *walker) walkEntries(v reflect.Value, parentID int, path string, depth int) error {
	return w.walkEntriesUnder(v, parentID, path, depth)
}

// walkEntriesUnder emits one entry group per map entry: a read-only Key
// leaf and a recursively classified Value child. Neither side gets a
// write target.
func (w *walker) walkEntriesUnder(v reflect.Value, parentID int, path string, depth int) error {
	if v.IsNil() || v.Len() == 0 {
		w.emit(parentID, node.EmptyName, node.EmptyKind, "", "", nil)
		return nil
	}
	if ptr, tracked := w.track(v, path); tracked {
		defer delete(w.visited, ptr)
	} else if ptr != 0 {
		return &IntrospectionError{Path: path, Message: "self-referencing graph"}
	}
	t := v.Type()
	keys := v.MapKeys()
	if w.opts.sortKeys {
		sort.Slice(keys, func(i, j int) bool {
			return formatValue(keys[i]) < formatValue(keys[j])
		})
	}
	for _, k := range keys {
		keyStr := formatValue(k)
		entryPath := joinPath(path, "Key="+keyStr)
		entry := w.emit(parentID, "Key="+keyStr, node.EntryKind, "", "", nil)
		w.emit(entry.ID, "Key", node.LeafKind, typeName(t.Key()), keyStr, nil)
		if err := w.walk(v.MapIndex(k), t.Elem(), "Value", entry.ID, nil, joinPath(entryPath, "Value"), depth+1); err != nil {
			return err
		}
	}
	return nil
}

// track registers a map or slice address in the visited set. It returns
// (addr, true) when newly tracked and (addr, false) when the address was
// already on the walk stack.
func (w *walker) track(v reflect.Value, path string) (uintptr, bool) {
	ptr := v.Pointer()
	if ptr == 0 {
		return 0, false
	}
	if _, seen := w.visited[ptr]; seen {
		return ptr, false
	}
	w.visited[ptr] = path
	return ptr, true
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
