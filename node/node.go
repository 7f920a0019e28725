// Package node holds the flat row model emitted by the projector: a
// self-referencing list of records from which a tree widget can rebuild
// the hierarchy without nested structures.
package node

import (
	"reflect"
	"strings"
)

// EmptyName is the display name of the informational child emitted under
// a group whose container yielded no elements.
const EmptyName = "(empty)"

// Node is one row of the flattened output. IDs are assigned in emission
// order starting at 1; ParentID is 0 only on the synthetic root.
type Node struct {
	ID       int
	ParentID int
	Name     string
	Kind     Kind
	Type     string
	Value    string
	Target   Target
}

// IsLeaf reports whether the row is an editable scalar slot. It is tied
// to the presence of a write target, not to having no children: see
// List.Terminal for the latter.
func (n *Node) IsLeaf() bool {
	return n.Target != nil
}

// Target identifies where a committed edit must be written back. A nil
// Target means the row is display-only. Implementations carry enough
// information to re-read the current value and to write a new one; type
// directed coercion happens at commit time, not here.
type Target interface {
	// Type is the declared type of the slot.
	Type() reflect.Type
	// Get reads the slot's current value.
	Get() (any, error)
	// Set writes a new value into the slot.
	Set(v any) error
}

// List is an ordered row sequence as produced by one projection.
type List []*Node

// ByID indexes the rows by identifier.
func (l List) ByID() map[int]*Node {
	m := make(map[int]*Node, len(l))
	for _, n := range l {
		m[n.ID] = n
	}
	return m
}

// ChildrenOf returns the rows whose parent is id, in emission order.
func (l List) ChildrenOf(id int) List {
	var res List
	for _, n := range l {
		if n.ParentID == id && n.ID != id {
			res = append(res, n)
		}
	}
	return res
}

// Terminal reports whether n has no children in l. Distinct from IsLeaf:
// collection elements and "(empty)" markers are terminal but not leaves.
func (l List) Terminal(n *Node) bool {
	for _, c := range l {
		if c.ParentID == n.ID && c.ID != n.ID {
			return false
		}
	}
	return true
}

// Depth returns the number of ancestors of n in l.
func (l List) Depth(n *Node) int {
	byID := l.ByID()
	d := 0
	for n.ParentID != 0 {
		p, ok := byID[n.ParentID]
		if !ok {
			break
		}
		n = p
		d++
	}
	return d
}

// Path returns the dotted structural path of n, omitting the synthetic
// root, e.g. "Network.Host" or "Tags.[0]".
func (l List) Path(n *Node) string {
	byID := l.ByID()
	var parts []string
	for n != nil && n.ParentID != 0 {
		parts = append(parts, n.Name)
		n = byID[n.ParentID]
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// Find returns the first row whose Path equals path, or nil.
func (l List) Find(path string) *Node {
	for _, n := range l {
		if l.Path(n) == path {
			return n
		}
	}
	return nil
}
